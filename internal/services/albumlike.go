package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/prasetya/melodia-api/internal/cache"
	"github.com/prasetya/melodia-api/internal/database"
	"github.com/prasetya/melodia-api/internal/models"
)

// Cache is the TTL key/value store the like counter reads through. The
// concrete implementation lives in internal/cache; tests substitute a mock.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// AlbumLikeService toggles per-user album likes and serves the aggregate
// count cache-aside. Postgres is authoritative; the cache only ever holds
// derived counts bounded by the TTL.
type AlbumLikeService struct {
	db    *database.DB
	cache Cache
	ttl   time.Duration
}

func NewAlbumLikeService(db *database.DB, cache Cache, ttl time.Duration) *AlbumLikeService {
	return &AlbumLikeService{db: db, cache: cache, ttl: ttl}
}

func likesKey(albumID uuid.UUID) string {
	return fmt.Sprintf("album_likes:%s", albumID)
}

// Toggle likes the album when no like exists and removes the like otherwise.
// The conditional insert relies on the unique index on (user_id, album_id),
// so two concurrent toggles for the same pair cannot both insert: exactly
// one observes the conflict and takes the delete branch.
func (s *AlbumLikeService) Toggle(ctx context.Context, userID, albumID uuid.UUID) (models.LikeStatus, error) {
	var id uuid.UUID
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO user_album_likes (user_id, album_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, album_id) DO NOTHING
		RETURNING id
	`, userID, albumID).Scan(&id)
	if err == nil {
		_ = s.cache.Delete(ctx, likesKey(albumID))
		return models.LikeStatusLiked, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}

	// A like already existed, take it back.
	tag, err := s.db.Pool.Exec(ctx, `
		DELETE FROM user_album_likes WHERE user_id = $1 AND album_id = $2
	`, userID, albumID)
	if err != nil {
		return "", err
	}
	if tag.RowsAffected() == 0 {
		return "", fmt.Errorf("like was not removed: %w", ErrInvariant)
	}

	_ = s.cache.Delete(ctx, likesKey(albumID))
	return models.LikeStatusUnliked, nil
}

// Count serves the album's like count cache-aside: a usable cached value
// wins; on miss, a cache failure, or an unparsable payload it falls back to
// the authoritative COUNT and repopulates the cache best-effort. Cache
// trouble never fails the call. Counts read shortly after a Toggle may be
// stale for up to the TTL.
func (s *AlbumLikeService) Count(ctx context.Context, albumID uuid.UUID) (int, models.CountSource, error) {
	key := likesKey(albumID)

	val, err := s.cache.Get(ctx, key)
	if err == nil {
		if n, convErr := strconv.Atoi(val); convErr == nil {
			return n, models.CountSourceCache, nil
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		// Misses are routine; anything else is a store problem worth seeing.
		log.Printf("Album likes cache read failed for %s: %v", key, err)
	}

	var count int
	err = s.db.Pool.QueryRow(ctx, `
		SELECT COUNT(id) FROM user_album_likes WHERE album_id = $1
	`, albumID).Scan(&count)
	if err != nil {
		return 0, "", err
	}

	_ = s.cache.Set(ctx, key, strconv.Itoa(count), s.ttl)
	return count, models.CountSourceDatabase, nil
}
