package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/prasetya/melodia-api/internal/database"
	"github.com/prasetya/melodia-api/internal/models"
)

// ActivityService keeps the append-only history of song additions and
// removals per playlist. Entries are never updated or deleted.
type ActivityService struct {
	db *database.DB
}

func NewActivityService(db *database.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Record appends one entry. Authorization is the caller's concern; the
// playlist mutation path runs VerifyAccess before it gets here.
func (s *ActivityService) Record(ctx context.Context, playlistID, songID, userID uuid.UUID, action string) (uuid.UUID, error) {
	if action != models.ActionAdd && action != models.ActionRemove {
		return uuid.Nil, fmt.Errorf("unknown activity action %q: %w", action, ErrInvariant)
	}

	var id uuid.UUID
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO playlist_song_activities (playlist_id, song_id, user_id, action)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, playlistID, songID, userID, action).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("activity was not recorded: %w", ErrInvariant)
	}
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// ListByPlaylist returns the playlist's full history, oldest first. Rows are
// scoped by playlist id only; callers must have passed VerifyAccess, so a
// collaborator sees every entry including those recorded before their grant.
// Equal timestamps are tie-broken by id to keep the order deterministic.
func (s *ActivityService) ListByPlaylist(ctx context.Context, playlistID uuid.UUID) ([]models.PlaylistActivity, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT a.id, a.playlist_id, a.song_id, a.user_id, a.action, a.time,
		       COALESCE(u.username, ''), COALESCE(s.title, '')
		FROM playlist_song_activities a
		LEFT JOIN users u ON u.id = a.user_id
		LEFT JOIN songs s ON s.id = a.song_id
		WHERE a.playlist_id = $1
		ORDER BY a.time ASC, a.id ASC
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.PlaylistActivity
	for rows.Next() {
		var a models.PlaylistActivity
		if err := rows.Scan(
			&a.ID, &a.PlaylistID, &a.SongID, &a.UserID, &a.Action, &a.Time,
			&a.Username, &a.SongTitle,
		); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
