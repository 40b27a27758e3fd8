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

type SongService struct {
	db *database.DB
}

func NewSongService(db *database.DB) *SongService {
	return &SongService{db: db}
}

func (s *SongService) Create(ctx context.Context, title string, year int, performer, genre string, duration *int, albumID *uuid.UUID) (*models.Song, error) {
	var song models.Song
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO songs (title, year, performer, genre, duration, album_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, year, performer, genre, duration, album_id, created_at, updated_at
	`, title, year, performer, genre, duration, albumID).Scan(
		&song.ID, &song.Title, &song.Year, &song.Performer, &song.Genre,
		&song.Duration, &song.AlbumID, &song.CreatedAt, &song.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create song: %w", err)
	}
	return &song, nil
}

// List returns songs filtered by optional title and performer substrings,
// case-insensitive. Empty filters match everything.
func (s *SongService) List(ctx context.Context, title, performer string) ([]models.Song, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, title, year, performer, genre, duration, album_id, created_at, updated_at
		FROM songs
		WHERE title ILIKE '%' || $1 || '%' AND performer ILIKE '%' || $2 || '%'
		ORDER BY created_at DESC
	`, title, performer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []models.Song
	for rows.Next() {
		var song models.Song
		if err := rows.Scan(
			&song.ID, &song.Title, &song.Year, &song.Performer, &song.Genre,
			&song.Duration, &song.AlbumID, &song.CreatedAt, &song.UpdatedAt,
		); err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

func (s *SongService) GetByID(ctx context.Context, songID uuid.UUID) (*models.Song, error) {
	var song models.Song
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, title, year, performer, genre, duration, album_id, created_at, updated_at
		FROM songs WHERE id = $1
	`, songID).Scan(
		&song.ID, &song.Title, &song.Year, &song.Performer, &song.Genre,
		&song.Duration, &song.AlbumID, &song.CreatedAt, &song.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("song not found: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &song, nil
}

func (s *SongService) GetByAlbumID(ctx context.Context, albumID uuid.UUID) ([]models.Song, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, title, year, performer, genre, duration, album_id, created_at, updated_at
		FROM songs WHERE album_id = $1
		ORDER BY created_at
	`, albumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []models.Song
	for rows.Next() {
		var song models.Song
		if err := rows.Scan(
			&song.ID, &song.Title, &song.Year, &song.Performer, &song.Genre,
			&song.Duration, &song.AlbumID, &song.CreatedAt, &song.UpdatedAt,
		); err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

func (s *SongService) Update(ctx context.Context, songID uuid.UUID, title string, year int, performer, genre string, duration *int, albumID *uuid.UUID) (*models.Song, error) {
	var song models.Song
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE songs
		SET title = $1, year = $2, performer = $3, genre = $4, duration = $5, album_id = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id, title, year, performer, genre, duration, album_id, created_at, updated_at
	`, title, year, performer, genre, duration, albumID, songID).Scan(
		&song.ID, &song.Title, &song.Year, &song.Performer, &song.Genre,
		&song.Duration, &song.AlbumID, &song.CreatedAt, &song.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("song not found: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &song, nil
}

func (s *SongService) Delete(ctx context.Context, songID uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM songs WHERE id = $1`, songID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("song not found: %w", ErrNotFound)
	}
	return nil
}
