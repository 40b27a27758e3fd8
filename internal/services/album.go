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

type AlbumService struct {
	db *database.DB
}

func NewAlbumService(db *database.DB) *AlbumService {
	return &AlbumService{db: db}
}

func (s *AlbumService) Create(ctx context.Context, name string, year int) (*models.Album, error) {
	var album models.Album
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO albums (name, year)
		VALUES ($1, $2)
		RETURNING id, name, year, created_at, updated_at
	`, name, year).Scan(&album.ID, &album.Name, &album.Year, &album.CreatedAt, &album.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create album: %w", err)
	}
	return &album, nil
}

func (s *AlbumService) GetByID(ctx context.Context, albumID uuid.UUID) (*models.Album, error) {
	var album models.Album
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, name, year, created_at, updated_at FROM albums WHERE id = $1
	`, albumID).Scan(&album.ID, &album.Name, &album.Year, &album.CreatedAt, &album.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("album not found: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (s *AlbumService) Update(ctx context.Context, albumID uuid.UUID, name string, year int) (*models.Album, error) {
	var album models.Album
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE albums SET name = $1, year = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, year, created_at, updated_at
	`, name, year, albumID).Scan(&album.ID, &album.Name, &album.Year, &album.CreatedAt, &album.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("album not found: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (s *AlbumService) Delete(ctx context.Context, albumID uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM albums WHERE id = $1`, albumID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("album not found: %w", ErrNotFound)
	}
	return nil
}
