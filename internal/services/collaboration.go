package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/prasetya/melodia-api/internal/database"
)

type CollaborationService struct {
	db *database.DB
}

func NewCollaborationService(db *database.DB) *CollaborationService {
	return &CollaborationService{db: db}
}

// Add grants a user collaborator access to a playlist. The unique index on
// (playlist_id, user_id) makes a repeated grant insert nothing, which
// surfaces as ErrInvariant like any other failed write.
func (s *CollaborationService) Add(ctx context.Context, playlistID, userID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO collaborations (playlist_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (playlist_id, user_id) DO NOTHING
		RETURNING id
	`, playlistID, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("collaboration was not added: %w", ErrInvariant)
	}
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *CollaborationService) Remove(ctx context.Context, playlistID, userID uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `
		DELETE FROM collaborations WHERE playlist_id = $1 AND user_id = $2
	`, playlistID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("collaboration was not removed: %w", ErrInvariant)
	}
	return nil
}

// VerifyCollaborator succeeds when a collaboration row exists for the pair.
// A missing row is reported as ErrInvariant, matching how the other write
// checks in this service fail.
func (s *CollaborationService) VerifyCollaborator(ctx context.Context, playlistID, userID uuid.UUID) error {
	var id uuid.UUID
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id FROM collaborations WHERE playlist_id = $1 AND user_id = $2
	`, playlistID, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("collaboration could not be verified: %w", ErrInvariant)
	}
	return err
}
