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

type PlaylistService struct {
	db             *database.DB
	collaborations *CollaborationService
}

func NewPlaylistService(db *database.DB, collaborations *CollaborationService) *PlaylistService {
	return &PlaylistService{db: db, collaborations: collaborations}
}

func (s *PlaylistService) Create(ctx context.Context, name string, ownerID uuid.UUID) (*models.Playlist, error) {
	var playlist models.Playlist
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO playlists (name, owner_id)
		VALUES ($1, $2)
		RETURNING id, name, owner_id, created_at
	`, name, ownerID).Scan(&playlist.ID, &playlist.Name, &playlist.OwnerID, &playlist.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}
	return &playlist, nil
}

// GetForUser lists playlists the user owns or collaborates on, with the
// owner's username resolved.
func (s *PlaylistService) GetForUser(ctx context.Context, userID uuid.UUID) ([]models.Playlist, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT DISTINCT p.id, p.name, p.owner_id, p.created_at, u.username
		FROM playlists p
		JOIN users u ON u.id = p.owner_id
		LEFT JOIN collaborations c ON c.playlist_id = p.id
		WHERE p.owner_id = $1 OR c.user_id = $1
		ORDER BY p.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var playlists []models.Playlist
	for rows.Next() {
		var p models.Playlist
		if err := rows.Scan(&p.ID, &p.Name, &p.OwnerID, &p.CreatedAt, &p.OwnerUsername); err != nil {
			return nil, err
		}
		playlists = append(playlists, p)
	}
	return playlists, rows.Err()
}

func (s *PlaylistService) GetByID(ctx context.Context, playlistID uuid.UUID) (*models.Playlist, error) {
	var p models.Playlist
	err := s.db.Pool.QueryRow(ctx, `
		SELECT p.id, p.name, p.owner_id, p.created_at, u.username
		FROM playlists p
		JOIN users u ON u.id = p.owner_id
		WHERE p.id = $1
	`, playlistID).Scan(&p.ID, &p.Name, &p.OwnerID, &p.CreatedAt, &p.OwnerUsername)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("playlist not found: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PlaylistService) Delete(ctx context.Context, playlistID uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, playlistID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("playlist not found: %w", ErrNotFound)
	}
	return nil
}

// AddSong links a song into the playlist. Callers are responsible for
// authorization (VerifyAccess) and for recording the activity entry.
func (s *PlaylistService) AddSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	var id uuid.UUID
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO playlist_songs (playlist_id, song_id)
		VALUES ($1, $2)
		ON CONFLICT (playlist_id, song_id) DO NOTHING
		RETURNING id
	`, playlistID, songID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("song was not added to playlist: %w", ErrInvariant)
	}
	return err
}

func (s *PlaylistService) RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `
		DELETE FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2
	`, playlistID, songID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("song was not removed from playlist: %w", ErrInvariant)
	}
	return nil
}

func (s *PlaylistService) GetSongs(ctx context.Context, playlistID uuid.UUID) ([]models.Song, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT s.id, s.title, s.year, s.performer, s.genre, s.duration, s.album_id, s.created_at, s.updated_at
		FROM songs s
		JOIN playlist_songs ps ON ps.song_id = s.id
		WHERE ps.playlist_id = $1
		ORDER BY ps.created_at
	`, playlistID)
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

// VerifyOwner fails with ErrNotFound when the playlist does not exist and
// with ErrForbidden when it exists but belongs to someone else.
func (s *PlaylistService) VerifyOwner(ctx context.Context, playlistID, userID uuid.UUID) error {
	var ownerID uuid.UUID
	err := s.db.Pool.QueryRow(ctx, `
		SELECT owner_id FROM playlists WHERE id = $1
	`, playlistID).Scan(&ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("playlist not found: %w", ErrNotFound)
	}
	if err != nil {
		return err
	}
	if ownerID != userID {
		return fmt.Errorf("you are not allowed to access this playlist: %w", ErrForbidden)
	}
	return nil
}

// VerifyAccess resolves whether the user may act on the playlist and with
// which standing. Evaluation is two explicit steps: ownership first, then
// collaboration. A missing playlist propagates immediately; it is never
// "maybe accessible via collaboration". When the ownership check is denied
// and the collaboration check fails too, the original denial is returned
// unchanged so callers see one stable error for "no access" regardless of
// which check actually failed.
func (s *PlaylistService) VerifyAccess(ctx context.Context, playlistID, userID uuid.UUID) (string, error) {
	ownerErr := s.VerifyOwner(ctx, playlistID, userID)
	if ownerErr == nil {
		return models.AccessOwner, nil
	}
	if !errors.Is(ownerErr, ErrForbidden) {
		return "", ownerErr
	}
	if err := s.collaborations.VerifyCollaborator(ctx, playlistID, userID); err != nil {
		return "", ownerErr
	}
	return models.AccessCollaborator, nil
}
