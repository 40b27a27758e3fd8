package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prasetya/melodia-api/internal/models"
	"github.com/prasetya/melodia-api/internal/services"
)

// UserServiceInterface defines the methods used by handlers from UserService
type UserServiceInterface interface {
	Register(ctx context.Context, username, password, fullname string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyCredential(ctx context.Context, username, password string) (uuid.UUID, error)
}

// AlbumServiceInterface defines the methods used by handlers from AlbumService
type AlbumServiceInterface interface {
	Create(ctx context.Context, name string, year int) (*models.Album, error)
	GetByID(ctx context.Context, albumID uuid.UUID) (*models.Album, error)
	Update(ctx context.Context, albumID uuid.UUID, name string, year int) (*models.Album, error)
	Delete(ctx context.Context, albumID uuid.UUID) error
}

// SongServiceInterface defines the methods used by handlers from SongService
type SongServiceInterface interface {
	Create(ctx context.Context, title string, year int, performer, genre string, duration *int, albumID *uuid.UUID) (*models.Song, error)
	List(ctx context.Context, title, performer string) ([]models.Song, error)
	GetByID(ctx context.Context, songID uuid.UUID) (*models.Song, error)
	GetByAlbumID(ctx context.Context, albumID uuid.UUID) ([]models.Song, error)
	Update(ctx context.Context, songID uuid.UUID, title string, year int, performer, genre string, duration *int, albumID *uuid.UUID) (*models.Song, error)
	Delete(ctx context.Context, songID uuid.UUID) error
}

// PlaylistServiceInterface defines the methods used by handlers from PlaylistService
type PlaylistServiceInterface interface {
	Create(ctx context.Context, name string, ownerID uuid.UUID) (*models.Playlist, error)
	GetForUser(ctx context.Context, userID uuid.UUID) ([]models.Playlist, error)
	GetByID(ctx context.Context, playlistID uuid.UUID) (*models.Playlist, error)
	Delete(ctx context.Context, playlistID uuid.UUID) error
	AddSong(ctx context.Context, playlistID, songID uuid.UUID) error
	RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) error
	GetSongs(ctx context.Context, playlistID uuid.UUID) ([]models.Song, error)
	VerifyOwner(ctx context.Context, playlistID, userID uuid.UUID) error
	VerifyAccess(ctx context.Context, playlistID, userID uuid.UUID) (string, error)
}

// CollaborationServiceInterface defines the methods used by handlers from CollaborationService
type CollaborationServiceInterface interface {
	Add(ctx context.Context, playlistID, userID uuid.UUID) (uuid.UUID, error)
	Remove(ctx context.Context, playlistID, userID uuid.UUID) error
}

// ActivityServiceInterface defines the methods used by handlers from ActivityService
type ActivityServiceInterface interface {
	Record(ctx context.Context, playlistID, songID, userID uuid.UUID, action string) (uuid.UUID, error)
	ListByPlaylist(ctx context.Context, playlistID uuid.UUID) ([]models.PlaylistActivity, error)
}

// AlbumLikeServiceInterface defines the methods used by handlers from AlbumLikeService
type AlbumLikeServiceInterface interface {
	Toggle(ctx context.Context, userID, albumID uuid.UUID) (models.LikeStatus, error)
	Count(ctx context.Context, albumID uuid.UUID) (int, models.CountSource, error)
}

// TokenServiceInterface defines the methods used by handlers from TokenService
type TokenServiceInterface interface {
	StoreRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	ValidateRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

// JWTServiceInterface defines the methods used by handlers from JWTService
type JWTServiceInterface interface {
	GenerateTokenPair(userID uuid.UUID, username string) (*services.TokenPair, error)
	ValidateRefreshToken(token string) (uuid.UUID, error)
	RefreshExpiry() time.Duration
}
