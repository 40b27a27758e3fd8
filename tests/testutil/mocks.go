package testutil

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prasetya/melodia-api/internal/models"
	"github.com/prasetya/melodia-api/internal/services"
	"github.com/stretchr/testify/mock"
)

// MockUserService mocks the UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, username, password, fullname string) (*models.User, error) {
	args := m.Called(ctx, username, password, fullname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) VerifyCredential(ctx context.Context, username, password string) (uuid.UUID, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// MockAlbumService mocks the AlbumService
type MockAlbumService struct {
	mock.Mock
}

func (m *MockAlbumService) Create(ctx context.Context, name string, year int) (*models.Album, error) {
	args := m.Called(ctx, name, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Album), args.Error(1)
}

func (m *MockAlbumService) GetByID(ctx context.Context, albumID uuid.UUID) (*models.Album, error) {
	args := m.Called(ctx, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Album), args.Error(1)
}

func (m *MockAlbumService) Update(ctx context.Context, albumID uuid.UUID, name string, year int) (*models.Album, error) {
	args := m.Called(ctx, albumID, name, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Album), args.Error(1)
}

func (m *MockAlbumService) Delete(ctx context.Context, albumID uuid.UUID) error {
	args := m.Called(ctx, albumID)
	return args.Error(0)
}

// MockSongService mocks the SongService
type MockSongService struct {
	mock.Mock
}

func (m *MockSongService) Create(ctx context.Context, title string, year int, performer, genre string, duration *int, albumID *uuid.UUID) (*models.Song, error) {
	args := m.Called(ctx, title, year, performer, genre, duration, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Song), args.Error(1)
}

func (m *MockSongService) List(ctx context.Context, title, performer string) ([]models.Song, error) {
	args := m.Called(ctx, title, performer)
	return args.Get(0).([]models.Song), args.Error(1)
}

func (m *MockSongService) GetByID(ctx context.Context, songID uuid.UUID) (*models.Song, error) {
	args := m.Called(ctx, songID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Song), args.Error(1)
}

func (m *MockSongService) GetByAlbumID(ctx context.Context, albumID uuid.UUID) ([]models.Song, error) {
	args := m.Called(ctx, albumID)
	return args.Get(0).([]models.Song), args.Error(1)
}

func (m *MockSongService) Update(ctx context.Context, songID uuid.UUID, title string, year int, performer, genre string, duration *int, albumID *uuid.UUID) (*models.Song, error) {
	args := m.Called(ctx, songID, title, year, performer, genre, duration, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Song), args.Error(1)
}

func (m *MockSongService) Delete(ctx context.Context, songID uuid.UUID) error {
	args := m.Called(ctx, songID)
	return args.Error(0)
}

// MockPlaylistService mocks the PlaylistService
type MockPlaylistService struct {
	mock.Mock
}

func (m *MockPlaylistService) Create(ctx context.Context, name string, ownerID uuid.UUID) (*models.Playlist, error) {
	args := m.Called(ctx, name, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *MockPlaylistService) GetForUser(ctx context.Context, userID uuid.UUID) ([]models.Playlist, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Playlist), args.Error(1)
}

func (m *MockPlaylistService) GetByID(ctx context.Context, playlistID uuid.UUID) (*models.Playlist, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *MockPlaylistService) Delete(ctx context.Context, playlistID uuid.UUID) error {
	args := m.Called(ctx, playlistID)
	return args.Error(0)
}

func (m *MockPlaylistService) AddSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	args := m.Called(ctx, playlistID, songID)
	return args.Error(0)
}

func (m *MockPlaylistService) RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	args := m.Called(ctx, playlistID, songID)
	return args.Error(0)
}

func (m *MockPlaylistService) GetSongs(ctx context.Context, playlistID uuid.UUID) ([]models.Song, error) {
	args := m.Called(ctx, playlistID)
	return args.Get(0).([]models.Song), args.Error(1)
}

func (m *MockPlaylistService) VerifyOwner(ctx context.Context, playlistID, userID uuid.UUID) error {
	args := m.Called(ctx, playlistID, userID)
	return args.Error(0)
}

func (m *MockPlaylistService) VerifyAccess(ctx context.Context, playlistID, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, playlistID, userID)
	return args.String(0), args.Error(1)
}

// MockCollaborationService mocks the CollaborationService
type MockCollaborationService struct {
	mock.Mock
}

func (m *MockCollaborationService) Add(ctx context.Context, playlistID, userID uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, playlistID, userID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCollaborationService) Remove(ctx context.Context, playlistID, userID uuid.UUID) error {
	args := m.Called(ctx, playlistID, userID)
	return args.Error(0)
}

// MockActivityService mocks the ActivityService
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Record(ctx context.Context, playlistID, songID, userID uuid.UUID, action string) (uuid.UUID, error) {
	args := m.Called(ctx, playlistID, songID, userID, action)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockActivityService) ListByPlaylist(ctx context.Context, playlistID uuid.UUID) ([]models.PlaylistActivity, error) {
	args := m.Called(ctx, playlistID)
	return args.Get(0).([]models.PlaylistActivity), args.Error(1)
}

// MockAlbumLikeService mocks the AlbumLikeService
type MockAlbumLikeService struct {
	mock.Mock
}

func (m *MockAlbumLikeService) Toggle(ctx context.Context, userID, albumID uuid.UUID) (models.LikeStatus, error) {
	args := m.Called(ctx, userID, albumID)
	return args.Get(0).(models.LikeStatus), args.Error(1)
}

func (m *MockAlbumLikeService) Count(ctx context.Context, albumID uuid.UUID) (int, models.CountSource, error) {
	args := m.Called(ctx, albumID)
	return args.Int(0), args.Get(1).(models.CountSource), args.Error(2)
}

// MockTokenService mocks the TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) StoreRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockTokenService) ValidateRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockTokenService) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *MockTokenService) RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockJWTService mocks the JWTService
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateTokenPair(userID uuid.UUID, username string) (*services.TokenPair, error) {
	args := m.Called(userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenPair), args.Error(1)
}

func (m *MockJWTService) ValidateRefreshToken(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockJWTService) RefreshExpiry() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}
