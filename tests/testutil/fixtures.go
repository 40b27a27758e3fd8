package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prasetya/melodia-api/internal/database"
	"github.com/prasetya/melodia-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateUser creates a test user. The password is always "secret123".
func (f *Fixtures) CreateUser(t *testing.T, opts ...UserOption) *models.User {
	t.Helper()
	f.counter++

	user := &models.User{
		Username: fmt.Sprintf("user%d", f.counter),
		Fullname: fmt.Sprintf("Test User %d", f.counter),
	}

	for _, opt := range opts {
		opt(user)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	ctx := context.Background()
	err = f.db.Pool.QueryRow(ctx, `
		INSERT INTO users (username, password_hash, fullname)
		VALUES ($1, $2, $3)
		RETURNING id, username, fullname, created_at
	`, user.Username, string(hash), user.Fullname).Scan(
		&user.ID, &user.Username, &user.Fullname, &user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user
}

// UserOption configures a test user
type UserOption func(*models.User)

// WithUsername sets the user's username
func WithUsername(username string) UserOption {
	return func(u *models.User) {
		u.Username = username
	}
}

// CreateAlbum creates a test album
func (f *Fixtures) CreateAlbum(t *testing.T) *models.Album {
	t.Helper()
	f.counter++

	album := &models.Album{}
	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO albums (name, year)
		VALUES ($1, $2)
		RETURNING id, name, year, created_at, updated_at
	`, fmt.Sprintf("Test Album %d", f.counter), 2020).Scan(
		&album.ID, &album.Name, &album.Year, &album.CreatedAt, &album.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create album: %v", err)
	}

	return album
}

// CreateSong creates a test song, optionally attached to an album
func (f *Fixtures) CreateSong(t *testing.T, albumID *uuid.UUID) *models.Song {
	t.Helper()
	f.counter++

	song := &models.Song{}
	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO songs (title, year, performer, genre, album_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, year, performer, genre, duration, album_id, created_at, updated_at
	`, fmt.Sprintf("Test Song %d", f.counter), 2021, fmt.Sprintf("Performer %d", f.counter), "rock", albumID).Scan(
		&song.ID, &song.Title, &song.Year, &song.Performer, &song.Genre,
		&song.Duration, &song.AlbumID, &song.CreatedAt, &song.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create song: %v", err)
	}

	return song
}

// CreatePlaylist creates a test playlist owned by the given user
func (f *Fixtures) CreatePlaylist(t *testing.T, owner *models.User) *models.Playlist {
	t.Helper()
	f.counter++

	playlist := &models.Playlist{}
	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO playlists (name, owner_id)
		VALUES ($1, $2)
		RETURNING id, name, owner_id, created_at
	`, fmt.Sprintf("Test Playlist %d", f.counter), owner.ID).Scan(
		&playlist.ID, &playlist.Name, &playlist.OwnerID, &playlist.CreatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create playlist: %v", err)
	}
	playlist.OwnerUsername = owner.Username

	return playlist
}

// AddCollaborator grants a user collaborator access to a playlist
func (f *Fixtures) AddCollaborator(t *testing.T, playlist *models.Playlist, user *models.User) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var id uuid.UUID
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO collaborations (playlist_id, user_id)
		VALUES ($1, $2)
		RETURNING id
	`, playlist.ID, user.ID).Scan(&id)
	if err != nil {
		t.Fatalf("failed to add collaborator: %v", err)
	}
	return id
}

// RecordActivityAt inserts an activity entry with an explicit timestamp
func (f *Fixtures) RecordActivityAt(t *testing.T, playlistID, songID, userID uuid.UUID, action string, at time.Time) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var id uuid.UUID
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO playlist_song_activities (playlist_id, song_id, user_id, action, time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, playlistID, songID, userID, action, at).Scan(&id)
	if err != nil {
		t.Fatalf("failed to record activity: %v", err)
	}
	return id
}

// CreateLike inserts a like row directly
func (f *Fixtures) CreateLike(t *testing.T, userID, albumID uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	_, err := f.db.Pool.Exec(ctx, `
		INSERT INTO user_album_likes (user_id, album_id)
		VALUES ($1, $2)
	`, userID, albumID)
	if err != nil {
		t.Fatalf("failed to create like: %v", err)
	}
}
