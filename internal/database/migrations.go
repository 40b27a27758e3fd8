package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		username VARCHAR(50) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		fullname VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token_hash VARCHAR(255) NOT NULL UNIQUE,
		expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS albums (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		year INTEGER NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS songs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		title VARCHAR(255) NOT NULL,
		year INTEGER NOT NULL,
		performer VARCHAR(255) NOT NULL,
		genre VARCHAR(100) NOT NULL,
		duration INTEGER,
		album_id UUID REFERENCES albums(id) ON DELETE SET NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS playlists (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		owner_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS playlist_songs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		playlist_id UUID NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
		song_id UUID NOT NULL REFERENCES songs(id) ON DELETE CASCADE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(playlist_id, song_id)
	)`,

	`CREATE TABLE IF NOT EXISTS collaborations (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		playlist_id UUID NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(playlist_id, user_id)
	)`,

	// Append-only change history. Rows are never updated or deleted; no FK to
	// songs or users so the audit trail survives deletes.
	`CREATE TABLE IF NOT EXISTS playlist_song_activities (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		playlist_id UUID NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
		song_id UUID NOT NULL,
		user_id UUID NOT NULL,
		action VARCHAR(20) NOT NULL,
		time TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	// One like per user per album; the toggle relies on this constraint to
	// stay race-free under concurrent requests.
	`CREATE TABLE IF NOT EXISTS user_album_likes (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		album_id UUID NOT NULL REFERENCES albums(id) ON DELETE CASCADE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(user_id, album_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_songs_album_id ON songs(album_id)`,
	`CREATE INDEX IF NOT EXISTS idx_playlists_owner_id ON playlists(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_playlist_songs_playlist_id ON playlist_songs(playlist_id)`,
	`CREATE INDEX IF NOT EXISTS idx_collaborations_playlist_id ON collaborations(playlist_id)`,
	`CREATE INDEX IF NOT EXISTS idx_collaborations_user_id ON collaborations(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_playlist_time ON playlist_song_activities(playlist_id, time)`,
	`CREATE INDEX IF NOT EXISTS idx_user_album_likes_album_id ON user_album_likes(album_id)`,
	`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_user_id ON refresh_tokens(user_id)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
