package models

import (
	"time"

	"github.com/google/uuid"
)

type Playlist struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	// Username of the owner, populated by listing queries.
	OwnerUsername string `json:"username,omitempty"`
}

type Collaboration struct {
	ID         uuid.UUID `json:"id"`
	PlaylistID uuid.UUID `json:"playlist_id"`
	UserID     uuid.UUID `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Access levels returned by PlaylistService.VerifyAccess.
const (
	AccessOwner        = "owner"
	AccessCollaborator = "collaborator"
)

// Activity actions recorded when a playlist's songs change.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// PlaylistActivity is one append-only entry in a playlist's change history.
type PlaylistActivity struct {
	ID         uuid.UUID `json:"id"`
	PlaylistID uuid.UUID `json:"playlist_id"`
	SongID     uuid.UUID `json:"song_id"`
	UserID     uuid.UUID `json:"user_id"`
	Action     string    `json:"action"`
	Time       time.Time `json:"time"`

	// Populated by the listing join.
	Username  string `json:"username,omitempty"`
	SongTitle string `json:"title,omitempty"`
}
