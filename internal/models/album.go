package models

import (
	"time"

	"github.com/google/uuid"
)

type Album struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AlbumLike struct {
	ID      uuid.UUID `json:"id"`
	UserID  uuid.UUID `json:"user_id"`
	AlbumID uuid.UUID `json:"album_id"`
}

// LikeStatus reports which branch a like toggle took.
type LikeStatus string

const (
	LikeStatusLiked   LikeStatus = "liked"
	LikeStatusUnliked LikeStatus = "unliked"
)

// CountSource reports where a like count was served from.
type CountSource string

const (
	CountSourceCache    CountSource = "cache"
	CountSourceDatabase CountSource = "database"
)
