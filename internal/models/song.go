package models

import (
	"time"

	"github.com/google/uuid"
)

type Song struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Year      int        `json:"year"`
	Performer string     `json:"performer"`
	Genre     string     `json:"genre"`
	Duration  *int       `json:"duration,omitempty"`
	AlbumID   *uuid.UUID `json:"album_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
