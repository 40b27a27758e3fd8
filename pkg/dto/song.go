package dto

import "github.com/google/uuid"

type CreateSongRequest struct {
	Title     string     `json:"title"`
	Year      int        `json:"year"`
	Performer string     `json:"performer"`
	Genre     string     `json:"genre"`
	Duration  *int       `json:"duration,omitempty"`
	AlbumID   *uuid.UUID `json:"albumId,omitempty"`
}

type UpdateSongRequest struct {
	Title     string     `json:"title"`
	Year      int        `json:"year"`
	Performer string     `json:"performer"`
	Genre     string     `json:"genre"`
	Duration  *int       `json:"duration,omitempty"`
	AlbumID   *uuid.UUID `json:"albumId,omitempty"`
}

type SongResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Year      int        `json:"year"`
	Performer string     `json:"performer"`
	Genre     string     `json:"genre"`
	Duration  *int       `json:"duration,omitempty"`
	AlbumID   *uuid.UUID `json:"albumId,omitempty"`
}

type SongListItem struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Performer string    `json:"performer"`
}
