package dto

import "github.com/google/uuid"

type CreateAlbumRequest struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

type UpdateAlbumRequest struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

type AlbumResponse struct {
	ID    uuid.UUID      `json:"id"`
	Name  string         `json:"name"`
	Year  int            `json:"year"`
	Songs []SongResponse `json:"songs,omitempty"`
}

type ToggleLikeResponse struct {
	AlbumID uuid.UUID `json:"albumId"`
	Status  string    `json:"status"`
}

type LikeCountResponse struct {
	Likes int `json:"likes"`
}
