package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePlaylistRequest struct {
	Name string `json:"name"`
}

type PlaylistResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
}

type PlaylistWithSongsResponse struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	Username string         `json:"username"`
	Songs    []SongListItem `json:"songs"`
}

type PlaylistSongRequest struct {
	SongID uuid.UUID `json:"songId"`
}

type ActivityResponse struct {
	Username string    `json:"username"`
	Title    string    `json:"title"`
	Action   string    `json:"action"`
	Time     time.Time `json:"time"`
}

type PlaylistActivitiesResponse struct {
	PlaylistID uuid.UUID          `json:"playlistId"`
	Activities []ActivityResponse `json:"activities"`
}
