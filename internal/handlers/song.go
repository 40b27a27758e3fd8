package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/prasetya/melodia-api/pkg/dto"
)

type SongHandler struct {
	songService SongServiceInterface
}

func NewSongHandler(songService SongServiceInterface) *SongHandler {
	return &SongHandler{songService: songService}
}

func (h *SongHandler) Create(c *drift.Context) {
	var req dto.CreateSongRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Title == "" || req.Year == 0 || req.Performer == "" || req.Genre == "" {
		c.BadRequest("title, year, performer and genre are required")
		return
	}

	song, err := h.songService.Create(context.Background(), req.Title, req.Year, req.Performer, req.Genre, req.Duration, req.AlbumID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(201, dto.SongResponse{
		ID:        song.ID,
		Title:     song.Title,
		Year:      song.Year,
		Performer: song.Performer,
		Genre:     song.Genre,
		Duration:  song.Duration,
		AlbumID:   song.AlbumID,
	})
}

func (h *SongHandler) List(c *drift.Context) {
	title := c.QueryParam("title")
	performer := c.QueryParam("performer")

	songs, err := h.songService.List(context.Background(), title, performer)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response := make([]dto.SongListItem, len(songs))
	for i, song := range songs {
		response[i] = dto.SongListItem{ID: song.ID, Title: song.Title, Performer: song.Performer}
	}

	_ = c.JSON(200, response)
}

func (h *SongHandler) Get(c *drift.Context) {
	songID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid song id")
		return
	}

	song, err := h.songService.GetByID(context.Background(), songID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, dto.SongResponse{
		ID:        song.ID,
		Title:     song.Title,
		Year:      song.Year,
		Performer: song.Performer,
		Genre:     song.Genre,
		Duration:  song.Duration,
		AlbumID:   song.AlbumID,
	})
}

func (h *SongHandler) Update(c *drift.Context) {
	songID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid song id")
		return
	}

	var req dto.UpdateSongRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Title == "" || req.Year == 0 || req.Performer == "" || req.Genre == "" {
		c.BadRequest("title, year, performer and genre are required")
		return
	}

	song, err := h.songService.Update(context.Background(), songID, req.Title, req.Year, req.Performer, req.Genre, req.Duration, req.AlbumID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, dto.SongResponse{
		ID:        song.ID,
		Title:     song.Title,
		Year:      song.Year,
		Performer: song.Performer,
		Genre:     song.Genre,
		Duration:  song.Duration,
		AlbumID:   song.AlbumID,
	})
}

func (h *SongHandler) Delete(c *drift.Context) {
	songID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid song id")
		return
	}

	if err := h.songService.Delete(context.Background(), songID); err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"message": "song deleted"})
}
