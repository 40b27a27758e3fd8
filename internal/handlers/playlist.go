package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/prasetya/melodia-api/internal/middleware"
	"github.com/prasetya/melodia-api/internal/models"
	"github.com/prasetya/melodia-api/pkg/dto"
)

type PlaylistHandler struct {
	playlistService PlaylistServiceInterface
	songService     SongServiceInterface
	activityService ActivityServiceInterface
}

func NewPlaylistHandler(playlistService PlaylistServiceInterface, songService SongServiceInterface, activityService ActivityServiceInterface) *PlaylistHandler {
	return &PlaylistHandler{
		playlistService: playlistService,
		songService:     songService,
		activityService: activityService,
	}
}

func (h *PlaylistHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreatePlaylistRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	playlist, err := h.playlistService.Create(context.Background(), req.Name, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(201, dto.PlaylistResponse{
		ID:       playlist.ID,
		Name:     playlist.Name,
		Username: middleware.GetUsername(c),
	})
}

func (h *PlaylistHandler) List(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	playlists, err := h.playlistService.GetForUser(context.Background(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response := make([]dto.PlaylistResponse, len(playlists))
	for i, p := range playlists {
		response[i] = dto.PlaylistResponse{ID: p.ID, Name: p.Name, Username: p.OwnerUsername}
	}

	_ = c.JSON(200, response)
}

// Delete removes a playlist. Only the owner may do this; collaborators
// cannot delete playlists they were granted access to.
func (h *PlaylistHandler) Delete(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	playlistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid playlist id")
		return
	}

	ctx := context.Background()

	if err := h.playlistService.VerifyOwner(ctx, playlistID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.playlistService.Delete(ctx, playlistID); err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"message": "playlist deleted"})
}

// AddSong puts a song on the playlist and appends an activity entry. Owner
// and collaborators alike may mutate; VerifyAccess gates before any write.
func (h *PlaylistHandler) AddSong(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	playlistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid playlist id")
		return
	}

	var req dto.PlaylistSongRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.SongID == uuid.Nil {
		c.BadRequest("songId is required")
		return
	}

	ctx := context.Background()

	if _, err := h.playlistService.VerifyAccess(ctx, playlistID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	if _, err := h.songService.GetByID(ctx, req.SongID); err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.playlistService.AddSong(ctx, playlistID, req.SongID); err != nil {
		respondServiceError(c, err)
		return
	}

	if _, err := h.activityService.Record(ctx, playlistID, req.SongID, userID, models.ActionAdd); err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(201, map[string]string{"message": "song added to playlist"})
}

func (h *PlaylistHandler) RemoveSong(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	playlistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid playlist id")
		return
	}

	var req dto.PlaylistSongRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.SongID == uuid.Nil {
		c.BadRequest("songId is required")
		return
	}

	ctx := context.Background()

	if _, err := h.playlistService.VerifyAccess(ctx, playlistID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.playlistService.RemoveSong(ctx, playlistID, req.SongID); err != nil {
		respondServiceError(c, err)
		return
	}

	if _, err := h.activityService.Record(ctx, playlistID, req.SongID, userID, models.ActionRemove); err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"message": "song removed from playlist"})
}

func (h *PlaylistHandler) GetSongs(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	playlistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid playlist id")
		return
	}

	ctx := context.Background()

	if _, err := h.playlistService.VerifyAccess(ctx, playlistID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	playlist, err := h.playlistService.GetByID(ctx, playlistID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	songs, err := h.playlistService.GetSongs(ctx, playlistID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := dto.PlaylistWithSongsResponse{
		ID:       playlist.ID,
		Name:     playlist.Name,
		Username: playlist.OwnerUsername,
		Songs:    make([]dto.SongListItem, len(songs)),
	}
	for i, song := range songs {
		resp.Songs[i] = dto.SongListItem{ID: song.ID, Title: song.Title, Performer: song.Performer}
	}

	_ = c.JSON(200, resp)
}

// GetActivities returns the playlist's change history, oldest entry first.
func (h *PlaylistHandler) GetActivities(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	playlistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid playlist id")
		return
	}

	ctx := context.Background()

	if _, err := h.playlistService.VerifyAccess(ctx, playlistID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	activities, err := h.activityService.ListByPlaylist(ctx, playlistID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := dto.PlaylistActivitiesResponse{
		PlaylistID: playlistID,
		Activities: make([]dto.ActivityResponse, len(activities)),
	}
	for i, a := range activities {
		resp.Activities[i] = dto.ActivityResponse{
			Username: a.Username,
			Title:    a.SongTitle,
			Action:   a.Action,
			Time:     a.Time,
		}
	}

	_ = c.JSON(200, resp)
}
