package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/prasetya/melodia-api/internal/middleware"
	"github.com/prasetya/melodia-api/pkg/dto"
)

// CollaborationHandler manages collaborator grants. Only the playlist owner
// may grant or revoke; collaborators cannot invite further collaborators.
type CollaborationHandler struct {
	collaborationService CollaborationServiceInterface
	playlistService      PlaylistServiceInterface
	userService          UserServiceInterface
}

func NewCollaborationHandler(collaborationService CollaborationServiceInterface, playlistService PlaylistServiceInterface, userService UserServiceInterface) *CollaborationHandler {
	return &CollaborationHandler{
		collaborationService: collaborationService,
		playlistService:      playlistService,
		userService:          userService,
	}
}

func (h *CollaborationHandler) Add(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CollaborationRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.PlaylistID == uuid.Nil || req.UserID == uuid.Nil {
		c.BadRequest("playlistId and userId are required")
		return
	}

	ctx := context.Background()

	if err := h.playlistService.VerifyOwner(ctx, req.PlaylistID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	if _, err := h.userService.GetByID(ctx, req.UserID); err != nil {
		respondServiceError(c, err)
		return
	}

	collaborationID, err := h.collaborationService.Add(ctx, req.PlaylistID, req.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(201, dto.CollaborationResponse{CollaborationID: collaborationID})
}

func (h *CollaborationHandler) Remove(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CollaborationRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.PlaylistID == uuid.Nil || req.UserID == uuid.Nil {
		c.BadRequest("playlistId and userId are required")
		return
	}

	ctx := context.Background()

	if err := h.playlistService.VerifyOwner(ctx, req.PlaylistID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.collaborationService.Remove(ctx, req.PlaylistID, req.UserID); err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"message": "collaboration removed"})
}
