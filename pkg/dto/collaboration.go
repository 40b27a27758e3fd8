package dto

import "github.com/google/uuid"

type CollaborationRequest struct {
	PlaylistID uuid.UUID `json:"playlistId"`
	UserID     uuid.UUID `json:"userId"`
}

type CollaborationResponse struct {
	CollaborationID uuid.UUID `json:"collaborationId"`
}
