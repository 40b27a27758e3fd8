package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/prasetya/melodia-api/internal/middleware"
	"github.com/prasetya/melodia-api/pkg/dto"
)

type UserHandler struct {
	userService UserServiceInterface
}

func NewUserHandler(userService UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *drift.Context) {
	var req dto.RegisterUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" || req.Fullname == "" {
		c.BadRequest("username, password and fullname are required")
		return
	}

	user, err := h.userService.Register(context.Background(), req.Username, req.Password, req.Fullname)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(201, dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Fullname: user.Fullname,
	})
}

func (h *UserHandler) GetMe(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	user, err := h.userService.GetByID(context.Background(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Fullname: user.Fullname,
	})
}
