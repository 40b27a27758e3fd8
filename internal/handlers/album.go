package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/prasetya/melodia-api/internal/middleware"
	"github.com/prasetya/melodia-api/pkg/dto"
)

// DataSourceHeader reports whether a like count came from the cache or from
// the database, so clients and tests can observe cache behavior.
const DataSourceHeader = "X-Data-Source"

type AlbumHandler struct {
	albumService AlbumServiceInterface
	songService  SongServiceInterface
	likeService  AlbumLikeServiceInterface
}

func NewAlbumHandler(albumService AlbumServiceInterface, songService SongServiceInterface, likeService AlbumLikeServiceInterface) *AlbumHandler {
	return &AlbumHandler{
		albumService: albumService,
		songService:  songService,
		likeService:  likeService,
	}
}

func (h *AlbumHandler) Create(c *drift.Context) {
	var req dto.CreateAlbumRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" || req.Year == 0 {
		c.BadRequest("name and year are required")
		return
	}

	album, err := h.albumService.Create(context.Background(), req.Name, req.Year)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(201, dto.AlbumResponse{ID: album.ID, Name: album.Name, Year: album.Year})
}

func (h *AlbumHandler) Get(c *drift.Context) {
	albumID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid album id")
		return
	}

	ctx := context.Background()

	album, err := h.albumService.GetByID(ctx, albumID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	songs, err := h.songService.GetByAlbumID(ctx, albumID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := dto.AlbumResponse{ID: album.ID, Name: album.Name, Year: album.Year}
	for _, song := range songs {
		resp.Songs = append(resp.Songs, dto.SongResponse{
			ID:        song.ID,
			Title:     song.Title,
			Year:      song.Year,
			Performer: song.Performer,
			Genre:     song.Genre,
			Duration:  song.Duration,
			AlbumID:   song.AlbumID,
		})
	}

	_ = c.JSON(200, resp)
}

func (h *AlbumHandler) Update(c *drift.Context) {
	albumID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid album id")
		return
	}

	var req dto.UpdateAlbumRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" || req.Year == 0 {
		c.BadRequest("name and year are required")
		return
	}

	album, err := h.albumService.Update(context.Background(), albumID, req.Name, req.Year)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, dto.AlbumResponse{ID: album.ID, Name: album.Name, Year: album.Year})
}

func (h *AlbumHandler) Delete(c *drift.Context) {
	albumID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid album id")
		return
	}

	if err := h.albumService.Delete(context.Background(), albumID); err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"message": "album deleted"})
}

// ToggleLike flips the caller's like on an album. The response says which
// way the toggle went so clients can show the right feedback.
func (h *AlbumHandler) ToggleLike(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	albumID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid album id")
		return
	}

	ctx := context.Background()

	// A like must reference an existing album.
	if _, err := h.albumService.GetByID(ctx, albumID); err != nil {
		respondServiceError(c, err)
		return
	}

	status, err := h.likeService.Toggle(ctx, userID, albumID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(201, dto.ToggleLikeResponse{AlbumID: albumID, Status: string(status)})
}

func (h *AlbumHandler) GetLikes(c *drift.Context) {
	albumID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid album id")
		return
	}

	count, source, err := h.likeService.Count(context.Background(), albumID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Response.Header().Set(DataSourceHeader, string(source))
	_ = c.JSON(200, dto.LikeCountResponse{Likes: count})
}
