package handlers

import (
	"errors"
	"log"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/prasetya/melodia-api/internal/services"
)

// respondServiceError maps service error kinds to HTTP responses. Anything
// unrecognized is logged server-side and answered with a generic 500 so no
// internal detail leaks to the caller.
func respondServiceError(c *drift.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.NotFound(err.Error())
	case errors.Is(err, services.ErrForbidden):
		c.Forbidden(err.Error())
	case errors.Is(err, services.ErrInvariant):
		c.BadRequest(err.Error())
	default:
		log.Printf("unhandled service error: %v", err)
		c.InternalServerError("something went wrong on our end")
	}
}
