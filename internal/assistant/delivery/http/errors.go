package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"companion-core/internal/assistant"
	"companion-core/pkg/response"
)

// respondError translates domain errors into HTTP responses. Unknown errors
// become an opaque 500 so internals never leak to the client.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage),
		errors.Is(err, assistant.ErrEmptyInput),
		errors.Is(err, assistant.ErrEmptyUserID):
		response.Error(c, err)
	case errors.Is(err, assistant.ErrMessageTooLong),
		errors.Is(err, assistant.ErrInputTooLong):
		response.ErrorWithStatus(c, http.StatusRequestEntityTooLarge, err)
	case errors.Is(err, assistant.ErrProfileNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, err)
	default:
		response.InternalError(c, err)
	}
}
