package http

import (
	"github.com/gin-gonic/gin"

	"companion-core/internal/assistant"
	"companion-core/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	ExtractTasks(c *gin.Context)
	SaveProfile(c *gin.Context)
	GetProfile(c *gin.Context)
	ListTasks(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
