package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "companion-core/internal/assistant/delivery/http"
)

// setupAssistantDomain initializes the assistant delivery layer and
// registers its routes under /api/v1/assistant.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := assistantHTTP.New(srv.l, srv.assistantUC)
	assistantHTTP.RegisterRoutes(api.Group("/assistant"), h, srv.mw)

	srv.l.Infof(ctx, "assistant domain registered")
	return nil
}
