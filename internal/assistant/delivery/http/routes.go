package http

import (
	"github.com/gin-gonic/gin"

	"companion-core/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route
// is throttled by the rate-limit middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
	rg.POST("/tasks/extract", mw.RateLimit(), h.ExtractTasks)

	profiles := rg.Group("/profiles")
	{
		profiles.POST("", mw.RateLimit(), h.SaveProfile)
		profiles.GET("/:id", mw.RateLimit(), h.GetProfile)
		profiles.GET("/:id/tasks", mw.RateLimit(), h.ListTasks)
	}
}
