package routes

import (
	"net/http"
	"time"

	"wayfare/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversational endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("/message", hb.ChatMessageHandler)
		api.POST("/action", hb.ChatActionHandler)
		api.GET("/transcript/:sessionID", hb.ChatTranscriptHandler)
		api.DELETE("/session/:sessionID", hb.ChatResetHandler)
	}
}

// RegisterAvailabilityRoutes registers the direct quick-search endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.POST("/quick", hb.QuickAvailabilityHandler)
	}
}

// RegisterOptionRoutes registers the direct option-generation endpoint.
func RegisterOptionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/options")
	{
		api.POST("/generate", hb.GenerateOptionsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Wayfare"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterOptionRoutes(r, hb)
	RegisterHealthRoute(r)
}
