// File: wayfare/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all your endpoint handlers into one struct.
type HandlerBundle struct {
	// Chat endpoints
	ChatMessageHandler    gin.HandlerFunc
	ChatActionHandler     gin.HandlerFunc
	ChatTranscriptHandler gin.HandlerFunc
	ChatResetHandler      gin.HandlerFunc

	// Availability endpoints
	QuickAvailabilityHandler gin.HandlerFunc

	// Option endpoints
	GenerateOptionsHandler gin.HandlerFunc
}
