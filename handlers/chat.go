package handlers

import (
	"net/http"

	"wayfare/models"
	"wayfare/services/trip"
	"wayfare/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversation orchestrator over HTTP.
type ChatHandler struct {
	Trip trip.Service
}

func NewChatHandler(tripSvc trip.Service) *ChatHandler {
	return &ChatHandler{Trip: tripSvc}
}

// ChatMessageRequest is one user turn. A missing sessionId starts a new
// session; the assigned id comes back in the response.
type ChatMessageRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// ChatActionRequest triggers a tagged action from an earlier assistant message.
type ChatActionRequest struct {
	SessionID string            `json:"sessionId"`
	Action    models.ActionType `json:"action"`
}

// ChatResponse carries the post-turn session view back to the client.
type ChatResponse struct {
	SessionID   string                            `json:"sessionId"`
	State       models.TripState                  `json:"state"`
	Reply       models.ChatMessage                `json:"reply"`
	Preferences models.TravelPreferences          `json:"preferences"`
	Snapshot    *models.QuickAvailabilitySnapshot `json:"snapshot,omitempty"`
	Options     []models.TravelOption             `json:"options,omitempty"`
}

func chatResponse(sess *models.TripSession) ChatResponse {
	resp := ChatResponse{
		SessionID:   sess.ID,
		State:       sess.State,
		Preferences: sess.Preferences,
		Snapshot:    sess.Snapshot,
		Options:     sess.Options,
	}
	if n := len(sess.Transcript); n > 0 {
		resp.Reply = sess.Transcript[n-1]
	}
	return resp
}

// MessageHandler handles POST /api/chat/message.
func (h *ChatHandler) MessageHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat message request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	sess, err := h.Trip.ProcessMessage(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		if models.IsValidationError(err) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}
		logger.Error("Chat message processing failed",
			zap.String("session", req.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process message", "")
		return
	}
	c.JSON(http.StatusOK, chatResponse(sess))
}

// ActionHandler handles POST /api/chat/action.
func (h *ChatHandler) ActionHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req ChatActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat action request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if req.SessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "sessionId is required")
		return
	}

	sess, err := h.Trip.TriggerAction(c.Request.Context(), req.SessionID, req.Action)
	if err != nil {
		if models.IsValidationError(err) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}
		logger.Error("Chat action failed",
			zap.String("session", req.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process action", "")
		return
	}
	c.JSON(http.StatusOK, chatResponse(sess))
}

// TranscriptHandler handles GET /api/chat/transcript/:sessionID.
func (h *ChatHandler) TranscriptHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if sessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "sessionID is required")
		return
	}

	transcript, err := h.Trip.Transcript(c.Request.Context(), sessionID)
	if err != nil {
		utils.GetLogger().Error("Failed to load transcript",
			zap.String("session", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load transcript", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "transcript": transcript})
}

// ResetHandler handles DELETE /api/chat/session/:sessionID.
func (h *ChatHandler) ResetHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if sessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "sessionID is required")
		return
	}

	if err := h.Trip.Reset(c.Request.Context(), sessionID); err != nil {
		utils.GetLogger().Error("Failed to reset session",
			zap.String("session", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reset session", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset", "sessionId": sessionID})
}
