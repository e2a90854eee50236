package handlers

import (
	"net/http"

	"wayfare/models"
	"wayfare/services/options"
	"wayfare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OptionsHandler exposes full option generation for clients that already
// hold structured preferences.
type OptionsHandler struct {
	Options options.Service
}

func NewOptionsHandler(svc options.Service) *OptionsHandler {
	return &OptionsHandler{Options: svc}
}

// GenerateOptionsHandler handles POST /api/options/generate.
func (h *OptionsHandler) GenerateOptionsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var prefs models.TravelPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		logger.Error("Invalid option generation request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if prefs.Destination == "" && prefs.DestinationCode == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "destination is required")
		return
	}

	opts, err := h.Options.GenerateOptions(c.Request.Context(), prefs)
	if err != nil {
		if models.IsValidationError(err) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}
		logger.Error("Option generation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate options", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": opts})
}
