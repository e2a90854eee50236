package handlers

import (
	"net/http"

	"wayfare/models"
	"wayfare/services/availability"
	"wayfare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the quick-search aggregator directly, outside
// the chat flow, for clients that already hold structured preferences.
type AvailabilityHandler struct {
	Availability availability.Service
}

func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Availability: svc}
}

// QuickAvailabilityHandler handles POST /api/availability/quick.
func (h *AvailabilityHandler) QuickAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var prefs models.TravelPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		logger.Error("Invalid quick availability request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	snapshot, err := h.Availability.QuickAvailability(c.Request.Context(), prefs)
	if err != nil {
		if models.IsValidationError(err) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}
		logger.Error("Quick availability search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check availability", "")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
