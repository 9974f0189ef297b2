package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/schedule"
	"github.com/salonworks/salon-scheduler/internal/settings"
)

type SettingsHandler struct {
	store *settings.Store
}

func NewSettingsHandler(store *settings.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

type UpdateBusinessHoursRequest struct {
	Open  string `json:"open" binding:"required"`  // HH:MM
	Close string `json:"close" binding:"required"` // HH:MM
}

// GET /api/admin/settings/business-hours returns the resolved pair, defaults included.
func (h *SettingsHandler) GetBusinessHours(c *gin.Context) {
	hours := schedule.ResolveBusinessHours(c.Request.Context(), h.store)

	c.JSON(http.StatusOK, gin.H{
		"open":  hours.Open.String(),
		"close": hours.Close.String(),
	})
}

// PUT /api/admin/settings/business-hours
func (h *SettingsHandler) UpdateBusinessHours(c *gin.Context) {
	var req UpdateBusinessHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	open, err := schedule.ParseClockTime(req.Open)
	if err != nil {
		httperr.BadRequest(c, "invalid_open_time", "Use HH:MM, e.g. 09:00.")
		return
	}
	closeAt, err := schedule.ParseClockTime(req.Close)
	if err != nil {
		httperr.BadRequest(c, "invalid_close_time", "Use HH:MM, e.g. 17:00.")
		return
	}
	if !open.Before(closeAt) {
		httperr.BadRequest(c, "invalid_hours", "Opening time must precede closing time.")
		return
	}

	ctx := c.Request.Context()
	if err := h.store.Set(ctx, schedule.SettingBusinessOpen, open.String()); err != nil {
		httperr.Internal(c, "failed_to_save_settings", "Could not save business hours.")
		return
	}
	if err := h.store.Set(ctx, schedule.SettingBusinessClose, closeAt.String()); err != nil {
		httperr.Internal(c, "failed_to_save_settings", "Could not save business hours.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"open":  open.String(),
		"close": closeAt.String(),
	})
}
