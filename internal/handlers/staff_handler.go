package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/httpresp"
	"github.com/salonworks/salon-scheduler/internal/models"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateStaffRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type WindowConfig struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type ReplaceWindowsRequest struct {
	Windows []WindowConfig `json:"windows" binding:"required"`
}

// ======================================================
// ROSTER
// ======================================================

func (h *StaffHandler) List(c *gin.Context) {
	var roster []models.Staff
	if err := h.db.Order("id ASC").Find(&roster).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Could not list staff.")
		return
	}

	httpresp.List(c, roster)
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	member := models.Staff{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  req.Role,
	}

	if err := h.db.Create(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Could not create staff member.")
		return
	}

	c.JSON(http.StatusCreated, member)
}

// ======================================================
// AVAILABILITY WINDOWS
// ======================================================

func (h *StaffHandler) GetWindows(c *gin.Context) {
	staffID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Staff id must be numeric.")
		return
	}

	var windows []models.AvailabilityWindow
	if err := h.db.
		Where("staff_id = ?", staffID).
		Order("start_time ASC").
		Find(&windows).Error; err != nil {
		httperr.Internal(c, "failed_to_get_windows", "Could not list availability windows.")
		return
	}

	httpresp.List(c, windows)
}

// ReplaceWindows swaps a staff member's full window set. An empty set means
// the member falls back to the engine's window policy.
func (h *StaffHandler) ReplaceWindows(c *gin.Context) {
	staffID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Staff id must be numeric.")
		return
	}

	var member models.Staff
	if err := h.db.First(&member, staffID).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	var req ReplaceWindowsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	for _, w := range req.Windows {
		if !w.EndTime.After(w.StartTime) {
			httperr.BadRequest(c, "invalid_window", "Window end must be after start.")
			return
		}
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("staff_id = ?", member.ID).
			Delete(&models.AvailabilityWindow{}).Error; err != nil {
			return err
		}

		for _, w := range req.Windows {
			win := models.AvailabilityWindow{
				StaffID:   member.ID,
				StartTime: w.StartTime,
				EndTime:   w.EndTime,
			}
			if err := tx.Create(&win).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_windows", "Could not update availability windows.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": len(req.Windows)})
}
