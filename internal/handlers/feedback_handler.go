package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
	"github.com/salonworks/salon-scheduler/internal/timezone"
)

type FeedbackHandler struct {
	db *gorm.DB
	tz string
}

func NewFeedbackHandler(db *gorm.DB, tz string) *FeedbackHandler {
	return &FeedbackHandler{db: db, tz: tz}
}

type CreateFeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// POST /api/bookings/:id/feedback accepts one entry per booking, only after it happened.
func (h *FeedbackHandler) Create(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be numeric.")
		return
	}

	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var b models.Booking
	if err := h.db.First(&b, bookingID).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	if b.Status != string(domain.StatusConfirmed) {
		httperr.BadRequest(c, "invalid_state", "Cancelled bookings cannot receive feedback.")
		return
	}
	if b.EndTime.After(timezone.NowIn(h.tz)) {
		httperr.BadRequest(c, "appointment_not_finished", "Feedback opens after the appointment.")
		return
	}

	fb := models.Feedback{
		BookingID: b.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := h.db.Create(&fb).Error; err != nil {
		httperr.Conflict(c, "feedback_exists", "Feedback was already left for this booking.")
		return
	}

	c.JSON(http.StatusCreated, fb)
}
