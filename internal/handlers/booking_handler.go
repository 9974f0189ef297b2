package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	ucBooking "github.com/salonworks/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC       *ucBooking.CreateBooking
	cancelUC       *ucBooking.CancelBooking
	availabilityUC *ucBooking.GetAvailability
	repo           domain.Repository
	tz             string
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelBooking,
	availabilityUC *ucBooking.GetAvailability,
	repo domain.Repository,
	tz string,
) *BookingHandler {
	return &BookingHandler{
		createUC:       createUC,
		cancelUC:       cancelUC,
		availabilityUC: availabilityUC,
		repo:           repo,
		tz:             tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email" binding:"omitempty,email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	StaffID     *uint  `json:"staff_id"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Notes       string `json:"notes"`
}

// ======================================================
// AVAILABILITY
// ======================================================

// GET /api/availability?service_id=&date=YYYY-MM-DD
func (h *BookingHandler) Availability(c *gin.Context) {
	serviceIDStr := c.Query("service_id")
	dateStr := c.Query("date")

	if serviceIDStr == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "service_id and date are required.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "service_id must be numeric.")
		return
	}

	day, err := parseBusinessDate(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Use YYYY-MM-DD.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			ServiceID: uint(serviceID),
			Date:      day,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	// The engine includes every in-hours slot; bookings must never be offered
	// in the past, so today's already-started slots are dropped here.
	now := businessNow(h.tz)
	filtered := slots[:0]
	for _, s := range slots {
		if s.StartTime.After(now) {
			filtered = append(filtered, s)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": filtered,
	})
}

// ======================================================
// CREATE
// ======================================================

// POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ClientEmail: req.ClientEmail,
			ServiceID:   req.ServiceID,
			StaffID:     req.StaffID,
			Date:        req.Date,
			Time:        req.Time,
			Notes:       req.Notes,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// CANCEL
// ======================================================

// POST /api/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be numeric.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// ======================================================
// LIST (admin)
// ======================================================

// GET /api/admin/bookings?date=YYYY-MM-DD&staff_id=
func (h *BookingHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "date is required.")
		return
	}

	day, err := parseBusinessDate(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Use YYYY-MM-DD.")
		return
	}

	var staffID *uint
	if raw := c.Query("staff_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_staff_id", "staff_id must be numeric.")
			return
		}
		v := uint(id)
		staffID = &v
	}

	bookings, err := h.repo.ListBookingsForPeriod(
		c.Request.Context(),
		staffID,
		day,
		day.Add(24*time.Hour),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapBookingErrors(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "invalid_date_or_time", "invalid_duration", "service_inactive":
		httperr.BadRequest(c, httperr.BusinessCode(err), "Invalid booking request.")
	case "past_time":
		httperr.BadRequest(c, "past_time", "Start time must be in the future.")
	case "time_conflict":
		httperr.Conflict(c, "time_conflict", "The selected time is no longer available.")
	case "cancel_cutoff":
		httperr.BadRequest(c, "cancel_cutoff", "Too close to the appointment start to cancel.")
	case "invalid_state":
		httperr.BadRequest(c, "invalid_state", "The booking cannot change state.")
	case "service_not_found", "staff_not_found", "booking_not_found":
		httperr.NotFound(c, httperr.BusinessCode(err), "Not found.")
	default:
		httperr.Internal(c, "booking_failed", "Unexpected error handling the booking.")
	}
}
