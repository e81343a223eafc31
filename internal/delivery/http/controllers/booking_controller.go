package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"devevent/internal/delivery/http/helpers"
	"devevent/internal/domain"

	"github.com/google/uuid"
)

// CreateBookingRequest is the request body for POST /api/bookings.
type CreateBookingRequest domain.BookingRequest

// Validate implements helpers.Validator. Email format is not checked.
func (r *CreateBookingRequest) Validate() []string {
	var errs []string
	r.EventID = strings.TrimSpace(r.EventID)
	r.Email = strings.TrimSpace(r.Email)
	if r.EventID == "" {
		errs = append(errs, "eventId is required")
	} else if _, err := uuid.Parse(r.EventID); err != nil {
		errs = append(errs, "eventId must be a UUID")
	}
	if r.Email == "" {
		errs = append(errs, domain.MsgEmailRequired)
	}
	return errs
}

type BookingController struct {
	Logger *slog.Logger
	Action domain.BookingAction
}

func NewBookingController(logger *slog.Logger, action domain.BookingAction) *BookingController {
	return &BookingController{
		Logger: logger,
		Action: action,
	}
}

// CreateBooking godoc
// @Summary Book an event
// @Description Books the event for the email address. At most one booking per event and email.
// @Tags bookings
// @Accept json
// @Produce json
// @Param body body controllers.CreateBookingRequest true "eventId, slug and email"
// @Success 201 {object} domain.BookingResponse "success: true"
// @Failure 400 {object} domain.BookingResponse "malformed request"
// @Failure 409 {object} domain.BookingResponse "already booked"
// @Failure 500 {object} domain.BookingResponse "success: false, no error message"
// @Router /api/bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := helpers.Decode(w, r, &req); err != nil {
		helpers.WriteJSON(w, http.StatusBadRequest, domain.BookingResponse{Success: false, Error: err.Error()})
		return
	}

	// Client disconnects do not cancel an in-flight booking.
	resp := c.Action.CreateBooking(context.WithoutCancel(r.Context()), domain.BookingRequest(req))
	switch {
	case resp.Success:
		helpers.WriteJSON(w, http.StatusCreated, resp)
	case resp.Error == domain.MsgAlreadyBooked:
		helpers.WriteJSON(w, http.StatusConflict, resp)
	default:
		c.Logger.WarnContext(r.Context(), "booking not created", "path", r.URL.Path, "event_id", req.EventID)
		helpers.WriteJSON(w, http.StatusInternalServerError, resp)
	}
}

