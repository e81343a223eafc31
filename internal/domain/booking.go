package domain

import (
	"context"
	"errors"
	"time"
)

// Messages shown to the visitor verbatim.
const (
	MsgAlreadyBooked = "You have already booked this event!"
	MsgBookingFailed = "Something went wrong. Please try again."
	MsgEmailRequired = "email is required"
)

// ErrAlreadyBooked is returned when a booking for the same event and email already exists.
// Its text is MsgAlreadyBooked.
var ErrAlreadyBooked = errors.New(MsgAlreadyBooked) //nolint:stylecheck // user-facing text

// Booking is an RSVP of one email address to one event.
// swagger:model Booking
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBooking creates a new Booking. ID is typically set by the repository on create.
func NewBooking(eventID, email string, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		EventID:   eventID,
		Email:     email,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// BookingRepository defines storage operations for bookings.
type BookingRepository interface {
	// Create returns ErrAlreadyBooked when (event_id, email) already exists.
	Create(ctx context.Context, booking *Booking) error
}

// BookingService defines booking operations.
type BookingService interface {
	CreateBooking(ctx context.Context, eventID, email string) (*Booking, error)
}

// BookingRequest is the input of the booking call.
// swagger:model BookingRequest
type BookingRequest struct {
	EventID string `json:"eventId"`
	Slug    string `json:"slug"`
	Email   string `json:"email"`
}

// BookingResponse is the output of the booking call.
// swagger:model BookingResponse
type BookingResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// BookingAction is the booking call as seen by clients, independent of transport.
type BookingAction interface {
	CreateBooking(ctx context.Context, req BookingRequest) BookingResponse
}
