package web

import (
	"context"
	"errors"

	"devevent/internal/domain"
)

// FormState is the state of a booking form.
type FormState int

const (
	// FormIdle: the visitor is entering an email.
	FormIdle FormState = iota
	// FormSubmitting: the booking call is in flight.
	FormSubmitting
	// FormSubmitted is terminal.
	FormSubmitted
	// FormFailed keeps the form on screen with an error; it can be submitted again.
	FormFailed
)

func (s FormState) String() string {
	switch s {
	case FormIdle:
		return "idle"
	case FormSubmitting:
		return "submitting"
	case FormSubmitted:
		return "submitted"
	case FormFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrFormSubmitted is returned by Submit once the form reached FormSubmitted.
var ErrFormSubmitted = errors.New("booking form already submitted")

// BookingForm is the booking widget shown on an event page.
type BookingForm struct {
	EventID string
	Slug    string
	Email   string
	State   FormState
	Error   string
}

// NewBookingForm returns an idle form for the event.
func NewBookingForm(eventID, slug string) *BookingForm {
	return &BookingForm{EventID: eventID, Slug: slug, State: FormIdle}
}

// Submitted reports whether the thank-you message should be shown instead of the form.
func (f *BookingForm) Submitted() bool {
	return f.State == FormSubmitted
}

// Submit books the event for email through action and reports the outcome to analytics.
// An empty email fails the form without calling action.
// The form state always reflects the booking outcome; the returned error is either
// ErrFormSubmitted or an analytics delivery failure.
func (f *BookingForm) Submit(ctx context.Context, action domain.BookingAction, analytics domain.Analytics, email string) error {
	if f.State == FormSubmitted {
		return ErrFormSubmitted
	}
	f.Error = ""
	f.Email = email
	if email == "" {
		f.State = FormFailed
		f.Error = domain.MsgEmailRequired
		return nil
	}
	f.State = FormSubmitting

	resp := action.CreateBooking(ctx, domain.BookingRequest{EventID: f.EventID, Slug: f.Slug, Email: email})
	if resp.Success {
		f.State = FormSubmitted
		return analytics.Capture(email, domain.AnalyticsEventBooked, map[string]any{
			"eventId": f.EventID,
			"slug":    f.Slug,
			"email":   email,
		})
	}

	f.State = FormFailed
	f.Error = resp.Error
	if f.Error == "" {
		f.Error = domain.MsgBookingFailed
	}
	return analytics.CaptureException(email, f.Error)
}
