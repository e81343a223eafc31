package domain

import "context"

// EmailMessage is a rendered email ready for delivery. Either HTML or Text may be empty.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer delivers email messages.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailTemplateRenderer renders the named template set into a message without a recipient.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (EmailMessage, error)
}

// BookingConfirmationEmailData is the template data for "booking_confirmation".
type BookingConfirmationEmailData struct {
	Email    string
	Event    *Event
	EventURL string
}

// EmailService sends the emails a booking triggers.
type EmailService interface {
	SendBookingConfirmation(ctx context.Context, data *BookingConfirmationEmailData) error
}
