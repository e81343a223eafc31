package services

import (
	"context"
	"fmt"
	"log/slog"

	"devevent/internal/domain"
)

type emailService struct {
	logger   *slog.Logger
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(logger *slog.Logger, mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{logger: logger, mailer: mailer, renderer: renderer}
}

// SendBookingConfirmation sends the "booking_confirmation" template to the booked address.
func (s *emailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	if data == nil || data.Event == nil {
		return fmt.Errorf("booking confirmation data is incomplete")
	}
	msg, err := s.renderer.Render("booking_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render booking_confirmation template: %w", err)
	}
	msg.To = data.Email
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send booking confirmation email: %w", err)
	}
	s.logger.InfoContext(ctx, "booking confirmation sent", "event_id", data.Event.ID)
	return nil
}
