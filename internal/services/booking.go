package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"devevent/internal/domain"
)

type bookingService struct {
	logger       *slog.Logger
	bookingRepo  domain.BookingRepository
	eventRepo    domain.EventRepository
	emailService domain.EmailService
	baseURL      string
	now          func() time.Time
}

// NewBookingService creates a BookingService. emailService may be nil to skip confirmation emails.
// baseURL is used to build the event link in the confirmation email.
func NewBookingService(
	logger *slog.Logger,
	bookingRepo domain.BookingRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	baseURL string,
) domain.BookingService {
	return &bookingService{
		logger:       logger,
		bookingRepo:  bookingRepo,
		eventRepo:    eventRepo,
		emailService: emailService,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		now:          time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, eventID, email string) (*domain.Booking, error) {
	now := s.now()
	booking := domain.NewBooking(eventID, email, now, now)
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrAlreadyBooked) {
			return nil, domain.ErrAlreadyBooked
		}
		s.logger.ErrorContext(ctx, "booking failed", "event_id", eventID, "err", err)
		return nil, fmt.Errorf("create booking: %w", err)
	}
	s.sendConfirmation(ctx, booking)
	return booking, nil
}

// sendConfirmation is best-effort: failures are logged and never undo the booking.
func (s *bookingService) sendConfirmation(ctx context.Context, booking *domain.Booking) {
	if s.emailService == nil {
		return
	}
	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		s.logger.WarnContext(ctx, "booking confirmation skipped", "event_id", booking.EventID, "err", err)
		return
	}
	data := &domain.BookingConfirmationEmailData{
		Email:    booking.Email,
		Event:    event,
		EventURL: s.baseURL + "/events/" + event.Slug,
	}
	if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "booking confirmation failed", "event_id", booking.EventID, "err", err)
	}
}

type bookingAction struct {
	bookings domain.BookingService
}

// NewBookingAction adapts a BookingService to the transport-independent booking call.
func NewBookingAction(bookings domain.BookingService) domain.BookingAction {
	return &bookingAction{bookings: bookings}
}

func (a *bookingAction) CreateBooking(ctx context.Context, req domain.BookingRequest) domain.BookingResponse {
	if _, err := a.bookings.CreateBooking(ctx, req.EventID, req.Email); err != nil {
		if errors.Is(err, domain.ErrAlreadyBooked) {
			return domain.BookingResponse{Success: false, Error: domain.MsgAlreadyBooked}
		}
		return domain.BookingResponse{Success: false}
	}
	return domain.BookingResponse{Success: true}
}
