package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"

	"devevent/internal/domain"

	"github.com/stretchr/testify/require"
)

func newTestBookingService(repo domain.BookingRepository, events domain.EventRepository, email domain.EmailService) domain.BookingService {
	return NewBookingService(testLogger, repo, events, email, "https://devevent.test/")
}

func TestBookingService_CreateBooking_Duplicate(t *testing.T) {
	repo := &memoryBookingRepository{}
	svc := newTestBookingService(repo, &mockEventRepository{}, nil)
	ctx := context.Background()

	first, err := svc.CreateBooking(ctx, "ev-1", "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, "ev-1", first.EventID)
	require.NotEmpty(t, first.ID)
	require.False(t, first.CreatedAt.IsZero())

	second, err := svc.CreateBooking(ctx, "ev-1", "ada@example.com")
	require.ErrorIs(t, err, domain.ErrAlreadyBooked)
	require.Nil(t, second)
	require.Equal(t, "You have already booked this event!", err.Error())

	_, err = svc.CreateBooking(ctx, "ev-2", "ada@example.com")
	require.NoError(t, err)
}

func TestBookingService_CreateBooking_FailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	repo := &memoryBookingRepository{err: sql.ErrConnDone}
	svc := NewBookingService(logger, repo, &mockEventRepository{}, nil, "")

	_, err := svc.CreateBooking(context.Background(), "ev-1", "ada@example.com")
	require.ErrorIs(t, err, sql.ErrConnDone)
	require.NotErrorIs(t, err, domain.ErrAlreadyBooked)
	require.Contains(t, buf.String(), "booking failed")
	require.Contains(t, buf.String(), "event_id=ev-1")
}

func TestBookingService_CreateBooking_Confirmation(t *testing.T) {
	event := &domain.Event{ID: "ev-1", Slug: "devfest-2025", Title: "DevFest"}
	events := &mockEventRepository{bySlug: map[string]*domain.Event{event.Slug: event}}

	t.Run("sent after success", func(t *testing.T) {
		mail := &mockEmailService{}
		svc := newTestBookingService(&memoryBookingRepository{}, events, mail)

		_, err := svc.CreateBooking(context.Background(), "ev-1", "ada@example.com")
		require.NoError(t, err)
		require.Len(t, mail.sent, 1)
		require.Equal(t, "ada@example.com", mail.sent[0].Email)
		require.Equal(t, "https://devevent.test/events/devfest-2025", mail.sent[0].EventURL)
	})

	t.Run("mail failure keeps booking", func(t *testing.T) {
		mail := &mockEmailService{err: errors.New("ses throttled")}
		svc := newTestBookingService(&memoryBookingRepository{}, events, mail)

		booking, err := svc.CreateBooking(context.Background(), "ev-1", "ada@example.com")
		require.NoError(t, err)
		require.NotNil(t, booking)
	})

	t.Run("not sent for duplicate", func(t *testing.T) {
		mail := &mockEmailService{}
		svc := newTestBookingService(&memoryBookingRepository{}, events, mail)

		_, _ = svc.CreateBooking(context.Background(), "ev-1", "ada@example.com")
		_, err := svc.CreateBooking(context.Background(), "ev-1", "ada@example.com")
		require.ErrorIs(t, err, domain.ErrAlreadyBooked)
		require.Len(t, mail.sent, 1)
	})
}

func TestBookingAction_CreateBooking(t *testing.T) {
	req := domain.BookingRequest{EventID: "ev-1", Slug: "devfest-2025", Email: "ada@example.com"}

	t.Run("sequential duplicate", func(t *testing.T) {
		action := NewBookingAction(newTestBookingService(&memoryBookingRepository{}, &mockEventRepository{}, nil))

		require.Equal(t, domain.BookingResponse{Success: true}, action.CreateBooking(context.Background(), req))
		require.Equal(t,
			domain.BookingResponse{Success: false, Error: "You have already booked this event!"},
			action.CreateBooking(context.Background(), req))
	})

	t.Run("generic failure has no message", func(t *testing.T) {
		repo := &memoryBookingRepository{err: sql.ErrConnDone}
		action := NewBookingAction(newTestBookingService(repo, &mockEventRepository{}, nil))

		resp := action.CreateBooking(context.Background(), req)
		require.False(t, resp.Success)
		require.Empty(t, resp.Error)
		require.Equal(t, 1, repo.calls)
	})
}
