package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"devevent/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

type mockEventRepository struct {
	bySlug     map[string]*domain.Event
	similar    []*domain.Event
	list       []*domain.Event
	total      int
	err        error
	similarErr error
	countErr   error

	lastExcludeID string
	lastTags      []string
	lastParams    domain.PaginationParams
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, e := range m.bySlug {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockEventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.bySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (m *mockEventRepository) ListSimilar(ctx context.Context, excludeID string, tags []string) ([]*domain.Event, error) {
	m.lastExcludeID = excludeID
	m.lastTags = tags
	if m.similarErr != nil {
		return nil, m.similarErr
	}
	return m.similar, nil
}

func (m *mockEventRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, error) {
	m.lastParams = params
	if m.err != nil {
		return nil, m.err
	}
	return m.list, nil
}

func (m *mockEventRepository) Count(ctx context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.total, nil
}

func (m *mockEventRepository) Upsert(ctx context.Context, event *domain.Event) error {
	return m.err
}

// memoryBookingRepository enforces the (event_id, email) unique index in memory.
type memoryBookingRepository struct {
	mu    sync.Mutex
	seen  map[string]bool
	err   error
	calls int
}

func (m *memoryBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return m.err
	}
	if m.seen == nil {
		m.seen = make(map[string]bool)
	}
	key := b.EventID + ":" + b.Email
	if m.seen[key] {
		return domain.ErrAlreadyBooked
	}
	m.seen[key] = true
	b.ID = "bk-" + key
	return nil
}

type mockEmailService struct {
	sent []*domain.BookingConfirmationEmailData
	err  error
}

func (m *mockEmailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, data)
	return nil
}
