package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"devevent/internal/domain"
)

type eventService struct {
	logger    *slog.Logger
	eventRepo domain.EventRepository
}

// NewEventService returns the read-side service over the event catalogue.
func NewEventService(logger *slog.Logger, eventRepo domain.EventRepository) domain.EventService {
	return &eventService{
		logger:    logger,
		eventRepo: eventRepo,
	}
}

func (s *eventService) FindBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return event, nil
}

// similarResult is the outcome of a similar-events lookup. Every failure collapses to an empty list.
type similarResult struct {
	events []*domain.Event
	err    error
}

func (r similarResult) orEmpty() []*domain.Event {
	if r.err != nil || r.events == nil {
		return []*domain.Event{}
	}
	return r.events
}

func (s *eventService) lookupSimilar(ctx context.Context, slug string) similarResult {
	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		return similarResult{err: fmt.Errorf("get event by slug: %w", err)}
	}
	events, err := s.eventRepo.ListSimilar(ctx, event.ID, event.Tags)
	if err != nil {
		return similarResult{err: fmt.Errorf("list similar events: %w", err)}
	}
	return similarResult{events: events}
}

func (s *eventService) FindSimilar(ctx context.Context, slug string) []*domain.Event {
	res := s.lookupSimilar(ctx, slug)
	if res.err != nil && !errors.Is(res.err, domain.ErrNotFound) {
		s.logger.WarnContext(ctx, "similar events lookup failed", "slug", slug, "err", res.err)
	}
	return res.orEmpty()
}

func (s *eventService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	events, err := s.eventRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	total, err := s.eventRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}
	return events, total, nil
}
