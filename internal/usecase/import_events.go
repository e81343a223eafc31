package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"devevent/internal/domain"
)

// ImportResult summarises an import run.
type ImportResult struct {
	Imported int
	Slugs    []string
}

// ImportEventsUseCase loads an event catalogue into the event store.
type ImportEventsUseCase interface {
	Import(ctx context.Context, source string) (*ImportResult, error)
}

type importEventsUseCase struct {
	logger         *slog.Logger
	eventRepo      domain.EventRepository
	fetcher        CatalogueFetcher
	contextTimeout time.Duration
	now            func() time.Time
}

func NewImportEventsUseCase(logger *slog.Logger, eventRepo domain.EventRepository, fetcher CatalogueFetcher, timeout time.Duration) ImportEventsUseCase {
	return &importEventsUseCase{
		logger:         logger,
		eventRepo:      eventRepo,
		fetcher:        fetcher,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// Import validates the whole catalogue before writing anything, then upserts each event by slug.
func (uc *importEventsUseCase) Import(ctx context.Context, source string) (*ImportResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	catalogue, err := uc.fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}

	// Upsert writes both timestamps; on conflict only updated_at is replaced.
	now := uc.now()
	events := make([]*domain.Event, 0, len(catalogue.Events))
	seen := make(map[string]int, len(catalogue.Events))
	for i, entry := range catalogue.Events {
		event, err := toEvent(entry)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i+1, err)
		}
		if prev, dup := seen[event.Slug]; dup {
			return nil, fmt.Errorf("event %d: %w: slug %q already used by event %d", i+1, domain.ErrInvalidInput, event.Slug, prev)
		}
		seen[event.Slug] = i + 1
		event.CreatedAt, event.UpdatedAt = now, now
		events = append(events, event)
	}

	result := &ImportResult{Slugs: make([]string, 0, len(events))}
	for _, event := range events {
		if err := uc.eventRepo.Upsert(ctx, event); err != nil {
			return result, fmt.Errorf("failed to upsert event %q: %w", event.Slug, err)
		}
		uc.logger.Info("event imported", "slug", event.Slug, "id", event.ID)
		result.Imported++
		result.Slugs = append(result.Slugs, event.Slug)
	}
	return result, nil
}

func toEvent(entry CatalogueEvent) (*domain.Event, error) {
	title := strings.TrimSpace(entry.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	rawSlug := entry.Slug
	if strings.TrimSpace(rawSlug) == "" {
		rawSlug = domain.Slugify(title)
	}
	slug, err := domain.ValidateSlug(rawSlug)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", title, err)
	}
	return &domain.Event{
		Title:       title,
		Slug:        slug,
		Description: strings.TrimSpace(entry.Description),
		Overview:    strings.TrimSpace(entry.Overview),
		Image:       strings.TrimSpace(entry.Image),
		Venue:       strings.TrimSpace(entry.Venue),
		Location:    strings.TrimSpace(entry.Location),
		Date:        strings.TrimSpace(entry.Date),
		Time:        strings.TrimSpace(entry.Time),
		Mode:        strings.TrimSpace(entry.Mode),
		Audience:    strings.TrimSpace(entry.Audience),
		Agenda:      trimAll(entry.Agenda),
		Organizer:   strings.TrimSpace(entry.Organizer),
		Tags:        normalizeTags(entry.Tags),
	}, nil
}

func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// normalizeTags lowercases and dedupes tags so overlap matching is case-insensitive.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
