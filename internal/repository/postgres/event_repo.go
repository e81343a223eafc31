package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"devevent/internal/domain"

	"github.com/lib/pq"
)

const eventColumns = `id, title, slug, description, overview, image, venue, location, date, time,
		mode, audience, agenda, organizer, tags, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var agenda, tags pq.StringArray
	err := row.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.Overview, &e.Image, &e.Venue, &e.Location,
		&e.Date, &e.Time, &e.Mode, &e.Audience, &agenda, &e.Organizer, &tags, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Agenda = nonNil(agenda)
	e.Tags = nonNil(tags)
	return e, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE slug = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, strings.ToLower(strings.TrimSpace(slug))))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListSimilar(ctx context.Context, excludeID string, tags []string) ([]*domain.Event, error) {
	if len(tags) == 0 {
		return []*domain.Event{}, nil
	}
	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE id <> $1 AND tags && $2
	`
	return r.queryEvents(ctx, query, excludeID, pq.Array(tags))
}

func (r *eventRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events
		ORDER BY created_at DESC
	`
	if limit := params.Limit(); limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, params.Offset())
	}
	return r.queryEvents(ctx, query)
}

func (r *eventRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *eventRepository) Upsert(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, slug, description, overview, image, venue, location, date, time,
			mode, audience, agenda, organizer, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (slug) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			overview = EXCLUDED.overview,
			image = EXCLUDED.image,
			venue = EXCLUDED.venue,
			location = EXCLUDED.location,
			date = EXCLUDED.date,
			time = EXCLUDED.time,
			mode = EXCLUDED.mode,
			audience = EXCLUDED.audience,
			agenda = EXCLUDED.agenda,
			organizer = EXCLUDED.organizer,
			tags = EXCLUDED.tags,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Slug, e.Description, e.Overview, e.Image, e.Venue, e.Location, e.Date, e.Time,
		e.Mode, e.Audience, pq.Array(nonNil(e.Agenda)), e.Organizer, pq.Array(nonNil(e.Tags)), e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID, &e.CreatedAt)
}

func (r *eventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
