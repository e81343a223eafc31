package domain

import (
	"context"
	"time"
)

// Event is a listed event. It is created out-of-band and read-only on the request path.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Mode        string    `json:"mode"`
	Audience    string    `json:"audience"`
	Agenda      []string  `json:"agenda"`
	Organizer   string    `json:"organizer"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	// ListSimilar returns events other than excludeID sharing at least one of tags.
	ListSimilar(ctx context.Context, excludeID string, tags []string) ([]*Event, error)
	List(ctx context.Context, params PaginationParams) ([]*Event, error)
	Count(ctx context.Context) (int, error)
	// Upsert inserts the event or updates the existing row with the same slug. ID is set on return.
	Upsert(ctx context.Context, event *Event) error
}

// EventService defines read operations over the event catalogue.
type EventService interface {
	// FindBySlug returns ErrNotFound when no event has the given slug.
	FindBySlug(ctx context.Context, slug string) (*Event, error)
	// FindSimilar never fails; lookup errors collapse to an empty result.
	FindSimilar(ctx context.Context, slug string) []*Event
	// List returns one page of events (newest first) and the total number of events.
	List(ctx context.Context, params PaginationParams) ([]*Event, int, error)
}
