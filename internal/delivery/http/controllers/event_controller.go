package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"devevent/internal/delivery/http/helpers"
	"devevent/internal/domain"
)

// Response messages for the event endpoints.
const (
	msgMissingSlug    = "Missing slug route parameter."
	msgEventNotFound  = "Event not found."
	msgEventFetched   = "Event fetched successfully."
	msgEventFailed    = "Failed to fetch event."
	msgEventsFetched  = "Events fetched successfully."
	msgEventsFailed   = "Failed to fetch events."
	msgSimilarFetched = "Similar events fetched successfully."
)

// GetEventResponse is the 200 body for GET /api/events/{slug}.
type GetEventResponse struct {
	Message string        `json:"message"`
	Event   *domain.Event `json:"event"`
}

// ListEventsResponse is the 200 body for GET /api/events.
type ListEventsResponse struct {
	Message    string                 `json:"message"`
	Events     []*domain.Event        `json:"events"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// SimilarEventsResponse is the 200 body for GET /api/events/{slug}/similar.
type SimilarEventsResponse struct {
	Message string          `json:"message"`
	Events  []*domain.Event `json:"events"`
}

type EventController struct {
	Logger     *slog.Logger
	Service    domain.EventService
	Production bool
}

// NewEventController returns the event API controller. production hides internal error details in 500 responses.
func NewEventController(logger *slog.Logger, svc domain.EventService, production bool) *EventController {
	return &EventController{
		Logger:     logger,
		Service:    svc,
		Production: production,
	}
}

// GetEventBySlug godoc
// @Summary Get an event by slug
// @Description Validates the slug (lowercase letters/digits separated by single hyphens, at most 120 characters) and returns the matching event.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.GetEventResponse
// @Failure 400 {object} helpers.MessageResponse "missing slug"
// @Failure 404 {object} helpers.MessageResponse "event not found"
// @Failure 422 {object} helpers.MessageResponse "invalid slug"
// @Failure 500 {object} helpers.MessageResponse "details only outside production"
// @Router /api/events/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("slug")
	if raw == "" {
		helpers.WriteMessage(w, http.StatusBadRequest, msgMissingSlug)
		return
	}
	slug, err := domain.ValidateSlug(raw)
	if err != nil {
		helpers.WriteMessage(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	event, err := c.Service.FindBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteMessage(w, http.StatusNotFound, msgEventNotFound)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteInternalError(w, msgEventFailed, err, c.Production)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, GetEventResponse{Message: msgEventFetched, Event: event})
}

// ListEvents godoc
// @Summary List events
// @Description Returns events newest first with offset pagination.
// @Tags events
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 12, max 100)"
// @Success 200 {object} controllers.ListEventsResponse
// @Failure 500 {object} helpers.MessageResponse "details only outside production"
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	events, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteInternalError(w, msgEventsFailed, err, c.Production)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSON(w, http.StatusOK, ListEventsResponse{
		Message:    msgEventsFetched,
		Events:     events,
		Pagination: helpers.NewPaginationMeta(params, total),
	})
}

// GetSimilarEvents godoc
// @Summary List events similar to an event
// @Description Returns other events sharing at least one tag with the event. Lookup failures yield an empty list.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.SimilarEventsResponse
// @Failure 422 {object} helpers.MessageResponse "invalid slug"
// @Router /api/events/{slug}/similar [get]
func (c *EventController) GetSimilarEvents(w http.ResponseWriter, r *http.Request) {
	slug, err := domain.ValidateSlug(r.PathValue("slug"))
	if err != nil {
		helpers.WriteMessage(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, SimilarEventsResponse{
		Message: msgSimilarFetched,
		Events:  c.Service.FindSimilar(r.Context(), slug),
	})
}
