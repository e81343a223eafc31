// Package web serves the HTML pages: the event list, event details and the booking form.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"devevent/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// homePageSize is the number of event cards on the home page.
const homePageSize = 24

// Server renders pages. It holds no per-request state.
type Server struct {
	logger    *slog.Logger
	events    domain.EventService
	bookings  domain.BookingAction
	analytics domain.Analytics
	pages     map[string]*template.Template
}

// NewServer parses the embedded templates and returns a page server.
func NewServer(logger *slog.Logger, events domain.EventService, bookings domain.BookingAction, analytics domain.Analytics) (*Server, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{"home", "event", "error"} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = t
	}
	return &Server{
		logger:    logger,
		events:    events,
		bookings:  bookings,
		analytics: analytics,
		pages:     pages,
	}, nil
}

// Register adds the page routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	static, _ := fs.Sub(staticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	mux.HandleFunc("GET /{$}", s.home)
	mux.HandleFunc("GET /events/{slug}", s.eventPage)
	mux.HandleFunc("POST /events/{slug}/book", s.book)
}

type homeData struct {
	Events []*domain.Event
}

type eventData struct {
	Event   *domain.Event
	Form    *BookingForm
	Similar []*domain.Event
}

type errorData struct {
	Status  int
	Message string
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	events, _, err := s.events.List(r.Context(), domain.PaginationParams{Page: 1, PageSize: homePageSize})
	if err != nil {
		s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		s.renderError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	s.render(w, r, http.StatusOK, "home", homeData{Events: events})
}

// lookupEvent resolves the {slug} path value, writing an error page when it cannot.
func (s *Server) lookupEvent(w http.ResponseWriter, r *http.Request) (*domain.Event, bool) {
	slug, err := domain.ValidateSlug(r.PathValue("slug"))
	if err != nil {
		s.renderError(w, r, http.StatusNotFound, "Event not found.")
		return nil, false
	}
	event, err := s.events.FindBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.renderError(w, r, http.StatusNotFound, "Event not found.")
			return nil, false
		}
		s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		s.renderError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return nil, false
	}
	return event, true
}

func (s *Server) eventPage(w http.ResponseWriter, r *http.Request) {
	event, ok := s.lookupEvent(w, r)
	if !ok {
		return
	}
	s.render(w, r, http.StatusOK, "event", eventData{
		Event:   event,
		Form:    NewBookingForm(event.ID, event.Slug),
		Similar: s.events.FindSimilar(r.Context(), event.Slug),
	})
}

func (s *Server) book(w http.ResponseWriter, r *http.Request) {
	event, ok := s.lookupEvent(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, http.StatusBadRequest, "Invalid form submission.")
		return
	}
	form := NewBookingForm(event.ID, event.Slug)
	// A visitor navigating away must not abort the insert.
	ctx := context.WithoutCancel(r.Context())
	if err := form.Submit(ctx, s.bookings, s.analytics, strings.TrimSpace(r.PostFormValue("email"))); err != nil {
		s.logger.WarnContext(r.Context(), "analytics report failed", "slug", event.Slug, "err", err)
	}
	s.render(w, r, http.StatusOK, "event", eventData{
		Event:   event,
		Form:    form,
		Similar: s.events.FindSimilar(r.Context(), event.Slug),
	})
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.render(w, r, status, "error", errorData{Status: status, Message: message})
}

// render executes into a buffer first so a template failure can still produce a clean 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := s.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		s.logger.ErrorContext(r.Context(), "render page failed", "page", page, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
