package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"devevent/internal/delivery/http/controllers"
	"devevent/internal/delivery/http/middleware"
)

// Pages registers the server-rendered pages on a mux.
type Pages interface {
	Register(mux *http.ServeMux)
}

// NewRouter initializes the HTTP router with all application routes wrapped in the middleware chain.
func NewRouter(
	logger *slog.Logger,
	allowedOrigins []string,
	eventController *controllers.EventController,
	bookingController *controllers.BookingController,
	pages Pages,
) http.Handler {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("GET /api/events", eventController.ListEvents)
	// {slug...} also matches an empty trailing segment so the handler can answer 400.
	mux.HandleFunc("GET /api/events/{slug...}", eventController.GetEventBySlug)
	mux.HandleFunc("GET /api/events/{slug}/similar", eventController.GetSimilarEvents)
	mux.HandleFunc("POST /api/bookings", bookingController.CreateBooking)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	if pages != nil {
		pages.Register(mux)
	}

	return middleware.RequestID(middleware.Logging(logger, middleware.CORS(allowedOrigins, mux)))
}
