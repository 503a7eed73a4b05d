package routes

import (
	"net/http"

	"hospitalcompare/internal/api/handlers"
	"hospitalcompare/internal/api/middleware"
)

// Router holds all route handlers

type Router struct {
	mux *http.ServeMux

	searchHandler *handlers.SearchHandler

	bookingHandler *handlers.BookingHandler

	reviewsHandler *handlers.ReviewsHandler

	authHandler *handlers.AuthHandler

	appointmentsHandler *handlers.AppointmentsHandler
}

// NewRouter creates a new router

func NewRouter(

	searchHandler *handlers.SearchHandler,

	bookingHandler *handlers.BookingHandler,

	reviewsHandler *handlers.ReviewsHandler,

	authHandler *handlers.AuthHandler,

	appointmentsHandler *handlers.AppointmentsHandler,

) *Router {

	return &Router{

		mux: http.NewServeMux(),

		searchHandler: searchHandler,

		bookingHandler: bookingHandler,

		reviewsHandler: reviewsHandler,

		authHandler: authHandler,

		appointmentsHandler: appointmentsHandler,
	}

}

// SetupRoutes configures all application routes

func (r *Router) SetupRoutes() http.Handler {

	// Health check endpoint

	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {

		w.WriteHeader(http.StatusOK)

		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}

	})

	// Search endpoints

	r.mux.HandleFunc("GET /app/services", r.searchHandler.ListServices)

	r.mux.HandleFunc("POST /app/search", r.searchHandler.Search)

	r.mux.HandleFunc("POST /app/search/locate", r.searchHandler.Locate)

	r.mux.HandleFunc("GET /app/results", r.searchHandler.Results)

	// Selection and comparison endpoints

	r.mux.HandleFunc("POST /app/selection/toggle", r.searchHandler.ToggleSelection)

	r.mux.HandleFunc("POST /app/compare", r.searchHandler.Compare)

	r.mux.HandleFunc("GET /app/compare", r.searchHandler.ActiveComparison)

	// Booking endpoints

	r.mux.HandleFunc("POST /app/book/target", r.bookingHandler.SetTarget)

	r.mux.HandleFunc("POST /app/book", r.bookingHandler.Submit)

	r.mux.HandleFunc("GET /app/book", r.bookingHandler.Status)

	// Review endpoints

	r.mux.HandleFunc("GET /app/reviews/{id}", r.reviewsHandler.GetReviews)

	// Auth and session endpoints

	r.mux.HandleFunc("POST /app/login", r.authHandler.Login)

	r.mux.HandleFunc("POST /app/register", r.authHandler.Register)

	r.mux.HandleFunc("POST /app/logout", r.authHandler.Logout)

	r.mux.HandleFunc("GET /app/session", r.authHandler.Session)

	// Appointment history endpoint

	r.mux.HandleFunc("GET /app/appointments", r.appointmentsHandler.ListAppointments)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so every response gets CORS headers.

	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	handler = middleware.CORSMiddleware(handler)

	return handler
}
