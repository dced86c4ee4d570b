// Package httpapi serves the use cases as a JSON API for `aura serve`.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

const shutdownTimeout = 5 * time.Second

// Server holds the use cases behind the HTTP handlers. Every request reads
// its own state from the store; the server keeps none between requests.
type Server struct {
	uc     contract.UseCases
	log    *slog.Logger
	router chi.Router
}

// New creates a Server with all routes configured. An empty allowedOrigins
// allows any origin.
func New(uc contract.UseCases, allowedOrigins []string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	s := &Server{uc: uc, log: log, router: chi.NewRouter()}
	s.routes(allowedOrigins)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes(allowedOrigins []string) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", s.handleDashboard)
		r.Get("/recommendations", s.handleRecommendations)
		r.Get("/score", s.handleScore)
		r.Get("/badges", s.handleBadges)
		r.Get("/tips", s.handleTips)

		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile", s.handlePutProfile)
		r.Get("/health", s.handleHealth)
		r.Post("/cycle", s.handleCycle)

		r.Get("/logs", s.handleRecentLogs)
		r.Post("/activities", s.handleLogActivity)
		r.Post("/water", s.handleDrinkWater)
		r.Post("/calories", s.handleAddCalories)
		r.Post("/moods", s.handleLogMood)
		r.Post("/reset", s.handleReset)

		r.Get("/weather", s.handleCurrentWeather)
		r.Post("/weather", s.handleFetchWeather)

		r.Get("/chat", s.handleChatHistory)
		r.Post("/chat", s.handleChat)
		r.Delete("/chat", s.handleClearChat)

		r.Get("/quiz", s.handleQuizStatus)
		r.Post("/quiz/start", s.handleQuizStart)
		r.Post("/quiz/answer", s.handleQuizAnswer)
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}
