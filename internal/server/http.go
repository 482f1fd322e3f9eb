package server

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// ReadinessCheck reports whether downstream dependencies are reachable.
type ReadinessCheck func(ctx context.Context) error

// NewRouter wires the trivia routes plus health and metrics endpoints behind
// the middleware chain (request logging -> metrics -> CORS).
func NewRouter(cfg *config.App, logger zerolog.Logger, handlers *trivia.HTTPHandlers, ready ReadinessCheck) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if ready != nil {
			if err := ready(r.Context()); err != nil {
				logger.Error().Err(err).Msg("dependency ping failed")
				httperrors.Respond(w, http.StatusServiceUnavailable)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/categories", handlers.HandleCategories)
	mux.HandleFunc("/categories/{id}/questions", handlers.HandleCategoryQuestions)
	mux.HandleFunc("/questions", handlers.HandleQuestions)
	mux.HandleFunc("/questions/search", handlers.HandleSearchQuestions)
	mux.HandleFunc("/questions/{id}", handlers.HandleQuestionByID)
	mux.HandleFunc("/quizzes", handlers.HandleQuizzes)

	// Unknown paths get the JSON 404 envelope, not the stdlib text page.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w)
	})

	var handler http.Handler = mux
	handler = withCORS(cfg.CORS, handler)
	handler = withMetrics(handler)
	handler = withRequestLogging(logger, handler)
	return handler
}

// NewHTTPServer builds the API server over the router, with a readiness
// check that pings Postgres and Redis.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, redisClient *redis.Client, handlers *trivia.HTTPHandlers) *http.Server {
	ready := func(ctx context.Context) error {
		return pingDependencies(ctx, pool, redisClient)
	}
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: NewRouter(cfg, logger, handlers, ready),
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, redisClient *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return err
	}
	return nil
}
