package router

import (
	"context"
	"log/slog"
	"net/http"

	"activityBoard/internal/http-server/handlers/activity/confirmUnregister"
	"activityBoard/internal/http-server/handlers/activity/getActivities"
	"activityBoard/internal/http-server/handlers/activity/listActivities"
	"activityBoard/internal/http-server/handlers/activity/signup"
	"activityBoard/internal/http-server/handlers/activity/unregister"
	"activityBoard/internal/http-server/middleware/mwlogger"
	"activityBoard/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Activities is everything the board needs from the activities API.
type Activities interface {
	List(ctx context.Context) (models.Roster, error)
	Signup(ctx context.Context, activity, email string) (string, error)
	Unregister(ctx context.Context, activity, email string) (string, error)
}

func New(log *slog.Logger, api Activities, staticDir string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)

	if staticDir != "" {
		fs := http.FileServer(http.Dir(staticDir))
		router.Handle("/static/*", http.StripPrefix("/static/", fs))
	}

	router.Get("/", listActivities.New(log, api))
	router.Post("/signup", signup.New(log, api))
	router.Get("/activities/{name}/unregister", confirmUnregister.New(log))
	router.Post("/activities/{name}/unregister", unregister.New(log, api))
	router.Get("/api/activities", getActivities.New(log, api))
	router.Handle("/metrics", promhttp.Handler())

	return router
}
