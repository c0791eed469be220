package listActivities

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"activityBoard/internal/lib/flash"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/models"
	"activityBoard/internal/view"

	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ActivitiesLister
type ActivitiesLister interface {
	List(ctx context.Context) (models.Roster, error)
}

// New renders the board: the activity cards and the signup dropdown, both
// built from one fresh roster fetch.
func New(log *slog.Logger, lister ActivitiesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.activity.listActivities.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		msg := flash.Pop(w, r)

		var form view.SignupForm
		if msg != nil {
			form = view.SignupForm{Email: msg.Email, Activity: msg.Activity}
		}

		status := http.StatusOK

		var page view.Page

		roster, err := lister.List(r.Context())
		if err != nil {
			log.Error("failed to load activities", sl.Err(err))
			status = http.StatusBadGateway
			page = view.NewErrorPage(form, msg)
		} else {
			log.Info("activities loaded", slog.Int("count", len(roster)))
			page = view.NewPage(roster, form, msg)
		}

		var buf bytes.Buffer
		if err = view.RenderPage(&buf, page); err != nil {
			log.Error("failed to render page", sl.Err(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(status)
		_, _ = buf.WriteTo(w)
	}
}
