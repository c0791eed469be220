package unregister

import (
	"context"
	"log/slog"
	"net/http"

	"activityBoard/internal/lib/api/params"
	"activityBoard/internal/lib/flash"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/view"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type UnregisterRequest struct {
	Email string `form:"email"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Remover
type Remover interface {
	Unregister(ctx context.Context, activity, email string) (string, error)
}

// New removes a participant once the user has confirmed. Success returns to
// the board without a message; failures are queued as an error banner.
func New(log *slog.Logger, remover Remover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.activity.unregister.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		activity, err := params.PathValue(r, "name")
		if err != nil {
			log.Error("invalid activity name", sl.Err(err))
			redirect(w, r, flash.Error(view.UnregisterFallbackText))
			return
		}

		var req UnregisterRequest

		if err = render.DecodeForm(r.Body, &req); err != nil {
			log.Error("failed to decode form", sl.Err(err))
			redirect(w, r, flash.Error(view.UnregisterFallbackText))
			return
		}

		if req.Email == "" {
			log.Error("email is required", slog.String("activity", activity))
			redirect(w, r, flash.Error("email is required"))
			return
		}

		log = log.With(slog.String("activity", activity), slog.String("email", req.Email))

		if _, err = remover.Unregister(r.Context(), activity, req.Email); err != nil {
			log.Error("failed to unregister participant", sl.Err(err))
			redirect(w, r, flash.Error(view.UnregisterFailureText(err)))
			return
		}

		log.Info("participant unregistered")

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func redirect(w http.ResponseWriter, r *http.Request, msg flash.Message) {
	flash.Set(w, msg)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
