package confirmUnregister

import (
	"bytes"
	"log/slog"
	"net/http"

	"activityBoard/internal/lib/api/params"
	"activityBoard/internal/lib/flash"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/view"
)

// New asks the user to confirm a removal. It never talks to the activities
// API; only the confirmed POST does.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.activity.confirmUnregister.New"

		log := log.With(slog.String("op", op))

		activity, err := params.PathValue(r, "name")
		if err != nil {
			log.Error("invalid activity name", sl.Err(err))
			flash.Set(w, flash.Error("activity name is required"))
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		email := r.URL.Query().Get("email")
		if email == "" {
			log.Error("email is required", slog.String("activity", activity))
			flash.Set(w, flash.Error("email is required"))
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		var buf bytes.Buffer
		if err = view.RenderConfirm(&buf, view.NewConfirmPage(activity, email)); err != nil {
			log.Error("failed to render confirmation", sl.Err(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = buf.WriteTo(w)
	}
}
