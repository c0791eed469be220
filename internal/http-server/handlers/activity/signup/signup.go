package signup

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"activityBoard/internal/lib/api/response"
	"activityBoard/internal/lib/flash"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/view"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type SignupRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Activity string `form:"activity" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Registrar
type Registrar interface {
	Signup(ctx context.Context, activity, email string) (string, error)
}

// New handles the signup form. Every outcome ends in a redirect to the
// board, which reloads the roster and shows the queued message.
func New(log *slog.Logger, registrar Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.activity.signup.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req SignupRequest

		if err := render.DecodeForm(r.Body, &req); err != nil {
			log.Error("failed to decode form", sl.Err(err))
			redirect(w, r, flash.Error(view.SignupFallbackText))
			return
		}

		log.Info("form decoded", slog.Any("request", req))

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				redirect(w, r, refill(flash.Error(response.ValidationError(validateErr).Error), req))
				return
			}
		}

		log = log.With(slog.String("activity", req.Activity))

		message, err := registrar.Signup(r.Context(), req.Activity, req.Email)
		if err != nil {
			log.Error("failed to sign up", sl.Err(err))
			redirect(w, r, refill(flash.Error(view.SignupFailureText(err)), req))
			return
		}

		log.Info("signed up", slog.String("email", req.Email))

		// Success leaves the form empty on the next render.
		redirect(w, r, flash.Success(message))
	}
}

func refill(msg flash.Message, req SignupRequest) flash.Message {
	msg.Email = req.Email
	msg.Activity = req.Activity

	return msg
}

func redirect(w http.ResponseWriter, r *http.Request, msg flash.Message) {
	flash.Set(w, msg)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
