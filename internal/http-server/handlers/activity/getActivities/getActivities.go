package getActivities

import (
	"context"
	"log/slog"
	"net/http"

	"activityBoard/internal/lib/api/response"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/models"

	"github.com/go-chi/render"
)

type ActivitiesResponse struct {
	response.Response
	Activities models.Roster `json:"activities"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ActivitiesLister
type ActivitiesLister interface {
	List(ctx context.Context) (models.Roster, error)
}

func New(log *slog.Logger, lister ActivitiesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.activity.getActivities.New"

		log := log.With(slog.String("op", op))

		roster, err := lister.List(r.Context())
		if err != nil {
			log.Error("failed to get activities", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to get activities"))
			return
		}

		log.Info("activities retrieved successfully", slog.Int("count", len(roster)))

		responseOK(w, r, roster)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, roster models.Roster) {
	if roster == nil {
		roster = models.Roster{}
	}

	render.JSON(w, r, ActivitiesResponse{
		Response:   response.OK(),
		Activities: roster,
	})
}
