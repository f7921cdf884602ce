package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"rgis-prio/internal/pkg/response"
	"rgis-prio/internal/rgis"
)

type IncidentProvider interface {
	Incidents(ctx context.Context, p rgis.ListParams) (*rgis.List[rgis.Incident], error)
	EDDSIncidents(ctx context.Context, p rgis.ListParams) (*rgis.List[rgis.Incident], error)
}

// GetIncidents отдаёт страницу инцидентов.
func GetIncidents(log *slog.Logger, provider IncidentProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.incident.GetIncidents"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := provider.Incidents(ctx, rgis.ParamsFromQuery(r.URL.Query()))
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, list)
	}
}

// GetEDDSIncidents отдаёт инциденты ЕДДС.
func GetEDDSIncidents(log *slog.Logger, provider IncidentProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.incident.GetEDDSIncidents"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := provider.EDDSIncidents(ctx, rgis.ParamsFromQuery(r.URL.Query()))
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, list)
	}
}
