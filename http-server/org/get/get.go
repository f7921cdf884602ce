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

type OrgProvider interface {
	Organizations(ctx context.Context, p rgis.ListParams) (*rgis.List[rgis.Organization], error)
	FreeCapacities(ctx context.Context, p rgis.ListParams) (*rgis.List[rgis.FreeCapacity], error)
}

// GetOrganizations отдаёт страницу организаций.
func GetOrganizations(log *slog.Logger, provider OrgProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.org.GetOrganizations"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := provider.Organizations(ctx, rgis.ParamsFromQuery(r.URL.Query()))
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, list)
	}
}

// GetFreeCapacities отдаёт свободные мощности для карты.
func GetFreeCapacities(log *slog.Logger, provider OrgProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.org.GetFreeCapacities"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := provider.FreeCapacities(ctx, rgis.ParamsFromQuery(r.URL.Query()))
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, list)
	}
}
