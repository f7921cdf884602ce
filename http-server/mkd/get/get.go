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

type BuildingProvider interface {
	MKDBuildings(ctx context.Context, p rgis.ListParams) (*rgis.List[rgis.MKDBuilding], error)
	OKSList(ctx context.Context, p rgis.ListParams) (*rgis.List[rgis.OKS], error)
}

// GetMKDBuildings отдаёт страницу реестра МКД.
func GetMKDBuildings(log *slog.Logger, provider BuildingProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.mkd.GetMKDBuildings"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := provider.MKDBuildings(ctx, rgis.ParamsFromQuery(r.URL.Query()))
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, list)
	}
}

// GetOKSList отдаёт объекты капитального строительства.
func GetOKSList(log *slog.Logger, provider BuildingProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.mkd.GetOKSList"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := provider.OKSList(ctx, rgis.ParamsFromQuery(r.URL.Query()))
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, list)
	}
}
