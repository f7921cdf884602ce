package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"rgis-prio/internal/pkg/response"
	"rgis-prio/internal/rgis"
)

type HeatSourceProvider interface {
	HeatSources(ctx context.Context, p rgis.ListParams) (*rgis.List[rgis.HeatSource], error)
	HeatSource(ctx context.Context, id int64) (*rgis.HeatSource, error)
	HeatSourceTypes(ctx context.Context) (*rgis.List[rgis.HeatSourceType], error)
}

// GetHeatSources отдаёт страницу реестра теплоисточников.
// Быстрые повторные запросы (пагинация) идут через Sequencer:
// ответ вытесненного запроса фронт не получает.
func GetHeatSources(log *slog.Logger, provider HeatSourceProvider, seq *rgis.Sequencer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.heat-source.GetHeatSources"

		params := rgis.ParamsFromQuery(r.URL.Query())

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var list *rgis.List[rgis.HeatSource]
		err := seq.Do(ctx, "hs-list", func(ctx context.Context) error {
			var err error
			list, err = provider.HeatSources(ctx, params)
			return err
		})
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, list)
	}
}

// GetHeatSource отдаёт теплоисточник по id.
func GetHeatSource(log *slog.Logger, provider HeatSourceProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.heat-source.GetHeatSource"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Неверный id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		hs, err := provider.HeatSource(ctx, id)
		if err != nil {
			log.Error("Не удалось получить теплоисточник",
				slog.String("op", op),
				slog.Int64("id", id),
				slog.String("error", err.Error()),
			)
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, hs)
	}
}

// GetHeatSourceTypes отдаёт справочник типов.
func GetHeatSourceTypes(log *slog.Logger, provider HeatSourceProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.heat-source.GetHeatSourceTypes"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		types, err := provider.HeatSourceTypes(ctx)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, types)
	}
}
