package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"rgis-prio/internal/pkg/response"
	"rgis-prio/internal/rgis"
)

type HeatSourceSaver interface {
	CreateHeatSource(ctx context.Context, in rgis.HeatSourceInput) (*rgis.HeatSource, error)
}

// SaveHeatSource создаёт теплоисточник через бэкенд.
func SaveHeatSource(log *slog.Logger, saver HeatSourceSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.heat-source.SaveHeatSource"

		var req rgis.HeatSourceInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Неверный JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Неверные данные", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		hs, err := saver.CreateHeatSource(ctx, req)
		if err != nil {
			log.Error("Ошибка при создании теплоисточника", slog.String("op", op), slog.String("error", err.Error()))
			response.Err(w, r, log, op, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, hs)
	}
}
