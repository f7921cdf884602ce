package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"rgis-prio/internal/pkg/response"
	"rgis-prio/internal/rgis"
)

type HeatSourceEditor interface {
	UpdateHeatSource(ctx context.Context, id int64, in rgis.HeatSourceInput) (*rgis.HeatSource, error)
	DeleteHeatSource(ctx context.Context, id int64) error
}

// UpdateHeatSource обновляет теплоисточник.
func UpdateHeatSource(log *slog.Logger, editor HeatSourceEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.heat-source.UpdateHeatSource"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Неверный id", http.StatusBadRequest)
			return
		}

		var req rgis.HeatSourceInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Неверный JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Неверные данные", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		hs, err := editor.UpdateHeatSource(ctx, id, req)
		if err != nil {
			log.Error("Ошибка при обновлении теплоисточника",
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

// DeleteHeatSource удаляет теплоисточник.
func DeleteHeatSource(log *slog.Logger, editor HeatSourceEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.heat-source.DeleteHeatSource"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Неверный id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := editor.DeleteHeatSource(ctx, id); err != nil {
			log.Error("Ошибка при удалении теплоисточника",
				slog.String("op", op),
				slog.Int64("id", id),
				slog.String("error", err.Error()),
			)
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, map[string]string{"status": "ok"})
	}
}
