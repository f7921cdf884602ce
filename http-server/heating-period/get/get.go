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

type PeriodProvider interface {
	HeatingPeriods(ctx context.Context, p rgis.ListParams) (*rgis.List[rgis.HeatingPeriod], error)
	HeatingPeriod(ctx context.Context, id int64) (*rgis.HeatingPeriod, error)
	HeatingSchedule(ctx context.Context, p rgis.ListParams) (*rgis.List[rgis.ScheduleEntry], error)
}

// GetHeatingPeriods отдаёт страницу отопительных периодов.
func GetHeatingPeriods(log *slog.Logger, provider PeriodProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.heating-period.GetHeatingPeriods"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := provider.HeatingPeriods(ctx, rgis.ParamsFromQuery(r.URL.Query()))
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, list)
	}
}

// GetHeatingPeriod отдаёт период по id.
func GetHeatingPeriod(log *slog.Logger, provider PeriodProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.heating-period.GetHeatingPeriod"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Неверный id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		period, err := provider.HeatingPeriod(ctx, id)
		if err != nil {
			log.Error("Не удалось получить отопительный период",
				slog.String("op", op),
				slog.Int64("id", id),
				slog.String("error", err.Error()),
			)
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, period)
	}
}

// GetHeatingSchedule отдаёт график включения отопления.
func GetHeatingSchedule(log *slog.Logger, provider PeriodProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.heating-period.GetHeatingSchedule"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		schedule, err := provider.HeatingSchedule(ctx, rgis.ParamsFromQuery(r.URL.Query()))
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, schedule)
	}
}
