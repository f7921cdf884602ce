package generate_csv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"rgis-prio/internal/pkg/response"
	"rgis-prio/internal/rgis"
	export_csv "rgis-prio/internal/service/export-csv"
)

// ListProvider — те же типизированные методы, что у JSON-обработчиков:
// экспорт берёт данные тем же путём, что и таблицы.
type ListProvider interface {
	HeatSources(ctx context.Context, p rgis.ListParams) (*rgis.List[rgis.HeatSource], error)
	HeatingPeriods(ctx context.Context, p rgis.ListParams) (*rgis.List[rgis.HeatingPeriod], error)
	MKDBuildings(ctx context.Context, p rgis.ListParams) (*rgis.List[rgis.MKDBuilding], error)
	Incidents(ctx context.Context, p rgis.ListParams) (*rgis.List[rgis.Incident], error)
}

// ExportHeatSourcesCSV выгружает реестр теплоисточников.
func ExportHeatSourcesCSV(log *slog.Logger, provider ListProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generate-report.ExportHeatSourcesCSV"

		serveCSV(w, r, log, op, "hs", func(ctx context.Context, p rgis.ListParams) ([]byte, error) {
			list, err := provider.HeatSources(ctx, p)
			if err != nil {
				return nil, err
			}
			return export_csv.HeatSources(list.Items)
		})
	}
}

// ExportHeatingPeriodsCSV выгружает отопительные периоды.
func ExportHeatingPeriodsCSV(log *slog.Logger, provider ListProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generate-report.ExportHeatingPeriodsCSV"

		serveCSV(w, r, log, op, "hs-period", func(ctx context.Context, p rgis.ListParams) ([]byte, error) {
			list, err := provider.HeatingPeriods(ctx, p)
			if err != nil {
				return nil, err
			}
			return export_csv.HeatingPeriods(list.Items)
		})
	}
}

// ExportMKDBuildingsCSV выгружает реестр МКД.
func ExportMKDBuildingsCSV(log *slog.Logger, provider ListProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generate-report.ExportMKDBuildingsCSV"

		serveCSV(w, r, log, op, "mkd", func(ctx context.Context, p rgis.ListParams) ([]byte, error) {
			list, err := provider.MKDBuildings(ctx, p)
			if err != nil {
				return nil, err
			}
			return export_csv.MKDBuildings(list.Items)
		})
	}
}

// ExportIncidentsCSV выгружает инциденты.
func ExportIncidentsCSV(log *slog.Logger, provider ListProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generate-report.ExportIncidentsCSV"

		serveCSV(w, r, log, op, "incident", func(ctx context.Context, p rgis.ListParams) ([]byte, error) {
			list, err := provider.Incidents(ctx, p)
			if err != nil {
				return nil, err
			}
			return export_csv.Incidents(list.Items)
		})
	}
}

func serveCSV(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
	op, name string,
	build func(ctx context.Context, p rgis.ListParams) ([]byte, error),
) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	csvBytes, err := build(ctx, rgis.ParamsFromQuery(r.URL.Query()))
	if err != nil {
		if errors.Is(err, export_csv.ErrNoData) {
			http.Error(w, "Нет данных для экспорта", http.StatusBadRequest)
			return
		}
		log.Error("failed to generate csv", "op", op, "err", err)
		response.Err(w, r, log, op, err)
		return
	}

	fileName := fmt.Sprintf("%s_%s.csv", name, time.Now().Format("2006-01-02_150405"))

	w.Header().Set("Content-Type", export_csv.MIMEType)
	w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
	w.Write(csvBytes)
}
