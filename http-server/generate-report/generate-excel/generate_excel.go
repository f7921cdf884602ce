package generate_excel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"rgis-prio/internal/pkg/response"
	"rgis-prio/internal/rgis"
	export_excel "rgis-prio/internal/service/export-excel"
)

type ExcelReportService interface {
	HeatSourceReport(ctx context.Context, filter rgis.ListParams) ([]byte, error)
}

// GenerateReportExcel отдаёт xlsx-отчёт по реестру теплоисточников.
func GenerateReportExcel(log *slog.Logger, gen ExcelReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generate-report.GenerateReportExcel"

		filter := rgis.ParamsFromQuery(r.URL.Query())

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second) // На Excel можно побольше времени
		defer cancel()

		excelBytes, err := gen.HeatSourceReport(ctx, filter)
		if err != nil {
			if errors.Is(err, export_excel.ErrNoData) {
				http.Error(w, "Нет данных для экспорта", http.StatusBadRequest)
				return
			}
			log.Error("failed to generate excel", "op", op, "err", err)
			response.Err(w, r, log, op, err)
			return
		}

		fileName := fmt.Sprintf("RGIS_HeatSources_%s.xlsx", time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", export_excel.MIMEType)
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
