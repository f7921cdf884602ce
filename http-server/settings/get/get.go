package get

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"rgis-prio/internal/pkg/response"
)

// SettingsProvider — настройки дашборда с бэкенда (rgis.Client).
type SettingsProvider interface {
	Settings(ctx context.Context) (json.RawMessage, error)
}

// GetSettings отдаёт настройки как есть, без разбора формы.
func GetSettings(log *slog.Logger, provider SettingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.settings.GetSettings"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		raw, err := provider.Settings(ctx)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(raw)
	}
}
