package save

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"rgis-prio/internal/pkg/response"
)

// Uploader — загрузки файлов на бэкенд (rgis.Client).
type Uploader interface {
	UploadLoginBackground(ctx context.Context, filename string, img io.Reader) error
	ImportHeatSources(ctx context.Context, filename string, file io.Reader) error
}

const maxUploadSize = 20 << 20 // 20 МБ

// UploadBackground проксирует загрузку фона страницы входа (поле img).
func UploadBackground(log *slog.Logger, uploader Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.settings.UploadBackground"

		serveUpload(w, r, log, op, "img", uploader.UploadLoginBackground)
	}
}

// ImportHeatSources проксирует excel-импорт теплоисточников (поле file).
func ImportHeatSources(log *slog.Logger, uploader Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.settings.ImportHeatSources"

		serveUpload(w, r, log, op, "file", uploader.ImportHeatSources)
	}
}

func serveUpload(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
	op, field string,
	upload func(ctx context.Context, filename string, file io.Reader) error,
) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Error("Неверная multipart-форма", slog.String("op", op), slog.String("error", err.Error()))
		http.Error(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		http.Error(w, "Отсутствует файл "+field, http.StatusBadRequest)
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := upload(ctx, header.Filename, file); err != nil {
		log.Error("Ошибка загрузки файла", slog.String("op", op), slog.String("error", err.Error()))
		response.Err(w, r, log, op, err)
		return
	}

	render.JSON(w, r, map[string]string{"status": "ok"})
}
