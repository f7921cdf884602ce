// Пакет response переводит ошибки клиента РГИС в HTTP-ответы дашборда.
// Одно место маппинга, чтобы обработчики не повторяли switch по таксономии.
package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"rgis-prio/internal/rgis"
)

type errBody struct {
	Error string `json:"error"`
}

// Err пишет ошибку клиента РГИС подходящим статусом.
func Err(w http.ResponseWriter, r *http.Request, log *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, rgis.ErrAuthRequired), errors.Is(err, rgis.ErrReauthRequired):
		log.Warn("сессия отсутствует или отвергнута", slog.String("op", op))
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, errBody{Error: "требуется вход"})

	case errors.Is(err, rgis.ErrSuperseded):
		// Запрос вытеснен более новым — фронт этот ответ игнорирует
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, errBody{Error: "запрос вытеснен более новым"})

	case errors.Is(err, rgis.ErrMalformedResponse):
		log.Error("источник данных вернул неизвестную форму", slog.String("op", op), slog.String("error", err.Error()))
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, errBody{Error: "неверный ответ источника данных"})

	default:
		var reqErr *rgis.RequestError
		if errors.As(err, &reqErr) {
			// Статус и сообщение бэкенда пробрасываем как есть
			render.Status(r, reqErr.Status)
			render.JSON(w, r, errBody{Error: reqErr.Message})
			return
		}

		log.Error("ошибка запроса к РГИС", slog.String("op", op), slog.String("error", err.Error()))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errBody{Error: "внутренняя ошибка"})
	}
}
