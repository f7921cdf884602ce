package login

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

type Authenticator interface {
	Login(ctx context.Context, login, password string) (*rgis.LoginResult, error)
	Logout() error
}

// PermissionCache — кэш прав, сбрасываемый при логауте.
type PermissionCache interface {
	Clear()
}

type Request struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type Response struct {
	User    json.RawMessage `json:"user"`
	Message string          `json:"message,omitempty"`
}

// LoginOperator проксирует вход на бэкенд и открывает сессию.
// Токен остаётся на сервере, фронту уходит только профиль.
func LoginOperator(log *slog.Logger, auth Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.login.LoginOperator"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Неверный JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Неверные данные", http.StatusBadRequest)
			return
		}
		if req.Login == "" || req.Password == "" {
			http.Error(w, "Логин и пароль обязательны", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		result, err := auth.Login(ctx, req.Login, req.Password)
		if err != nil {
			log.Error("Ошибка входа", slog.String("op", op), slog.String("error", err.Error()))
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, Response{User: result.User, Message: result.Message})
	}
}

// LogoutOperator закрывает сессию и сбрасывает кэш прав.
func LogoutOperator(log *slog.Logger, auth Authenticator, perms PermissionCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.login.LogoutOperator"

		if err := auth.Logout(); err != nil {
			log.Error("Ошибка логаута", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Внутренняя ошибка", http.StatusInternalServerError)
			return
		}
		perms.Clear()

		render.JSON(w, r, map[string]string{"status": "ok"})
	}
}
