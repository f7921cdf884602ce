package auth

import (
	"context"
	"net/http"

	"rgis-prio/internal/session"
)

// RequireSession пускает дальше только при живой сессии оператора.
// Сам токен по назначению использует клиент РГИС, здесь только проверка наличия.
func RequireSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := store.Token(); err != nil {
				requireAuth(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminChecker — проверка административного доступа (permissions.Cache).
type AdminChecker interface {
	HasAdminAccess(ctx context.Context) bool
}

// RequireAdmin закрывает админские маршруты.
func RequireAdmin(perms AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !perms.HasAdminAccess(r.Context()) {
				http.Error(w, "Недостаточно прав", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func requireAuth(w http.ResponseWriter) {
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}
