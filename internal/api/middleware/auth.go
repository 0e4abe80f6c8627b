package middleware

import (
	"context"
	"net/http"

	"github.com/salonora/booking-service/internal/api/handlers"
)

// Идентификацию выполняет вышестоящий шлюз, сервис доверяет заголовкам
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	RoleAdmin = "admin"
)

const (
	msgMissingUserID = "липсва идентификация на потребителя"
	msgAdminOnly     = "достъпът е разрешен само за администратори"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
)

// Auth извлекает идентификацию пользователя из заголовков и кладет в контекст.
// Запросы без X-User-ID отклоняются
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, r.Header.Get(HeaderUserRole))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin пропускает только запросы с ролью администратора.
// Вешается после Auth
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// UserIDFromContext возвращает ID пользователя из контекста запроса
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// IsAdmin проверяет, что запрос выполняется администратором
func IsAdmin(ctx context.Context) bool {
	role, ok := ctx.Value(userRoleKey).(string)
	return ok && role == RoleAdmin
}
