package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID заголовок сквозного идентификатора запроса
const HeaderRequestID = "X-Request-ID"

// RequestID проставляет идентификатор запроса, если клиент его не передал.
// Идентификатор возвращается в ответе для корреляции логов
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
			r.Header.Set(HeaderRequestID, requestID)
		}

		w.Header().Set(HeaderRequestID, requestID)

		next.ServeHTTP(w, r)
	})
}
