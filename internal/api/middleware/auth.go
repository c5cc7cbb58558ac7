package middleware

import (
	"net/http"

	"github.com/jaysonsaraujo/phm-app/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

// Auth проверяет наличие идентификатора пользователя в заголовке
// Защищенные операции (сохранение, отмена, настройки) требуют
// аутентифицированного сотрудника секретариата
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(userIDHeader) == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "autenticação necessária")
			return
		}

		next.ServeHTTP(w, r)
	})
}
