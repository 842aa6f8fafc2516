package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-NailStudio/internal/api/handlers"
	"github.com/m04kA/SMC-NailStudio/internal/service/adminauth"
)

const (
	msgMissingToken = "se requiere autenticación"
	msgInvalidToken = "sesión inválida o expirada"
)

type contextKey string

const adminClaimsKey contextKey = "admin_claims"

// TokenVerifier проверка токена администратора
type TokenVerifier interface {
	Verify(token string) (*adminauth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth пропускает только запросы с валидным Bearer токеном администратора
func AdminAuth(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), adminClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminClaims достает данные токена из контекста
func GetAdminClaims(ctx context.Context) (*adminauth.Claims, bool) {
	claims, ok := ctx.Value(adminClaimsKey).(*adminauth.Claims)
	return claims, ok
}
