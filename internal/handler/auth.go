package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/GoArmGo/BlogApp/internal/apperr"
	"github.com/GoArmGo/BlogApp/internal/auth"
)

// AuthGate пропускает запрос только с заголовком вида "Bearer <token>",
// чей токен прошёл проверку верификатора. Публичные маршруты этим
// middleware не оборачиваются — решение принимается при регистрации
// маршрута, а не сравнением путей на каждом запросе.
func AuthGate(verifier auth.TokenVerifier, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, apperr.AuthRequired("Token de autorización requerido"), logger)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeError(w, apperr.AuthInvalid("Token de autorización inválido"), logger)
				return
			}

			if err := verifier.Verify(token); err != nil {
				writeError(w, apperr.AuthInvalid("Token de autorización inválido").WithCause(err), logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
