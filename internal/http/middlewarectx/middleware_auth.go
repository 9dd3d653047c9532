// Package middlewarectx содержит HTTP middleware реестра: разбор JWT,
// ролевые ограничения маршрутов и лимит частоты запросов.
//
// IdentityMiddleware разбирает JWT из заголовка Authorization и кладёт в
// контекст логин и роль. Запрос без токена или с негодным токеном не
// отклоняется: он продолжается от имени гостя, а доступ решают
// ограничения конкретного маршрута.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/magabrotheeeer/telecom-registry/internal/lib/jwt"
	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// User — ключ для логина пользователя в контексте
	User Key = "login"
	// Role — ключ для роли пользователя в контексте
	Role Key = "role"
)

// IdentityMiddleware возвращает HTTP middleware, который извлекает личность
// из JWT. Отсутствующий или негодный токен даёт роль guest.
func IdentityMiddleware(jwtMaker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.IdentityMiddleware"

			login := ""
			role := models.RoleGuest

			authHeader := r.Header.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
				claims, err := jwtMaker.ParseToken(tokenStr)
				if err != nil {
					log.Warn("invalid token, continuing as guest",
						slog.String("op", op),
						slog.String("request_id", middleware.GetReqID(r.Context())))
				} else {
					login = claims.Login
					role = models.ParseRole(claims.Role)
				}
			}

			ctx := context.WithValue(r.Context(), User, login)
			ctx = context.WithValue(ctx, Role, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RoleFromContext возвращает роль запроса; отсутствие значения
// трактуется как guest.
func RoleFromContext(ctx context.Context) models.Role {
	role, ok := ctx.Value(Role).(models.Role)
	if !ok {
		return models.RoleGuest
	}
	return role
}

// UserFromContext возвращает логин запроса, пустая строка для гостя.
func UserFromContext(ctx context.Context) string {
	login, _ := ctx.Value(User).(string)
	return login
}
