package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/magabrotheeeer/telecom-registry/internal/http/response"
	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// Allow возвращает middleware, пропускающий только перечисленные роли.
// Гость получает 401, авторизованный пользователь с недостаточной
// ролью — 403.
func Allow(log *slog.Logger, roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())
			if role.OneOf(roles...) {
				next.ServeHTTP(w, r)
				return
			}

			if role == models.RoleGuest {
				log.Warn("unauthenticated access denied", slog.String("path", r.URL.Path))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			log.Warn("access denied",
				slog.String("path", r.URL.Path),
				slog.String("role", role.String()))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("insufficient role"))
		})
	}
}
