package registry

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/telecom-registry/internal/config"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/admin/accessapprove"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/admin/accesslist"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/admin/accessreject"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/admin/usercreate"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/admin/userlist"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/admin/userremove"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/admin/userrole"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/debt/debtcreate"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/debt/debtors"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/debt/debtremove"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/debt/debtupdate"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/directory/operatorcreate"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/directory/operatorlist"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/directory/postofficelist"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/directory/servicecreate"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/directory/servicelist"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/numberchange/requestapprove"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/numberchange/requestcreate"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/numberchange/requestlist"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/numberchange/requestreject"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/numberchange/requeststatus"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/phone/phonecreate"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/phone/phoneremove"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/repair/repaircreate"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/repair/repairlist"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/repair/repairread"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/repair/repairremove"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/repair/repairupdate"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/report/reportcustom"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/report/reporttemplate"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/subscriber/create"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/subscriber/list"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/subscriber/read"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/subscriber/remove"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/subscriber/search"
	"github.com/magabrotheeeer/telecom-registry/internal/http/handlers/subscriber/update"
	"github.com/magabrotheeeer/telecom-registry/internal/http/middlewarectx"
	"github.com/magabrotheeeer/telecom-registry/internal/lib/jwt"
	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// RegisterRoutes регистрирует все маршруты приложения.
// Роль берётся из JWT через IdentityMiddleware, без токена
// запрос продолжается как гостевой, а доступ к конкретным
// группам ограничивает middlewarectx.Allow.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, jwtMaker jwt.Maker, s Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(middlewarectx.IdentityMiddleware(jwtMaker, logger))
	r.Use(middlewarectx.RateLimitMiddleware(logger, cfg.RateLimit, cfg.RateBurst))

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/login", login.New(logger, s.Auth).ServeHTTP)
		r.Post("/register", register.New(logger, s.Auth).ServeHTTP)

		// Публичные справочные разделы, доступны и гостям
		r.Get("/subscribers", list.New(logger, s.Subscriber).ServeHTTP)
		r.Get("/subscribers/{id}", read.New(logger, s.Subscriber, s.Debt).ServeHTTP)
		r.Get("/debts", debtors.New(logger, s.Debt).ServeHTTP)
		r.Get("/repairs", repairlist.New(logger, s.Repair).ServeHTTP)
		r.Get("/repairs/{id}", repairread.New(logger, s.Repair).ServeHTTP)
		r.Get("/services", servicelist.New(logger, s.Directory).ServeHTTP)
		r.Get("/operators", operatorlist.New(logger, s.Directory).ServeHTTP)
		r.Get("/post-offices", postofficelist.New(logger, s.Directory).ServeHTTP)

		// Группа для зарегистрированных пользователей
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.Allow(logger, models.RoleUser, models.RoleOperator, models.RoleAdmin))
			r.Get("/search", search.New(logger, s.Subscriber).ServeHTTP)
			r.Get("/reports/{id}", reporttemplate.New(logger, s.Report).ServeHTTP)
			r.Post("/requests", requestcreate.New(logger, s.NumberChange).ServeHTTP)
		})

		// Группа операторов
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.Allow(logger, models.RoleOperator, models.RoleAdmin))
			r.Post("/subscribers", create.New(logger, s.Subscriber).ServeHTTP)
			r.Put("/subscribers/{id}", update.New(logger, s.Subscriber).ServeHTTP)
			r.Post("/subscribers/{id}/phones", phonecreate.New(logger, s.Subscriber).ServeHTTP)
			r.Delete("/subscribers/{id}/phones/{phoneID}", phoneremove.New(logger, s.Subscriber).ServeHTTP)
			r.Post("/subscribers/{id}/debts", debtcreate.New(logger, s.Debt).ServeHTTP)
			r.Put("/debts/{debtID}", debtupdate.New(logger, s.Debt).ServeHTTP)
			r.Delete("/debts/{debtID}", debtremove.New(logger, s.Debt).ServeHTTP)
			r.Get("/requests", requestlist.New(logger, s.NumberChange).ServeHTTP)
			r.Post("/requests/{id}/approve", requestapprove.New(logger, s.NumberChange).ServeHTTP)
			r.Delete("/requests/{id}", requestreject.New(logger, s.NumberChange).ServeHTTP)
			r.Patch("/requests/{id}/status", requeststatus.New(logger, s.NumberChange).ServeHTTP)
			r.Post("/repairs", repaircreate.New(logger, s.Repair).ServeHTTP)
			r.Put("/repairs/{id}", repairupdate.New(logger, s.Repair).ServeHTTP)
			r.Delete("/repairs/{id}", repairremove.New(logger, s.Repair).ServeHTTP)
			r.Post("/operators", operatorcreate.New(logger, s.Directory).ServeHTTP)
			r.Post("/services", servicecreate.New(logger, s.Directory).ServeHTTP)
		})

		// Группа администратора
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.Allow(logger, models.RoleAdmin))
			r.Delete("/subscribers/{id}", remove.New(logger, s.Subscriber).ServeHTTP)
			r.Post("/sql", reportcustom.New(logger, s.Report).ServeHTTP)
			r.Get("/admin/users", userlist.New(logger, s.UserAdmin).ServeHTTP)
			r.Post("/admin/users", usercreate.New(logger, s.UserAdmin).ServeHTTP)
			r.Delete("/admin/users/{uid}", userremove.New(logger, s.UserAdmin).ServeHTTP)
			r.Patch("/admin/users/{uid}/role", userrole.New(logger, s.UserAdmin).ServeHTTP)
			r.Get("/admin/requests", accesslist.New(logger, s.UserAdmin).ServeHTTP)
			r.Post("/admin/requests/{id}/approve", accessapprove.New(logger, s.UserAdmin).ServeHTTP)
			r.Post("/admin/requests/{id}/reject", accessreject.New(logger, s.UserAdmin).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
