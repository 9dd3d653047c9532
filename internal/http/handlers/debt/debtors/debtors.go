// Package debtors реализует HTTP-обработчик сводки по должникам.
//
// Гости видят сводку сумм активных долгов по абонентам. Авторизованные
// пользователи могут дополнительно искать долги по маске ФИО через
// параметр q.
package debtors

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/telecom-registry/internal/http/middlewarectx"
	"github.com/magabrotheeeer/telecom-registry/internal/http/response"
	"github.com/magabrotheeeer/telecom-registry/internal/lib/sl"
	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// Handler управляет HTTP-запросами сводки по должникам.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики сводки по должникам.
type Service interface {
	Debtors(ctx context.Context) ([]*models.DebtorTotal, error)
	SearchDebtors(ctx context.Context, pattern string) ([]*models.DebtorRow, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Сводка по должникам
// @Description Возвращает абонентов с суммой активных долгов. Параметр q включает поиск долгов по маске ФИО и доступен только авторизованным пользователям.
// @Tags Debts
// @Produce  json
// @Param q query string false "Маска поиска по ФИО"
// @Success 200 {object} response.OKResponse "Должники"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /debts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.debt.debtors"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	pattern := r.URL.Query().Get("q")
	role := middlewarectx.RoleFromContext(r.Context())

	if pattern != "" && role.AtLeast(models.RoleUser) {
		rows, err := h.service.SearchDebtors(r.Context(), pattern)
		if err != nil {
			log.Error("failed to search debtors", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not search debtors"))
			return
		}
		log.Info("debtors searched", slog.String("pattern", pattern), slog.Int("count", len(rows)))
		render.JSON(w, r, response.OKWithData(rows))
		return
	}

	totals, err := h.service.Debtors(r.Context())
	if err != nil {
		log.Error("failed to list debtors", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list debtors"))
		return
	}

	log.Info("debtors listed", slog.Int("count", len(totals)))
	render.JSON(w, r, response.OKWithData(totals))
}
