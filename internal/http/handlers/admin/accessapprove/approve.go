// Package accessapprove реализует HTTP-обработчик одобрения заявки
// на доступ.
//
// Одобрение создает пользователя с ролью user; хэш пароля переносится
// из заявки без изменений.
package accessapprove

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/telecom-registry/internal/http/response"
	"github.com/magabrotheeeer/telecom-registry/internal/lib/sl"
)

// Handler управляет HTTP-запросами на одобрение заявки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики одобрения заявки.
type Service interface {
	ApproveRegistrationRequest(ctx context.Context, id int) (bool, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Одобрить заявку на доступ
// @Description Создает учётную запись с ролью user и помечает заявку одобренной.
// @Tags Admin
// @Produce  json
// @Param id path int true "ID заявки"
// @Success 200 {object} response.OKResponse "Заявка одобрена"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Заявка не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/requests/{id}/approve [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.accessapprove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid request id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request id"))
		return
	}

	ok, err := h.service.ApproveRegistrationRequest(r.Context(), id)
	if err != nil {
		log.Error("failed to approve registration request", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not approve registration request"))
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("registration request not found"))
		return
	}

	log.Info("registration request approved", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"approved": true,
	}))
}
