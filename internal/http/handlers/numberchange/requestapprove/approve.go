// Package requestapprove реализует HTTP-обработчик применения заявки
// на смену номера.
//
// Одобрение атомарно: старый номер удаляется, новый создается,
// заявка исчезает.
package requestapprove

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

// Handler управляет HTTP-запросами на применение заявки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики применения заявки.
type Service interface {
	Approve(ctx context.Context, id int) (bool, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Одобрить заявку на смену номера
// @Description Заменяет старый номер абонента новым и удаляет заявку.
// @Tags NumberChange
// @Produce  json
// @Param id path int true "ID заявки"
// @Success 200 {object} response.OKResponse "Заявка применена"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Заявка не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /requests/{id}/approve [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.numberchange.approve"
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

	ok, err := h.service.Approve(r.Context(), id)
	if err != nil {
		log.Error("failed to approve request", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not approve request"))
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("request not found"))
		return
	}

	log.Info("number change request approved", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"approved": true,
	}))
}
