// Package accessreject реализует HTTP-обработчик отклонения заявки
// на доступ.
package accessreject

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

// Handler управляет HTTP-запросами на отклонение заявки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики отклонения заявки.
type Service interface {
	RejectRegistrationRequest(ctx context.Context, id int) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Отклонить заявку на доступ
// @Description Помечает заявку отклонённой, учётная запись не создается.
// @Tags Admin
// @Produce  json
// @Param id path int true "ID заявки"
// @Success 200 {object} map[string]any "Количество измененных заявок"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Заявка не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/requests/{id}/reject [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.accessreject"
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

	count, err := h.service.RejectRegistrationRequest(r.Context(), id)
	if err != nil {
		log.Error("failed to reject registration request", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not reject registration request"))
		return
	}
	if count == 0 {
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("registration request not found"))
		return
	}

	log.Info("registration request rejected", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"rejected_count": count,
	}))
}
