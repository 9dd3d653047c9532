// Package repairread реализует HTTP-обработчик чтения одного ремонта.
package repairread

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
	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// Handler управляет HTTP-запросами на чтение ремонта.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения ремонта.
type Service interface {
	Get(ctx context.Context, id int) (*models.RepairRow, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Ремонт по ID
// @Description Возвращает ремонт с адресом.
// @Tags Repairs
// @Produce  json
// @Param id path int true "ID ремонта"
// @Success 200 {object} response.OKResponse "Ремонт"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Ремонт не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /repairs/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.repair.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid repair id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid repair id"))
		return
	}

	repair, err := h.service.Get(r.Context(), id)
	if err != nil {
		log.Error("failed to get repair", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not get repair"))
		return
	}
	if repair == nil {
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("repair not found"))
		return
	}

	render.JSON(w, r, response.OKWithData(repair))
}
