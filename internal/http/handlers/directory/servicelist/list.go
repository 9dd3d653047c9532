// Package servicelist реализует HTTP-обработчик справочника
// телефонов спецслужб.
package servicelist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/telecom-registry/internal/http/response"
	"github.com/magabrotheeeer/telecom-registry/internal/lib/sl"
	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// Handler управляет HTTP-запросами справочника спецслужб.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики справочника спецслужб.
type Service interface {
	SpecialServices(ctx context.Context) ([]*models.SpecialServiceRow, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Телефоны спецслужб
// @Description Возвращает экстренные и городские службы с номерами и графиком работы.
// @Tags Directory
// @Produce  json
// @Success 200 {object} response.OKResponse "Службы"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /services [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.directory.servicelist"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	services, err := h.service.SpecialServices(r.Context())
	if err != nil {
		log.Error("failed to list special services", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list special services"))
		return
	}

	render.JSON(w, r, response.OKWithData(services))
}
