// Package postofficelist реализует HTTP-обработчик справочника
// почтовых отделений.
package postofficelist

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

// Handler управляет HTTP-запросами справочника почтовых отделений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики справочника отделений.
type Service interface {
	PostOffices(ctx context.Context) ([]*models.PostOfficeInfo, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Справочник почтовых отделений
// @Tags Directory
// @Produce  json
// @Success 200 {object} response.OKResponse "Отделения с адресами"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /post-offices [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.directory.postofficelist"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	offices, err := h.service.PostOffices(r.Context())
	if err != nil {
		log.Error("failed to list post offices", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list post offices"))
		return
	}

	render.JSON(w, r, response.OKWithData(offices))
}
