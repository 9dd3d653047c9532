// Package operatorlist реализует HTTP-обработчик справочника операторов.
package operatorlist

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

// Handler управляет HTTP-запросами справочника операторов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики справочника операторов.
type Service interface {
	Operators(ctx context.Context) ([]*models.MobileOperator, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Справочник мобильных операторов
// @Tags Directory
// @Produce  json
// @Success 200 {object} response.OKResponse "Операторы"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /operators [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.directory.operatorlist"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	operators, err := h.service.Operators(r.Context())
	if err != nil {
		log.Error("failed to list operators", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list operators"))
		return
	}

	render.JSON(w, r, response.OKWithData(operators))
}
