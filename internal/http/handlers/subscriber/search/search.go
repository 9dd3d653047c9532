// Package search реализует HTTP-обработчик поиска абонентов по маске.
//
// Маска принимает `*` (любая последовательность символов) и `?`
// (ровно один символ) и сверяется с ФИО, номерами телефонов и
// номером почтового отделения.
package search

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

// Handler управляет HTTP-запросами поиска абонентов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики поиска абонентов.
type Service interface {
	Search(ctx context.Context, pattern string) ([]*models.SubscriberRow, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Поиск абонентов
// @Description Ищет абонентов по маске с подстановочными знаками * и ?.
// @Tags Subscribers
// @Produce  json
// @Param q query string true "Маска поиска"
// @Success 200 {object} response.OKResponse "Найденные абоненты"
// @Failure 400 {object} response.ErrorResponse "Пустая маска"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /search [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscriber.search"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	pattern := r.URL.Query().Get("q")
	if pattern == "" {
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("query parameter q is required"))
		return
	}

	subscribers, err := h.service.Search(r.Context(), pattern)
	if err != nil {
		log.Error("failed to search subscribers", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not search subscribers"))
		return
	}

	log.Info("search completed", slog.String("pattern", pattern), slog.Int("count", len(subscribers)))
	render.JSON(w, r, response.OKWithData(subscribers))
}
