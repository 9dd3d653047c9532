// Package repairlist реализует HTTP-обработчик журнала ремонтов.
//
// Параметр q включает поиск ремонтов по маске адреса с * и ?.
package repairlist

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

// Handler управляет HTTP-запросами журнала ремонтов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики журнала ремонтов.
type Service interface {
	List(ctx context.Context) ([]*models.RepairRow, error)
	Search(ctx context.Context, pattern string) ([]*models.RepairRow, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Журнал ремонтов
// @Description Возвращает ремонты с адресами, свежие первыми. Параметр q ищет по маске адреса.
// @Tags Repairs
// @Produce  json
// @Param q query string false "Маска поиска по адресу"
// @Success 200 {object} response.OKResponse "Ремонты"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /repairs [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.repair.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	pattern := r.URL.Query().Get("q")

	var (
		repairs []*models.RepairRow
		err     error
	)
	if pattern != "" {
		repairs, err = h.service.Search(r.Context(), pattern)
	} else {
		repairs, err = h.service.List(r.Context())
	}
	if err != nil {
		log.Error("failed to list repairs", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list repairs"))
		return
	}

	log.Info("repairs listed", slog.Int("count", len(repairs)))
	render.JSON(w, r, response.OKWithData(repairs))
}
