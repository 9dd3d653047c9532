// Package accesslist реализует HTTP-обработчик списка заявок на доступ.
package accesslist

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

// Handler управляет HTTP-запросами списка заявок на регистрацию.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка заявок.
type Service interface {
	ListRegistrationRequests(ctx context.Context) ([]*models.RegistrationRequest, error)
}

// requestView — заявка без хэша пароля.
type requestView struct {
	ID     int    `json:"id"`
	Login  string `json:"login"`
	Status string `json:"status"`
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список заявок на доступ
// @Tags Admin
// @Produce  json
// @Success 200 {object} response.OKResponse "Заявки на регистрацию"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/requests [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.accesslist"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	requests, err := h.service.ListRegistrationRequests(r.Context())
	if err != nil {
		log.Error("failed to list registration requests", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list registration requests"))
		return
	}

	views := make([]requestView, 0, len(requests))
	for _, req := range requests {
		views = append(views, requestView{ID: req.ID, Login: req.Login, Status: req.Status})
	}

	render.JSON(w, r, response.OKWithData(views))
}
