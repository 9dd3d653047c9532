// Package userlist реализует HTTP-обработчик списка учётных записей.
package userlist

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

// Handler управляет HTTP-запросами списка пользователей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка пользователей.
type Service interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// userView — учётная запись без хэша пароля.
type userView struct {
	UID   string      `json:"uid"`
	Login string      `json:"login"`
	Role  models.Role `json:"role"`
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список учётных записей
// @Tags Admin
// @Produce  json
// @Success 200 {object} response.OKResponse "Пользователи"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.userlist"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list users"))
		return
	}

	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, userView{UID: u.UID, Login: u.Login, Role: u.Role})
	}

	render.JSON(w, r, response.OKWithData(views))
}
