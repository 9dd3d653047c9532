// Package read реализует HTTP-обработчик карточки абонента:
// личные данные, адрес, номера и долги.
package read

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

// Handler управляет HTTP-запросами на чтение карточки абонента.
type Handler struct {
	log      *slog.Logger
	service  Service
	debts    DebtService
}

// Service описывает интерфейс бизнес-логики карточки абонента.
type Service interface {
	Get(ctx context.Context, id int) (*models.SubscriberDetails, error)
	ListPhones(ctx context.Context, subscriberID int) ([]*models.PhoneInfo, error)
}

// DebtService отдаёт долги абонента для карточки.
type DebtService interface {
	ListBySubscriber(ctx context.Context, subscriberID int) ([]*models.Debt, error)
}

// New создает новый Handler с переданными логгером и сервисами.
func New(log *slog.Logger, service Service, debts DebtService) *Handler {
	return &Handler{log: log, service: service, debts: debts}
}

// ServeHTTP godoc
// @Summary Карточка абонента
// @Description Возвращает абонента с адресом, номерами и долгами.
// @Tags Subscribers
// @Produce  json
// @Param id path int true "ID абонента"
// @Success 200 {object} response.OKResponse "Карточка абонента"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Абонент не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscribers/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscriber.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid subscriber id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid subscriber id"))
		return
	}

	subscriber, err := h.service.Get(r.Context(), id)
	if err != nil {
		log.Error("failed to get subscriber", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not get subscriber"))
		return
	}
	if subscriber == nil {
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("subscriber not found"))
		return
	}

	phones, err := h.service.ListPhones(r.Context(), id)
	if err != nil {
		log.Error("failed to list phones", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not get subscriber"))
		return
	}

	debts, err := h.debts.ListBySubscriber(r.Context(), id)
	if err != nil {
		log.Error("failed to list debts", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not get subscriber"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"subscriber": subscriber,
		"phones":     phones,
		"debts":      debts,
	}))
}
