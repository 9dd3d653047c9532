// Package reportcustom реализует HTTP-обработчик произвольного
// SQL-запроса только на чтение.
//
// Запрос исполняется в транзакции read-only, которая всегда
// откатывается, поэтому данные изменить нельзя.
package reportcustom

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/telecom-registry/internal/http/response"
	"github.com/magabrotheeeer/telecom-registry/internal/lib/sl"
	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// Handler управляет HTTP-запросами произвольных SQL-отчётов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики произвольного запроса.
type Service interface {
	RunCustom(ctx context.Context, sqlText string) (*models.ReportResult, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Выполнить произвольный SQL-запрос
// @Description Исполняет SQL в транзакции только на чтение. Ошибка запроса возвращается как есть.
// @Tags Reports
// @Accept  json
// @Produce  json
// @Param request body models.CustomQueryRequest true "Текст запроса"
// @Success 200 {object} response.OKResponse "Колонки и строки результата"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка SQL"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /sql [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.custom"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CustomQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.service.RunCustom(r.Context(), req.SQL)
	if err != nil {
		log.Warn("custom query failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("custom query executed", slog.Int("rows", len(result.Rows)))
	render.JSON(w, r, response.OKWithData(result))
}
