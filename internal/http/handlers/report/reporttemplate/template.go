// Package reporttemplate реализует HTTP-обработчик запуска шаблонного отчёта.
//
// Каталог содержит десять фиксированных шаблонов. Часть шаблонов
// принимает префиксные параметры (фамилия, имя, улица).
package reporttemplate

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

// Handler управляет HTTP-запросами запуска шаблонных отчётов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики отчётов.
type Service interface {
	RunTemplate(ctx context.Context, templateID int, params models.ReportParams) (*models.ReportResult, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Запустить шаблонный отчёт
// @Description Выполняет один из десяти фиксированных отчётов. Неизвестный номер шаблона дает пустой результат.
// @Tags Reports
// @Produce  json
// @Param id path int true "Номер шаблона (1-10)"
// @Param lastname query string false "Префикс фамилии (шаблон 5)"
// @Param firstname query string false "Префикс имени (шаблон 5)"
// @Param street query string false "Префикс улицы (шаблон 9)"
// @Success 200 {object} response.OKResponse "Колонки и строки отчёта"
// @Failure 400 {object} response.ErrorResponse "Некорректный номер шаблона"
// @Router /reports/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.template"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	templateID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid template id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid template id"))
		return
	}

	params := models.ReportParams{
		Lastname:   r.URL.Query().Get("lastname"),
		Firstname:  r.URL.Query().Get("firstname"),
		StreetName: r.URL.Query().Get("street"),
	}

	result, err := h.service.RunTemplate(r.Context(), templateID, params)
	if err != nil {
		log.Error("failed to run report template", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not run report"))
		return
	}

	log.Info("report template executed", slog.Int("template_id", templateID), slog.Int("rows", len(result.Rows)))
	render.JSON(w, r, response.OKWithData(result))
}
