// Package services содержит бизнес-логику отчётов: фиксированные
// шаблоны и произвольные SQL-запросы только на чтение.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/telecom-registry/internal/lib/sl"
	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// ReportRepository описывает контракт хранилища для отчётов.
type ReportRepository interface {
	RunReportTemplate(ctx context.Context, templateID int, params models.ReportParams) (*models.ReportResult, error)
	RunCustomQuery(ctx context.Context, sqlText string) (*models.ReportResult, error)
}

// ReportService выполняет отчёты по каталогу шаблонов.
type ReportService struct {
	repo ReportRepository
	log  *slog.Logger
}

// NewReportService создает новый экземпляр ReportService.
func NewReportService(repo ReportRepository, log *slog.Logger) *ReportService {
	return &ReportService{repo: repo, log: log}
}

// RunTemplate выполняет шаблонный отчёт. Сбой шаблона не считается
// ошибкой запроса: возвращается пустой результат, сбой пишется в лог.
func (s *ReportService) RunTemplate(ctx context.Context, templateID int, params models.ReportParams) (*models.ReportResult, error) {
	result, err := s.repo.RunReportTemplate(ctx, templateID, params)
	if err != nil {
		s.log.Warn("report template failed",
			slog.Int("template_id", templateID), sl.Err(err))
		return &models.ReportResult{Columns: []string{}, Rows: [][]any{}}, nil
	}
	return result, nil
}

// RunCustom выполняет произвольный SQL в транзакции только на чтение.
// Ошибки выполнения возвращаются вызывающему как есть.
func (s *ReportService) RunCustom(ctx context.Context, sqlText string) (*models.ReportResult, error) {
	return s.repo.RunCustomQuery(ctx, sqlText)
}
