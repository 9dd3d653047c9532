// Package services содержит бизнес-логику учёта задолженностей
// и сводки по должникам.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/telecom-registry/internal/lib/wildcard"
	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

const dateLayout = "2006-01-02"

// DebtRepository описывает контракт хранилища долгов.
type DebtRepository interface {
	ListDebtsBySubscriber(ctx context.Context, subscriberID int) ([]*models.Debt, error)
	CreateDebt(ctx context.Context, subscriberID int, amount float64,
		dateStart time.Time, deadline *time.Time, status string) (int, error)
	DeleteDebt(ctx context.Context, id int) (int, error)
	UpdateDebt(ctx context.Context, id int, amount float64, status string) (int, error)
	ListDebtors(ctx context.Context) ([]*models.DebtorTotal, error)
	SearchDebtors(ctx context.Context, like string) ([]*models.DebtorRow, error)
}

// DebtService реализует операции над задолженностями абонентов.
type DebtService struct {
	repo DebtRepository
}

// NewDebtService создает новый экземпляр DebtService.
func NewDebtService(repo DebtRepository) *DebtService {
	return &DebtService{repo: repo}
}

// ListBySubscriber возвращает долги абонента, свежие первыми.
func (s *DebtService) ListBySubscriber(ctx context.Context, subscriberID int) ([]*models.Debt, error) {
	return s.repo.ListDebtsBySubscriber(ctx, subscriberID)
}

// Add создаёт долг абоненту. Пустая дата начала означает сегодня,
// пустой срок погашения — долг без дедлайна.
func (s *DebtService) Add(ctx context.Context, subscriberID int, req models.CreateDebtRequest) (int, error) {
	const op = "services.debt.Add"

	dateStart := time.Now()
	if req.DateStart != "" {
		parsed, err := time.Parse(dateLayout, req.DateStart)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		dateStart = parsed
	}

	var deadline *time.Time
	if req.Deadline != "" {
		parsed, err := time.Parse(dateLayout, req.Deadline)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		deadline = &parsed
	}

	return s.repo.CreateDebt(ctx, subscriberID, req.Amount, dateStart, deadline, models.DebtStatusActive)
}

// Update меняет сумму и статус долга.
func (s *DebtService) Update(ctx context.Context, id int, req models.UpdateDebtRequest) (int, error) {
	return s.repo.UpdateDebt(ctx, id, req.Amount, req.Status)
}

// Remove удаляет долг по его ID.
func (s *DebtService) Remove(ctx context.Context, id int) (int, error) {
	return s.repo.DeleteDebt(ctx, id)
}

// Debtors возвращает абонентов с суммой активных долгов,
// крупнейшие должники первыми.
func (s *DebtService) Debtors(ctx context.Context) ([]*models.DebtorTotal, error) {
	return s.repo.ListDebtors(ctx)
}

// SearchDebtors ищет долги по маске ФИО абонента.
func (s *DebtService) SearchDebtors(ctx context.Context, pattern string) ([]*models.DebtorRow, error) {
	return s.repo.SearchDebtors(ctx, wildcard.ToLike(pattern))
}
