// Package services содержит бизнес-логику учёта ремонтных работ
// на линиях связи.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/telecom-registry/internal/lib/wildcard"
	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

const dateLayout = "2006-01-02"

// RepairRepository описывает контракт хранилища ремонтных работ.
type RepairRepository interface {
	ListRepairs(ctx context.Context) ([]*models.RepairRow, error)
	GetRepair(ctx context.Context, id int) (*models.RepairRow, error)
	CreateRepair(ctx context.Context, fields models.AddressFields,
		dateStart, dateEnd time.Time, description string) (int, error)
	UpdateRepair(ctx context.Context, id int, fields models.AddressFields,
		dateStart, dateEnd time.Time, description string) (int, error)
	DeleteRepair(ctx context.Context, id int) (int, error)
	SearchRepairs(ctx context.Context, like string) ([]*models.RepairRow, error)
}

// RepairService реализует операции над журналом ремонтов.
type RepairService struct {
	repo RepairRepository
}

// NewRepairService создает новый экземпляр RepairService.
func NewRepairService(repo RepairRepository) *RepairService {
	return &RepairService{repo: repo}
}

// List возвращает все ремонты с адресами, свежие первыми.
func (s *RepairService) List(ctx context.Context) ([]*models.RepairRow, error) {
	return s.repo.ListRepairs(ctx)
}

// Get возвращает ремонт по ID, nil если его нет.
func (s *RepairService) Get(ctx context.Context, id int) (*models.RepairRow, error) {
	return s.repo.GetRepair(ctx, id)
}

// Create регистрирует ремонт, создавая адрес при необходимости.
func (s *RepairService) Create(ctx context.Context, req models.CreateRepairRequest) (int, error) {
	const op = "services.repair.Create"
	dateStart, dateEnd, err := parseDates(req.DateStart, req.DateEnd)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return s.repo.CreateRepair(ctx, req.AddressFields, dateStart, dateEnd, req.Description)
}

// Update правит ремонт и его адрес, возвращает число изменённых строк.
func (s *RepairService) Update(ctx context.Context, id int, req models.UpdateRepairRequest) (int, error) {
	const op = "services.repair.Update"
	dateStart, dateEnd, err := parseDates(req.DateStart, req.DateEnd)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return s.repo.UpdateRepair(ctx, id, req.AddressFields, dateStart, dateEnd, req.Description)
}

// Delete удаляет запись о ремонте.
func (s *RepairService) Delete(ctx context.Context, id int) (int, error) {
	return s.repo.DeleteRepair(ctx, id)
}

// Search ищет ремонты по маске адреса с * и ?.
func (s *RepairService) Search(ctx context.Context, pattern string) ([]*models.RepairRow, error) {
	return s.repo.SearchRepairs(ctx, wildcard.ToLike(pattern))
}

func parseDates(start, end string) (time.Time, time.Time, error) {
	dateStart, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	dateEnd, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return dateStart, dateEnd, nil
}
