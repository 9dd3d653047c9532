// Package services содержит фоновую логику уведомлений о просроченных
// долгах: планировщик находит долги и публикует их в очередь, а
// отправитель рассылает письма дежурной смене.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/telecom-registry/internal/lib/sl"
	"github.com/magabrotheeeer/telecom-registry/internal/models"
	"github.com/magabrotheeeer/telecom-registry/internal/rabbitmq"
	"github.com/streadway/amqp"
)

// DebtRepository описывает выборку просроченных долгов.
type DebtRepository interface {
	FindOverdueDebts(ctx context.Context) ([]*models.OverdueDebt, error)
}

// SchedulerService периодически ищет активные долги с истёкшим
// сроком и публикует каждый в обменник notifications.
type SchedulerService struct {
	repo DebtRepository
	log  *slog.Logger
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo DebtRepository, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		repo: repo,
		log:  log,
	}
}

// FindOverdueDebts запускает цикл проверки с заданным интервалом.
// Первая проверка выполняется сразу, не дожидаясь тика.
func (s *SchedulerService) FindOverdueDebts(ctx context.Context, channel *amqp.Channel, interval time.Duration) {
	s.runFindOverdueDebts(ctx, channel)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runFindOverdueDebts(ctx, channel)
		}
	}
}

func (s *SchedulerService) runFindOverdueDebts(ctx context.Context, channel *amqp.Channel) {
	s.log.Info("starting service to find overdue debts")
	debts, err := s.repo.FindOverdueDebts(ctx)
	if err != nil {
		s.log.Error("failed to find overdue debts", sl.Err(err))
		return
	}
	if len(debts) == 0 {
		s.log.Info("no overdue debts found")
		return
	}
	s.log.Info("found overdue debts", "count", len(debts))
	for _, debt := range debts {
		err = rabbitmq.PublishMessage(channel, "notifications", "overdue", debt)
		if err != nil {
			s.log.Error("failed to publish message", sl.Err(err))
		}
	}
}
