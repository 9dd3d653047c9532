// Package notifier собирает фоновое приложение уведомлений:
// планировщик находит просроченные долги и публикует их в брокер,
// отправитель читает очередь и шлёт письма дежурной смене.
package notifier

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/telecom-registry/internal/config"
	libsmtp "github.com/magabrotheeeer/telecom-registry/internal/lib/smtp"
	"github.com/magabrotheeeer/telecom-registry/internal/rabbitmq"
	notifierservice "github.com/magabrotheeeer/telecom-registry/internal/services/notifier"
	"github.com/magabrotheeeer/telecom-registry/internal/storage/repository"
)

type App struct {
	conn             *amqp.Connection
	ch               *amqp.Channel
	schedulerService *notifierservice.SchedulerService
	senderService    *notifierservice.SenderService
	cfg              *config.Config
	logger           *slog.Logger
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	queues := rabbitmq.GetNotificationQueues()
	ch, err := rabbitmq.SetupChannel(conn, queues)
	if err != nil {
		conn.Close()
		return nil, err
	}

	newTransport := libsmtp.NewTransport(cfg, logger)
	schedulerService := notifierservice.NewSchedulerService(db, logger)
	senderService := notifierservice.NewSenderService(newTransport, cfg.OpsMailbox, logger)

	return &App{
		conn:             conn,
		ch:               ch,
		schedulerService: schedulerService,
		senderService:    senderService,
		cfg:              cfg,
		logger:           logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	go a.schedulerService.FindOverdueDebts(ctx, a.ch, a.cfg.CheckInterval)

	err := rabbitmq.ConsumerMessage(ctx, a.ch, "debts.overdue", a.senderService.SendOverdueDebtNotice)
	if err != nil {
		a.logger.Error("failed to start debts.overdue consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("Notifier service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}

	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
