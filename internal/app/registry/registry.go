// Package registry собирает HTTP-приложение реестра абонентов:
// хранилище, миграции, сервисы и маршруты.
package registry

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/telecom-registry/internal/config"
	"github.com/magabrotheeeer/telecom-registry/internal/lib/jwt"
	"github.com/magabrotheeeer/telecom-registry/internal/migrations"
	authservice "github.com/magabrotheeeer/telecom-registry/internal/services/auth"
	debtservice "github.com/magabrotheeeer/telecom-registry/internal/services/debt"
	directoryservice "github.com/magabrotheeeer/telecom-registry/internal/services/directory"
	numberchangeservice "github.com/magabrotheeeer/telecom-registry/internal/services/numberchange"
	repairservice "github.com/magabrotheeeer/telecom-registry/internal/services/repair"
	reportservice "github.com/magabrotheeeer/telecom-registry/internal/services/report"
	subscriberservice "github.com/magabrotheeeer/telecom-registry/internal/services/subscriber"
	useradminservice "github.com/magabrotheeeer/telecom-registry/internal/services/useradmin"
	"github.com/magabrotheeeer/telecom-registry/internal/storage/repository"
	"github.com/magabrotheeeer/telecom-registry/internal/storage/seed"
)

// App — собранное HTTP-приложение реестра.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// Services — набор сервисов бизнес-уровня, используемый маршрутами.
type Services struct {
	Auth         *authservice.AuthService
	UserAdmin    *useradminservice.UserAdminService
	Subscriber   *subscriberservice.SubscriberService
	Debt         *debtservice.DebtService
	NumberChange *numberchangeservice.NumberChangeService
	Repair       *repairservice.RepairService
	Report       *reportservice.ReportService
	Directory    *directoryservice.DirectoryService
}

// New создает приложение: подключается к базе, накатывает миграции,
// при необходимости наполняет демо-данными и собирает маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	if cfg.SeedDemoData {
		if err := seed.Run(ctx, db, logger); err != nil {
			return nil, err
		}
	}

	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	services := Services{
		Auth:         authservice.NewAuthService(db, jwtMaker),
		UserAdmin:    useradminservice.NewUserAdminService(db),
		Subscriber:   subscriberservice.NewSubscriberService(db),
		Debt:         debtservice.NewDebtService(db),
		NumberChange: numberchangeservice.NewNumberChangeService(db),
		Repair:       repairservice.NewRepairService(db),
		Report:       reportservice.NewReportService(db, logger),
		Directory:    directoryservice.NewDirectoryService(db),
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, jwtMaker, services)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и ждёт отмены контекста для
// корректного завершения.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
