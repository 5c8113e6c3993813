package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/BlogApp/internal/config"
	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/database/client"
	"github.com/GoArmGo/BlogApp/internal/handler"
	"github.com/GoArmGo/BlogApp/internal/usecase"
)

type App struct {
	Config               *config.Config
	logger               *slog.Logger
	dbClient             *client.Client
	server               *handler.Server
	userUseCase          usecase.UserUseCase
	postUseCase          usecase.PostUseCase
	entityEventPublisher ports.EntityEventPublisher
	entityEventConsumer  ports.EntityEventConsumer
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	dbClient *client.Client,
	server *handler.Server,
	userUseCase usecase.UserUseCase,
	postUseCase usecase.PostUseCase,
	entityEventPublisher ports.EntityEventPublisher,
	entityEventConsumer ports.EntityEventConsumer,
) *App {
	return &App{
		Config:               cfg,
		logger:               logger,
		dbClient:             dbClient,
		server:               server,
		userUseCase:          userUseCase,
		postUseCase:          postUseCase,
		entityEventPublisher: entityEventPublisher,
		entityEventConsumer:  entityEventConsumer,
	}
}

// LoggerIns возвращает основной логгер приложения.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

func (a *App) Run(ctx context.Context, mode *string) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("application starting", "mode", *mode)

	var err error

	switch *mode {
	case "server":
		err = runServer(ctx, a.Config, a.logger, a.server)

	case "worker":
		err = runWorker(ctx, a.logger, a.entityEventConsumer)

	case "seed":
		err = runSeeder(ctx, a.Config, a.logger, a.dbClient.Gorm, a.userUseCase, a.postUseCase)

	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте 'server', 'worker' или 'seed')", *mode)
	}

	if err != nil {
		return err
	}

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown error", "error", closeErr)
	}

	a.logger.Info("application stopped")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.dbClient != nil {
		if err := a.dbClient.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}

	// если publisher/consumer имеют методы Close — вызываем их
	if closer, ok := a.entityEventPublisher.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	return nil
}
