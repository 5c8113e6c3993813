package di

import (
	"github.com/GoArmGo/BlogApp/internal/app"
	"github.com/GoArmGo/BlogApp/internal/auth"
	"github.com/GoArmGo/BlogApp/internal/config"
	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/database/client"
	"github.com/GoArmGo/BlogApp/internal/database/storage"
	"github.com/GoArmGo/BlogApp/internal/handler"
	"github.com/GoArmGo/BlogApp/internal/logger"
	"github.com/GoArmGo/BlogApp/internal/metrics"
	"github.com/GoArmGo/BlogApp/internal/rabbitmq"
	"github.com/GoArmGo/BlogApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogCfg := logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}
	slogger := logger.NewSlog(slogCfg)

	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (sqlx для миграций, GORM поверх пула)
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	userStorage := storage.NewUserPostgresStorage(dbClient.Gorm, slogger)
	postStorage := storage.NewPostPostgresStorage(dbClient.Gorm, slogger)

	// 4. Инициализация RabbitMQ (опционально)
	var entityEventPublisher ports.EntityEventPublisher
	var entityEventConsumer ports.EntityEventConsumer
	if cfg.RabbitMQ.RabbitMQURL != "" {
		rabbitMQClient, err := rabbitmq.NewClient(cfg, slogger)
		if err != nil {
			return nil, err
		}
		entityEventPublisher = rabbitMQClient
		entityEventConsumer = rabbitMQClient
	} else {
		slogger.Warn("RABBITMQ_URL is empty, entity events are disabled")
		entityEventPublisher = rabbitmq.NoopClient{}
		entityEventConsumer = rabbitmq.NoopClient{}
	}

	// 5. Инициализация бизнес-логики (usecases)
	userUseCase := usecase.NewUserUseCase(userStorage, entityEventPublisher, slogger)
	postUseCase := usecase.NewPostUseCase(postStorage, entityEventPublisher, slogger)
	resolver := usecase.NewEntityResolver(userStorage, postStorage)

	// 6. Сборка верификатора токенов из конфигурации
	verifiers := make([]auth.TokenVerifier, 0, 2)
	if len(cfg.Auth.APITokens) > 0 {
		verifiers = append(verifiers, auth.NewStaticVerifier(cfg.Auth.APITokens))
	}
	if cfg.Auth.JWTSecret != "" {
		verifiers = append(verifiers, auth.NewJWTVerifier(cfg.Auth.JWTSecret))
	}
	if len(verifiers) == 0 {
		slogger.Warn("no auth tokens configured, all bearer tokens will be rejected")
	}
	verifier := auth.NewMultiVerifier(verifiers...)

	// 7. Метрики и HTTP-сервер
	m := metrics.New()
	apiServer := handler.NewServer(userUseCase, postUseCase, resolver, verifier, m, slogger)

	// 8. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient,
		apiServer,
		userUseCase,
		postUseCase,
		entityEventPublisher,
		entityEventConsumer,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
