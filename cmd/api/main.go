package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/safevoice/report-service/internal/api/http"
	"github.com/safevoice/report-service/internal/api/http/handlers"
	"github.com/safevoice/report-service/internal/auth"
	"github.com/safevoice/report-service/internal/config"
	"github.com/safevoice/report-service/internal/events"
	"github.com/safevoice/report-service/internal/observability"
	"github.com/safevoice/report-service/internal/persistence"
	"github.com/safevoice/report-service/internal/repository"
	"github.com/safevoice/report-service/internal/service"
	"github.com/safevoice/report-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations && pg.PoolHandle() != nil {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var (
		reportRepo   repository.ReportRepository
		replyRepo    repository.ReplyRepository
		userRepo     repository.UserRepository
		helplineRepo repository.HelplineRepository
	)
	if pool := pg.PoolHandle(); pool != nil {
		reportRepo = repository.NewReportRepository(pool)
		replyRepo = repository.NewReplyRepository(pool)
		userRepo = repository.NewUserRepository(pool)
		helplineRepo = repository.NewHelplineRepository(pool)
	} else {
		reportRepo = repository.NewInMemoryReportRepository()
		replyRepo = repository.NewInMemoryReplyRepository()
		userRepo = repository.NewInMemoryUserRepository()
		helplineRepo = repository.NewInMemoryHelplineRepository(
			repository.SeedHelplineContacts(),
			repository.SeedLegalResources(),
		)
	}

	dispatcher := events.NewInMemoryDispatcher()
	principalCache := auth.NewPrincipalCache(redis.Client, cfg.Auth.PrincipalCacheTTL())

	authService := service.NewAuthService(cfg.Auth, userRepo, principalCache)
	reportService := service.NewReportService(service.ReportDependencies{
		ReportRepo: reportRepo,
		ReplyRepo:  replyRepo,
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	helplineService := service.NewHelplineService(helplineRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo, principalCache)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Reports:        handlers.NewReportsHandler(reportService),
		Helpline:       handlers.NewHelplineHandler(helplineService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
