package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/catalog-admin/internal/api/http"
	"github.com/spec-kit/catalog-admin/internal/api/mappings"
	"github.com/spec-kit/catalog-admin/internal/auth"
	"github.com/spec-kit/catalog-admin/internal/config"
	"github.com/spec-kit/catalog-admin/internal/dispatch"
	"github.com/spec-kit/catalog-admin/internal/domain"
	"github.com/spec-kit/catalog-admin/internal/observability"
	"github.com/spec-kit/catalog-admin/internal/persistence"
	"github.com/spec-kit/catalog-admin/internal/service"
	"github.com/spec-kit/catalog-admin/internal/session"
	"github.com/spec-kit/catalog-admin/internal/store"
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

	connectCtx, connectCancel := context.WithTimeout(ctx, 10*time.Second)
	mongo, err := persistence.NewMongo(connectCtx, cfg.Mongo, logger)
	connectCancel()
	if err != nil {
		logger.Fatal("failed to connect mongodb", zap.Error(err))
	}
	defer mongo.Close(context.Background())

	gateway := store.NewMongo(mongo.Database)
	indexes := store.UniqueSlugIndexes(
		domain.EntityProduct,
		domain.EntityProductType,
		domain.EntitySmell,
		domain.EntityGift,
		domain.EntityAccount,
	)
	indexes = append(indexes, store.UniqueIndex{Entity: domain.EntityUser, Field: "email"})
	if err := gateway.EnsureIndexes(ctx, indexes); err != nil {
		logger.Fatal("failed to ensure indexes", zap.Error(err))
	}

	var sessions session.Store
	var redis *persistence.Redis
	if cfg.Redis.Enabled {
		redis = persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		sessions = session.NewRedisStore(redis.Client)
	} else {
		sessions = session.NewMemoryStore()
	}

	tokens := auth.NewTokenManager(cfg.Auth)
	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		Store:    gateway,
		Sessions: sessions,
		Tokens:   tokens,
	})

	registry := dispatch.NewRegistry()
	descriptors := mappings.BuildAll(cfg.Pagination, mappings.Services{
		Auth:         authService,
		Products:     service.NewProductService(gateway),
		ProductTypes: service.NewProductTypeService(gateway),
		Smells:       service.NewSmellService(gateway),
		Gifts:        service.NewGiftService(gateway),
		Accounts:     service.NewAccountService(gateway, cfg.Auth.BcryptCost),
	})
	if err := registry.Register(descriptors...); err != nil {
		logger.Fatal("failed to register routes", zap.Error(err))
	}

	metrics := observability.NewMetrics()
	dispatcher := dispatch.NewDispatcher(registry, authService, logger, metrics)

	app := httptransport.NewServer(httptransport.ServerConfig{
		App:        cfg.App,
		Dispatcher: dispatcher,
		Health:     httptransport.NewHealthHandler(cfg.App.Name, cfg.App.Version, mongo, redis),
		Logger:     logger,
		Metrics:    metrics,
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
