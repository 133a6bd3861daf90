package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/achaudhary7/SilverInfo-sub002/internal/application"
	"github.com/achaudhary7/SilverInfo-sub002/internal/bootstrap"
	"github.com/achaudhary7/SilverInfo-sub002/internal/config"
	"github.com/achaudhary7/SilverInfo-sub002/internal/infrastructure/logx"
)

func init() { _ = godotenv.Load() }

func main() {
	logger := logx.L()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	storage, closeStorage, err := bootstrap.BuildStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("bootstrap storage", zap.Error(err))
	}
	defer closeStorage()

	// The recorder always resolves fresh; no cache in front of it.
	svc, err := bootstrap.BuildService(cfg, storage, application.NoopCache{})
	if err != nil {
		logger.Fatal("bootstrap service", zap.Error(err))
	}

	bootstrap.BuildWorker(cfg, svc).Start(ctx)
}
