package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/achaudhary7/SilverInfo-sub002/internal/bootstrap"
	"github.com/achaudhary7/SilverInfo-sub002/internal/config"
	httpserver "github.com/achaudhary7/SilverInfo-sub002/internal/infrastructure/http"
	"github.com/achaudhary7/SilverInfo-sub002/internal/infrastructure/logx"
)

func init() { _ = godotenv.Load() }

func main() {
	ctx := context.Background()
	logger := logx.L()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	addr := ":" + cfg.Port

	storage, closeStorage, err := bootstrap.BuildStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("bootstrap storage", zap.Error(err))
	}
	defer closeStorage()

	priceCache, closeCache, err := bootstrap.BuildCache(cfg)
	if err != nil {
		logger.Fatal("bootstrap cache", zap.Error(err))
	}
	defer closeCache()

	svc, err := bootstrap.BuildService(cfg, storage, priceCache)
	if err != nil {
		logger.Fatal("bootstrap service", zap.Error(err))
	}
	srv := httpserver.NewServer(svc, storage.Ping)
	mux := httpserver.NewRouter(srv)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		logger.Info("server started", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = server.Shutdown(shutdownCtx)
	logger.Info("server stopped")
}
