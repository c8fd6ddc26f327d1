package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mfvaldes/projhub/internal/config"
	"github.com/mfvaldes/projhub/internal/logging"
	"github.com/mfvaldes/projhub/internal/server"
	"github.com/mfvaldes/projhub/internal/store"
)

func main() {
	zl, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer zl.Sync() //nolint:errcheck

	logger := logging.NewZapLogger(zl)
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	st, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		logger.Error("store connection failed", "error", err)
		os.Exit(1)
	}

	srv := server.New(cfg, st, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped", "error", err)
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		if err := srv.Shutdown(); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}

	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := st.Close(ctx); err != nil {
		logger.Error("store close failed", "error", err)
	}
}
