package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nalin-pixel/selfmastery-api/internal/config"
	"github.com/nalin-pixel/selfmastery-api/internal/docstore"
	api "github.com/nalin-pixel/selfmastery-api/internal/http"
	"github.com/nalin-pixel/selfmastery-api/internal/logger"
	"github.com/nalin-pixel/selfmastery-api/internal/schema"
	"github.com/nalin-pixel/selfmastery-api/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	zlog, err := logger.New(cfg.Debug, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()
	store, err := docstore.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		zlog.Fatal("failed to open storage", zap.Error(err))
	}
	defer store.Close(context.Background())

	registry := schema.NewRegistry()
	svc := service.New(store, registry, zlog)

	handler := &api.API{
		Service:         svc,
		Schemas:         registry,
		Log:             zlog,
		Origins:         splitOrigins(cfg.CORSOrigin),
		DatabaseURLSet:  cfg.DatabaseURL != "",
		DatabaseNameSet: cfg.DatabaseNameSet,
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		zlog.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		zlog.Error("server shutdown error", zap.Error(err))
	}
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
