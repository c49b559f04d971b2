package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"socialrobot-be/internal/bootstrap"
	"socialrobot-be/internal/config"
	"socialrobot-be/internal/pkg/logger"
	"socialrobot-be/internal/repository"
	"socialrobot-be/internal/server"
	"socialrobot-be/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction(), cfg.App.Debug)

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.Otel, sysLogger)

	// 3. Initialize Database
	ctx := context.Background()
	store, err := repository.NewStore(ctx, cfg.Database, cfg.App.Debug)
	if err != nil {
		sysLogger.Error("MAIN", "Unable to open durable store", map[string]interface{}{
			"driver": cfg.Database.Driver,
			"error":  err,
		})
		_ = sysLogger.Sync()
		log.Fatalf("Unable to open %s store: %v", cfg.Database.Driver, err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg, store, sysLogger)

	// 5. Start Background Services
	consumerCtx, stopConsumer := context.WithCancel(ctx)
	if err := container.ConsumerService.Consume(consumerCtx); err != nil {
		sysLogger.Error("MAIN", "Chat archive consumer failed to start", map[string]interface{}{
			"error": err,
		})
	}

	// 6. Run Server
	srv := server.New(cfg, container)
	go func() {
		if err := srv.Run(); err != nil {
			sysLogger.Error("MAIN", "Server stopped", map[string]interface{}{"error": err})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sysLogger.Info("MAIN", "Shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		sysLogger.Warn("MAIN", "HTTP shutdown incomplete", map[string]interface{}{"error": err.Error()})
	}
	stopConsumer()
	if err := shutdownTracer(shutdownCtx); err != nil {
		sysLogger.Warn("MAIN", "Tracer shutdown failed", map[string]interface{}{"error": err.Error()})
	}
	if err := container.Close(shutdownCtx); err != nil {
		log.Printf("Store close failed: %v", err)
	}
}
