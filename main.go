package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"users-api/internal/api"
	"users-api/internal/config"
	"users-api/internal/db"
	"users-api/internal/handlers"
	"users-api/internal/logger"
	"users-api/internal/rabbitmq"
	"users-api/internal/repositories"
	"users-api/internal/telemetry"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Logger.Level); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Get()
	log.Info("starting users-api", zap.Stringer("config", cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(cfg.Database)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer database.Close()

	// The server comes up even when the database is down; /users then
	// answers 500 until it is reachable.
	if err := db.Migrate(ctx, database); err != nil {
		log.Warn("failed to prepare users table", zap.Error(err))
	}

	auditPublisher := rabbitmq.NewNoopPublisher(log)
	if cfg.Audit.AMQPURL == "" {
		log.Warn("AMQP_URL not set; audit publishing disabled")
	} else {
		pub, err := rabbitmq.NewPublisher(cfg.Audit.AMQPURL, cfg.Audit.Exchange)
		if err != nil {
			log.Warn("failed to initialize RabbitMQ audit publisher", zap.Error(err))
		} else {
			auditPublisher = pub
		}
	}
	defer auditPublisher.Close()

	userRepo := repositories.NewUserRepository(database)
	auditEmitter := telemetry.NewAuditEmitter(auditPublisher, cfg.Audit.ServiceName, cfg.Audit.Environment, log)
	userHandler := handlers.NewUserHandler(userRepo, auditEmitter, log, cfg.Users.IncludeID)

	gin.SetMode(gin.ReleaseMode)
	r := api.NewRouter(userHandler, log)

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: r,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	}
}
