package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	apiHttp "github.com/senservices/backend/internal/api/http"
	"github.com/senservices/backend/internal/cache"
	"github.com/senservices/backend/internal/config"
	"github.com/senservices/backend/internal/db"
	"github.com/senservices/backend/internal/queue/asynqserver"
	queueclient "github.com/senservices/backend/internal/queue/client"
	"github.com/senservices/backend/internal/repository"
	"github.com/senservices/backend/internal/server"
	"github.com/senservices/backend/internal/service"
	"github.com/senservices/backend/internal/sms"
	"github.com/senservices/backend/internal/worker"
	"github.com/senservices/backend/pkg/auth"
	"github.com/senservices/backend/pkg/email/smtp"
	"github.com/senservices/backend/pkg/hash"
	"github.com/senservices/backend/pkg/logger"
	"github.com/senservices/backend/pkg/otp"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	appLogger := logger.SetupLogger(cfg.Env)
	defer appLogger.Sync() //nolint:errcheck

	appLogger.Info("starting backend api", zap.String("env", cfg.Env))
	appLogger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			appLogger.Error("error when closing mysql", zap.Error(err))
		}
	}()
	appLogger.Info("mysql connection done")

	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		appLogger.Error("redis connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			appLogger.Error("error when closing redis", zap.Error(err))
		}
	}()
	appLogger.Info("redis connection done")

	hasher := hash.NewSHA256Hasher(cfg.Auth.PasswordSalt)

	tokenManager, err := auth.NewManager(cfg.Auth.JWT.SigningKey, cfg.Auth.JWT.TokenTTL)
	if err != nil {
		appLogger.Error("auth manager creation err", zap.Error(err))
		return
	}

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		appLogger.Error("smtp sender creation failed", zap.Error(err))
		return
	}

	otpGenerator := otp.NewGOTPGenerator()

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	smsClient := sms.NewClient(cfg.SMS, repos.Sms)

	services := service.NewServices(service.Deps{
		Config:       cfg,
		Hasher:       hasher,
		TokenManager: tokenManager,
		OtpGenerator: otpGenerator,
		SmsSender:    smsClient,
		Redis:        redisClient,
		Repos:        repos,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, cfg)

	// Task queue: client for enqueueing, server for the email worker
	asynqClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
	restoreClient := queueclient.SetClient(asynqClient)
	defer restoreClient()
	defer func() {
		if err := asynqClient.Close(); err != nil {
			appLogger.Error("error when closing asynq client", zap.Error(err))
		}
	}()

	workers := worker.NewWorkers(worker.Deps{
		EmailProvider: emailSender,
		Config:        cfg,
	})
	queueSrv, queueMux := asynqserver.New(cfg.Cache, workers)
	go func() {
		if err := queueSrv.Run(queueMux); err != nil {
			appLogger.Error("error occurred while running queue server", zap.Error(err))
		}
	}()

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	queueSrv.Shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	appLogger.Info("app stopped")
}
