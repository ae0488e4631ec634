package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jeff1984Sor/app-beach/internal/audit"
	"github.com/Jeff1984Sor/app-beach/internal/config"
	dbpkg "github.com/Jeff1984Sor/app-beach/internal/db"
	infraRepo "github.com/Jeff1984Sor/app-beach/internal/infra/repository"
	"github.com/Jeff1984Sor/app-beach/internal/logging"
	"github.com/Jeff1984Sor/app-beach/internal/middleware"
	"github.com/Jeff1984Sor/app-beach/internal/notify"
	"github.com/Jeff1984Sor/app-beach/internal/routes"
	"github.com/Jeff1984Sor/app-beach/internal/session"
	ucScheduling "github.com/Jeff1984Sor/app-beach/internal/usecase/scheduling"
	"github.com/Jeff1984Sor/app-beach/internal/validators"
)

func main() {

	cfg := config.Load()

	logger := logging.NewLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	if err := validators.Register(); err != nil {
		logger.Fatal("failed to register validators", zap.Error(err))
	}

	window, err := cfg.Window()
	if err != nil {
		logger.Fatal("invalid operating window", zap.Error(err))
	}
	loc := cfg.Location()

	db, err := dbpkg.NewDB(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := session.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Fatal("failed to connect redis", zap.Error(err))
	}
	sessions := session.NewRedisStore(redisClient)

	auditDispatcher := audit.NewDispatcher(audit.New(db), logger.Named("audit"))

	// ======================================================
	// REMINDERS
	// ======================================================
	var sender notify.Sender = notify.NewLogSender(logger.Named("whatsapp"))
	if cfg.TwilioEnabled() {
		sender = notify.NewTwilioWhatsApp(
			cfg.TwilioAccountSID,
			cfg.TwilioAuthToken,
			cfg.TwilioWhatsAppFrom,
			logger.Named("whatsapp"),
		)
	}

	reminderJob := notify.NewReminderJob(
		infraRepo.NewSchedulingGormRepository(db),
		sender,
		loc,
		logger.Named("reminder"),
	)
	reminders, err := notify.NewScheduler(cfg.ReminderCron, reminderJob, loc, logger.Named("cron"))
	if err != nil {
		logger.Fatal("failed to schedule reminders", zap.Error(err))
	}
	reminders.Start()

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestLogger(logger.Named("http")),
		gin.Recovery(),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Sessions: sessions,
		Audit:    auditDispatcher,
		Calendar: ucScheduling.NewCalendar(window, loc),
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	reminders.Stop(shutdownCtx)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	auditDispatcher.Close()

	if err := redisClient.Close(); err != nil {
		logger.Warn("redis close failed", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

}
