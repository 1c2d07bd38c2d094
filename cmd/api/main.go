package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/frenetico9/Corte-Digital/internal/audit"
	"github.com/frenetico9/Corte-Digital/internal/config"
	dbpkg "github.com/frenetico9/Corte-Digital/internal/db"
	domain "github.com/frenetico9/Corte-Digital/internal/domain/appointment"
	"github.com/frenetico9/Corte-Digital/internal/infra/cache"
	"github.com/frenetico9/Corte-Digital/internal/logger"
	"github.com/frenetico9/Corte-Digital/internal/metrics"
	"github.com/frenetico9/Corte-Digital/internal/routes"
	"github.com/frenetico9/Corte-Digital/internal/timezone"
)

func main() {

	cfg := config.Load()

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if !timezone.IsValid(cfg.DefaultTimezone) {
		log.Fatal("invalid DEFAULT_TIMEZONE", zap.String("timezone", cfg.DefaultTimezone))
	}
	timezone.SetDefault(cfg.DefaultTimezone)

	ctx := context.Background()

	// ======================================================
	// 🗄️ BANCO
	// ======================================================
	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	if err := dbpkg.Provision(ctx, db, log); err != nil {
		log.Fatal("failed to provision database", zap.Error(err))
	}

	// ======================================================
	// ⚡ CACHE DE HORÁRIOS
	// ======================================================
	var slotCache domain.SlotCache = cache.Noop{}
	if cfg.RedisAddr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal("failed to connect redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		defer client.Close()

		slotCache = cache.NewRedisSlotCache(client, cfg.SlotCacheTTL)
		log.Info("slot cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.SlotCacheTTL))
	} else {
		log.Info("slot cache disabled")
	}

	// ======================================================
	// 📈 MÉTRICAS + AUDITORIA
	// ======================================================
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	dispatcher := audit.NewDispatcher(audit.New(db), log)

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      log,
		Cache:    slotCache,
		Metrics:  m,
		Gatherer: registry,
		Audit:    dispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	// grava o que ainda estiver na fila de auditoria
	dispatcher.Close()

	log.Info("server stopped")
}
