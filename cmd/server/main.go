package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/sarvasvaa/dairyops/internal/config"
	"github.com/sarvasvaa/dairyops/internal/scheduler"
	"github.com/sarvasvaa/dairyops/internal/server/handlers"
	"github.com/sarvasvaa/dairyops/internal/server/router"
	"github.com/sarvasvaa/dairyops/internal/service/agent"
	"github.com/sarvasvaa/dairyops/internal/service/analytics"
	"github.com/sarvasvaa/dairyops/internal/session"
	"github.com/sarvasvaa/dairyops/pkg/clients/dairyapi"
	"github.com/sarvasvaa/dairyops/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	loc, err := time.LoadLocation(cfg.Reporting.Timezone)
	if err != nil {
		baseLogger.Warn("unknown timezone, falling back to local", zap.String("timezone", cfg.Reporting.Timezone), zap.Error(err))
		loc = time.Local
	}

	store, err := session.Open(cfg.Session.DBPath)
	if err != nil {
		baseLogger.Fatal("failed to open session store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			baseLogger.Error("failed to close session store", zap.Error(err))
		}
	}()

	apiClient := dairyapi.NewClient(cfg.API.BaseURL, store)

	dashboardSvc := analytics.NewDashboardService(apiClient, baseLogger.Named("svc.dashboard"))
	agentSvc := agent.NewService(apiClient, store, baseLogger.Named("svc.agent"))

	engine := router.New(router.Handlers{
		Session:   handlers.NewSessionHandler(store, baseLogger.Named("handlers.session")),
		Records:   handlers.NewRecordsHandler(apiClient, baseLogger.Named("handlers.records")),
		Dashboard: handlers.NewDashboardHandler(dashboardSvc, baseLogger.Named("handlers.dashboard")),
		Calendar:  handlers.NewCalendarHandler(apiClient, loc, baseLogger.Named("handlers.calendar")),
		Reports:   handlers.NewReportsHandler(apiClient, baseLogger.Named("handlers.reports")),
		Agent:     handlers.NewAgentHandler(agentSvc, baseLogger.Named("handlers.agent")),
	}, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Reporting, apiClient, loc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
