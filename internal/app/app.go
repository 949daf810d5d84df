package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vesrates/internal/adapters/cache"
	"vesrates/internal/adapters/httpclient"
	"vesrates/internal/adapters/postgres"
	"vesrates/internal/api"
	"vesrates/internal/config"
	"vesrates/internal/platform/db"
	httpserver "vesrates/internal/platform/http"
	"vesrates/internal/rate"
	"vesrates/internal/rate/handler"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server, sync scheduler
// and the rate poller.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, initial reads)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.Provider.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// External provider client
	if appCfg.Provider.PrimaryURL == "" || appCfg.Provider.FallbackURL == "" {
		return fmt.Errorf("provider primary and fallback URLs are required")
	}
	rateClient := httpclient.NewVESRateClient(
		baseHTTPClient,
		appCfg.Provider.PrimaryURL,
		appCfg.Provider.FallbackURL,
		appCfg.Provider.ID,
	)

	// Repositories
	rateRepo := postgres.NewRateRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)

	// Snapshot cache for the poller
	snapshotCache, err := cache.NewSnapshotCache()
	if err != nil {
		logrus.WithError(err).Error("Failed to create snapshot cache")
		return err
	}
	defer snapshotCache.Close()

	// Services
	rateService := rate.NewService(rateRepo, notificationRepo)
	overrideService := rate.NewOverride(rateClient, rateRepo, notificationRepo)

	// Sync scheduler (daily, hourly, near-real-time cadences)
	scheduler := rate.NewScheduler(
		rateClient,
		rateRepo,
		notificationRepo,
		appCfg.Scheduler.DailyHour,
		time.Duration(appCfg.Scheduler.RealtimeIntervalSec)*time.Second,
	)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Rate poller for in-process consumers
	poller := rate.NewPoller(rateRepo, notificationRepo, snapshotCache)
	stopPoller := poller.Start(ctx, logPollResult)
	defer stopPoller()
	logrus.Info("✅ Rate poller started")

	// Handlers and router
	rateHandler := handler.NewRateHandler(rateService, overrideService)
	router := api.NewRouter(rateHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

func logPollResult(res rate.PollResult) {
	switch {
	case res.NoData:
		logrus.Warn("Rate poll: no data available (live read failed, snapshot expired)")
	case res.FromCache:
		logrus.Warnf("Rate poll: serving cached rate %.4f", *res.Rate)
	default:
		for _, b := range res.Banners {
			logrus.WithFields(logrus.Fields{"banner": b.Kind, "severity": b.Severity}).Info(b.Message)
		}
	}
}
