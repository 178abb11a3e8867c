package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nsurendrareddy/Crypto-Price-Predictor/internal/handler/api"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/internal/usecase"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/cache"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/config"
	xhttp "github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/http"
	applogger "github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	handler    *api.PredictHandler
	warmer     *usecase.Warmer
	cache      cache.Service
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	logger *applogger.Logger,
	handler *api.PredictHandler,
	warmer *usecase.Warmer,
	c cache.Service,
) *App {
	return &App{
		cfg:     cfg,
		logger:  logger,
		handler: handler,
		warmer:  warmer,
		cache:   c,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
	}

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithLogger(a.logger),
	)

	if a.warmer != nil {
		if err := a.warmer.Start(); err != nil {
			a.logger.Error("warmer start error", applogger.Error(err))
			return err
		}
		a.logger.Info("cache warmer started",
			applogger.String("schedule", a.cfg.Warmup.Schedule),
			applogger.Strings("coins", a.cfg.Warmup.Coins))
	}

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("env", a.cfg.Environment))

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown stops components in reverse start order.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if a.warmer != nil {
		if err := a.warmer.Stop(ctx); err != nil {
			a.logger.Error("warmer stop error", applogger.Error(err))
		}
	}

	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http server stop error", applogger.Error(err))
		return err
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("cache close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
