package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"EquityLens/pkg/config"
	xhttp "EquityLens/pkg/http"
	xlogger "EquityLens/pkg/logger"
)

// App encapsulates the application lifecycle: one HTTP server, no background
// workers, no shared state across requests.
type App struct {
	cfg        *config.Config
	logger     *xlogger.Logger
	handler    xhttp.Handler
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, logger *xlogger.Logger, handler xhttp.Handler) *App {
	return &App{
		cfg:     cfg,
		logger:  logger,
		handler: handler,
	}
}

// Run starts the HTTP server and blocks until interrupted.
func (a *App) Run() error {
	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", xlogger.Error(err))
		return err
	}
	a.logger.Info("server started",
		xlogger.Int("port", a.cfg.Server.Port),
		xlogger.String("environment", a.cfg.Environment),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	return a.httpServer.Stop(ctx)
}
