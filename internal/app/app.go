package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bhavuk-Devex/AVO/internal/config"
	httpx "github.com/Bhavuk-Devex/AVO/internal/http"
	"github.com/Bhavuk-Devex/AVO/internal/http/handlers"
	"github.com/Bhavuk-Devex/AVO/internal/http/middleware"
	"github.com/Bhavuk-Devex/AVO/internal/http/responses"
	"github.com/Bhavuk-Devex/AVO/internal/infrastructure/database"
	"github.com/Bhavuk-Devex/AVO/internal/logging"
)

const shutdownTimeout = 10 * time.Second

// NewRouter wires handlers and middleware onto the container's services
func NewRouter(c *Container) *gin.Engine {
	writer := responses.NewWriter(c.Logger, c.Config.LegacyStatus200)

	checks := map[string]handlers.Pinger{"database": database.GormPinger{DB: c.DB}}
	if c.Redis != nil {
		checks["redis"] = c.Redis
	}

	return httpx.BuildRouter(httpx.RouterDeps{
		Logger:      c.Logger,
		Metrics:     c.Metrics,
		Gatherer:    c.Registry,
		CORSOrigins: c.Config.CORSOrigins,
		RateLimits: httpx.RateLimits{
			Window:     c.Config.RateLimitWindow,
			IPLimit:    c.Config.RateLimitIP,
			EmailLimit: c.Config.RateLimitEmail,
		},
		Auth:     middleware.NewAuthMW(c.TokenSvc, writer, c.Logger),
		Limiter:  middleware.NewRateLimiter(c.RateLimitRepo, writer, c.Logger, c.Metrics),
		Account:  handlers.NewAccountHandlers(c.AccountSvc, writer),
		Business: handlers.NewBusinessHandlers(c.BusinessSvc, writer),
		Policy:   handlers.NewPolicyHandlers(c.PolicySvc, writer),
		Health:   handlers.NewHealthHandlers(checks),
	})
}

// Run starts the HTTP server and blocks until it stops or a shutdown signal arrives
func Run(cfg *config.Config) error {
	logger := logging.New(logging.Options{
		ServiceName: "avo",
		Level:       logging.ParseLevel(cfg.LogLevel),
		Format:      cfg.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.GinMode)

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			logger.Error(context.Background(), "shutdown", err)
		}
	}()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      NewRouter(c),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoFields(ctx, "listening", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
