package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/supplyflow/pkg/config"
	"github.com/vsinha/supplyflow/pkg/infrastructure/logging"
	"github.com/vsinha/supplyflow/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/supplyflow/pkg/infrastructure/telemetry"
	"github.com/vsinha/supplyflow/pkg/interfaces/httpapi"
	"github.com/vsinha/supplyflow/pkg/topology"
)

// ServeConfig holds configuration for the serve command
type ServeConfig struct {
	ConfigPath string
	Addr       string // overrides the configured listen address when set
}

// ServeCommand runs the HTTP API server
type ServeCommand struct {
	config ServeConfig
}

// NewServeCommand creates a new serve command
func NewServeCommand(config ServeConfig) *ServeCommand {
	return &ServeCommand{config: config}
}

// Execute runs the server until SIGINT, SIGTERM, or context cancellation
func (c *ServeCommand) Execute(ctx context.Context) error {
	cfg, err := config.Load(c.config.ConfigPath)
	if err != nil {
		return err
	}
	if c.config.Addr != "" {
		cfg.Server.Addr = c.config.Addr
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("error building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store, err := csv.NewLoader().LoadDirectory(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("error loading reference data: %w", err)
	}
	graph, err := topology.Build(store)
	if err != nil {
		return fmt.Errorf("error building topology graph: %w", err)
	}

	var collector *telemetry.Collector
	if cfg.Telemetry.DBPath != "" {
		collector, err = telemetry.NewCollector(cfg.Telemetry.DBPath)
		if err != nil {
			return fmt.Errorf("error opening telemetry store: %w", err)
		}
		defer collector.Close()
	}

	api := httpapi.NewServer(cfg, store, graph, collector, logger)
	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: api.Router(),
		// The router's own timeout middleware fires first; these only catch
		// stuck connections.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 75 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	serverLogger := logger.With(zap.String("addr", server.Addr))
	errCh := make(chan error, 1)
	go func() {
		serverLogger.Info("supplyflow api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-shutdown:
		serverLogger.Info("shutdown signal received; draining requests")
	case <-ctx.Done():
		serverLogger.Info("context cancelled; draining requests")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
