package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nvdberg/splithorizon/internal/api"
	"github.com/nvdberg/splithorizon/internal/api/handlers"
	"github.com/nvdberg/splithorizon/internal/config"
	"github.com/nvdberg/splithorizon/internal/database"
	"github.com/nvdberg/splithorizon/internal/logging"
	"github.com/nvdberg/splithorizon/internal/mgmt"
	"github.com/nvdberg/splithorizon/internal/repository"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to JSON configuration file (or set SPLITHORIZON_CONFIG)")
		host       = flag.String("host", "", "Override bind host")
		port       = flag.Int("port", 0, "Override bind port")
		endpoint   = flag.String("endpoint", "", "Override DNS server management endpoint")
		auditPath  = flag.String("audit", "", "Override operation log database path")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *endpoint != "" {
		cfg.Upstream.Endpoint = *endpoint
	}
	if *auditPath != "" {
		cfg.Audit.Path = *auditPath
	}
	if *jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Configure(logging.Config{
		Level:            cfg.Logging.Level,
		Structured:       cfg.Logging.Structured,
		StructuredFormat: cfg.Logging.StructuredFormat,
		IncludePID:       cfg.Logging.IncludePID,
		ExtraFields:      cfg.Logging.ExtraFields,
	})
	logger.Info("SplitHorizon starting",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"endpoint", cfg.Upstream.Endpoint,
	)

	timeout, err := cfg.Upstream.ParseTimeout()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid upstream timeout: %v\n", err)
		os.Exit(1)
	}

	var audit *database.DB
	if cfg.Audit.Path != "" {
		audit, err = database.Open(cfg.Audit.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open operation log: %v\n", err)
			os.Exit(1)
		}
		defer audit.Close()
		logger.Info("operation log enabled", "path", cfg.Audit.Path)
	}

	client := mgmt.NewHTTPClient(cfg.Upstream.Endpoint, cfg.Upstream.APIKey, timeout)
	repo := repository.New(client, logger, auditor(audit))
	h := handlers.New(cfg, repo, audit, logger)
	server := api.New(cfg, h, logger)

	if err := run(server, logger); err != nil {
		fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
		os.Exit(1)
	}
}

// auditor converts a possibly-nil *database.DB into a repository
// auditor without smuggling a typed nil behind the interface.
func auditor(db *database.DB) repository.Auditor {
	if db == nil {
		return nil
	}
	return db
}

// run serves the API until SIGINT/SIGTERM, then shuts down gracefully.
func run(server *api.Server, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	l, err := server.Listen(ctx)
	if err != nil {
		return err
	}
	logger.Info("management API listening", "addr", l.Addr().String())

	errCh := make(chan error, 1)
	go func() { errCh <- server.Serve(l) }()

	select {
	case <-ctx.Done():
		// shutdown requested via signal
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}
