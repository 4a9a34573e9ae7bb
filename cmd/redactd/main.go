// redactd serves PDF redaction over HTTP.
//
// Configuration:
//
// The daemon reads a YAML configuration file; every key is optional:
//
//	addr: ":8080"
//	output_dir: "./anonymised"
//	fetch_timeout: 30s
//	max_fetch_bytes: 52428800
//	redaction:
//	  color: "#000000"
//	  label: "REDACTED"
//	  layer_name: "Redactions"
//	  force: false
//	  strict_geometry: false
//
// Usage:
//
//	redactd -config redactd.yml
//
// Endpoints:
//
//	POST /process-anonymisation  {"pdfURL", "verticesURL", "color", "targets"}
//	POST /keys                   {"verticesURL"}
//	GET  /healthz
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gardar/docredact/pkg/server"
)

func main() {
	configPath := flag.String("config", "", "Path to the config YAML file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := server.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = server.LoadConfig(*configPath)
		if err != nil {
			logger.Error("load config", "error", err)
			os.Exit(1)
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		logger.Error("create output dir", "dir", cfg.OutputDir, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(cfg, nil, logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("redactd listening", "addr", cfg.Addr, "output_dir", cfg.OutputDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}
