// Package cli implements the cobra command tree for censusviz.
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/censusviz/censusviz/api"
	"github.com/censusviz/censusviz/config"
	"github.com/censusviz/censusviz/dataset"
	dserrors "github.com/censusviz/censusviz/dataset/errors"
	"github.com/censusviz/censusviz/logger"
)

// ExitError wraps an error with a specific process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Execute builds the command tree, runs it, and returns the exit code.
func Execute() int {
	cmd := NewRootCommand()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return 1
	}

	return 0
}

// NewRootCommand constructs the top-level cobra.Command. The root command
// runs the dashboard server; censusviz is a single-purpose daemon.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "censusviz",
		Short: "Serve the census income/education 3D dashboard",
		Long: `censusviz loads the adult census dataset once, derives a numeric
income column from the income bracket label, and serves an interactive
dashboard: filter controls, a 3D scatter chart of education level versus
income versus a selectable categorical variable, a filtered-record preview
and summary statistics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd, cfgFile)
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}

			logger.Configure(logger.Config{
				Level:  logger.ParseLevel(cfg.LogLevel),
				Format: cfg.LogFormat,
			})

			return serve(cmd.Context(), cfg)
		},
	}

	pf := cmd.Flags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: .censusviz.yaml)")
	pf.String("addr", ":8080", "listen address of the dashboard server")
	pf.String("dataset", dataset.DefaultPath, "path of the census CSV file")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text, json")
	pf.Int("chart-height", 700, "rendered chart height in pixels")
	pf.Int("preview-rows", 5, "rows shown in the filtered-data preview")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Err: err}
	})

	return cmd
}

// serve loads the dataset and runs the HTTP server until SIGINT/SIGTERM.
// A load failure halts the process before the server starts: the dashboard
// never serves partial data.
func serve(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	loader := dataset.NewLoader(cfg.Dataset)
	table, err := loader.Load(ctx)
	if err != nil {
		if dserrors.IsResourceNotFound(err) {
			logger.Error("dataset not found", "path", loader.Path(), "error", err)
		} else {
			logger.Error("dataset load failed", "path", loader.Path(), "error", err)
		}
		return &ExitError{Code: 1, Err: err}
	}

	handler := api.NewHandler(table, api.Options{
		ChartHeight: cfg.ChartHeight,
		PreviewRows: cfg.PreviewRows,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	handler.RegisterRoutes(r)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("dashboard listening", "addr", cfg.Addr, "records", table.Len())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("server failed", "error", err)
		return &ExitError{Code: 1, Err: err}
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("shutting down", "reason", ctx.Err())
	}

	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown failed", "error", err)
		return &ExitError{Code: 1, Err: err}
	}

	logger.Info("shutdown complete")
	return nil
}
