// Command lawcheck runs the built-in optic law suites and prints a report.
//
// Exit status is 0 when every law holds, 1 when a law is violated and 2
// when the configuration cannot be loaded.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/authcorp/optics/internal/config"
	"github.com/authcorp/optics/internal/lawcheck"
	"github.com/lmittmann/tint"
)

const (
	exitOK        = 0
	exitViolation = 1
	exitConfig    = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("lawcheck", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a YAML config file")
	if err := flags.Parse(args); err != nil {
		return exitConfig
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "lawcheck: %v\n", err)
		return exitConfig
	}
	logger := NewLogger(cfg, stderr)

	report, err := lawcheck.Run(ctx, cfg, logger)
	if errors.Is(err, lawcheck.ErrUnknownSuite) {
		logger.Error("invalid suite selection", slog.Any("error", err))
		return exitConfig
	}

	if encErr := lawcheck.Encode(stdout, cfg.Report.Format, report); encErr != nil {
		logger.Error("failed to write report", slog.Any("error", encErr))
		return exitConfig
	}

	var violation *lawcheck.ViolationError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &violation):
		logger.Error("law check failed", slog.Int("violations", len(violation.Failures)))
		return exitViolation
	default:
		logger.Error("law check aborted", slog.Any("error", err))
		return exitViolation
	}
}

// NewLogger creates a structured logger based on configuration.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level := parseLogLevel(cfg.Logging.Level)

	var handler slog.Handler
	switch cfg.Logging.Format {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case "tint":
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
			NoColor:    os.Getenv("NO_COLOR") != "",
		})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
