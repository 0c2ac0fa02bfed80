// Package lawcheck runs optic law suites at runtime with gopter and reports
// the outcome through slog.
package lawcheck

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/authcorp/optics/internal/config"
	"github.com/leanovate/gopter"
)

// Run resolves the configured suites and checks them.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Report, error) {
	suites, err := Lookup(cfg.Check.Suites)
	if err != nil {
		return Report{}, err
	}
	return RunSuites(ctx, cfg.Check, logger, suites...)
}

// RunSuites checks each suite in order with the same seed. Cancelling ctx
// stops the run between suites and returns the partial report. When any
// property fails the error is a *ViolationError.
func RunSuites(ctx context.Context, check config.CheckConfig, logger *slog.Logger, suites ...Suite) (Report, error) {
	seed := check.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	report := Report{
		Seed:          seed,
		MinSuccessful: check.MinSuccessful,
		MaxSize:       check.MaxSize,
	}
	logger.Info("law check started",
		slog.Int64("seed", seed),
		slog.Int("suites", len(suites)),
		slog.Int("min_successful", check.MinSuccessful),
	)

	for _, suite := range suites {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("law check interrupted before suite %q: %w", suite.Name, err)
		}

		parameters := gopter.DefaultTestParametersWithSeed(seed)
		parameters.MinSuccessfulTests = check.MinSuccessful
		parameters.MaxSize = check.MaxSize

		properties := gopter.NewProperties(parameters)
		suite.define(properties)
		properties.Run(&slogReporter{
			logger: logger.With(slog.String("suite", suite.Name), slog.String("kind", suite.Kind)),
			suite:  suite,
			report: &report,
		})
	}

	logger.Info("law check finished",
		slog.Int("passed", report.Passed),
		slog.Int("failed", report.Failed),
	)

	if failures := report.Failures(); len(failures) > 0 {
		return report, &ViolationError{Failures: failures}
	}
	return report, nil
}

// slogReporter implements gopter.Reporter, logging each property and
// recording it in the report.
type slogReporter struct {
	logger *slog.Logger
	suite  Suite
	report *Report
}

func (r *slogReporter) ReportTestResult(propName string, result *gopter.TestResult) {
	res := Result{
		Suite:     r.suite.Name,
		Kind:      r.suite.Kind,
		Property:  propName,
		Status:    result.Status.String(),
		Succeeded: result.Succeeded,
		Discarded: result.Discarded,
	}
	if result.Error != nil {
		res.Error = result.Error.Error()
	}
	for _, arg := range result.Args {
		value := arg.ArgFormatted
		if value == "" {
			value = arg.String()
		}
		if arg.Label != "" {
			value = arg.Label + "=" + value
		}
		res.Args = append(res.Args, value)
	}
	r.report.add(res)

	attrs := []any{
		slog.String("property", propName),
		slog.String("status", res.Status),
		slog.Int("succeeded", res.Succeeded),
		slog.Int("discarded", res.Discarded),
		slog.Duration("elapsed", result.Time),
	}
	if res.Passed() {
		r.logger.Debug("property passed", attrs...)
		return
	}
	attrs = append(attrs, slog.Any("args", res.Args))
	if res.Error != "" {
		attrs = append(attrs, slog.String("error", res.Error))
	}
	r.logger.Error("property failed", attrs...)
}
