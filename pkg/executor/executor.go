package executor

import (
	"context"

	"github.com/arthur-debert/neaten/pkg/filesystem"
	"github.com/arthur-debert/neaten/pkg/logging"
	"github.com/arthur-debert/neaten/pkg/types"
	"github.com/arthur-debert/neaten/pkg/walker"
	"github.com/rs/zerolog"
)

// Options contains configuration for the executor
type Options struct {
	// Reporter receives every walker event. Nil discards them.
	Reporter types.Reporter
	// Logger defaults to the "executor" component logger
	Logger *zerolog.Logger
	// Filesystem operations interface for testing
	FS types.FS
}

// Executor applies rules through a Walker
type Executor struct {
	walker *walker.Walker
	logger zerolog.Logger
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	return &Executor{
		walker: walker.New(fs, opts.Reporter),
		logger: logger,
	}
}

// Run applies every rule of rules in order and returns what happened.
// Per-entry failures are part of the summary and never make Run fail; the
// only error is ctx's, when the run is cancelled.
func (e *Executor) Run(ctx context.Context, rules types.RuleSet) (types.Summary, error) {
	summary := types.Summary{
		Results: make([]types.RuleResult, 0, rules.Len()),
		DryRun:  rules.Len() > 0,
	}

	e.logger.Info().Int("rules", rules.Len()).Msg("Executing rules")

	for i, rule := range rules.Rules() {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		done := logging.LogOperationStart(e.logger, "walk "+rule.Destination())
		stats, err := e.walker.Walk(ctx, rule)
		done()

		summary.Results = append(summary.Results, types.RuleResult{Rule: rule, Stats: stats})
		summary.Total.Add(stats)
		summary.DryRun = summary.DryRun && rule.DryRun()

		if err != nil {
			e.logger.Warn().Err(err).Int("rule", i).Msg("Run interrupted")
			return summary, err
		}

		e.logger.Debug().
			Int("rule", i).
			Int("matched", stats.Matched).
			Int("removed", stats.Removed).
			Int("failed", stats.Failed).
			Msg("Rule finished")
	}

	e.logger.Info().
		Int("matched", summary.Total.Matched).
		Int("removed", summary.Total.Removed).
		Int("failed", summary.Total.Failed).
		Msg("Execution complete")

	return summary, nil
}
