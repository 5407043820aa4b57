// Package cli glues the cobra commands to the replay engine: it resolves
// configuration, builds the driver, pages, registry and orchestrator, and
// renders the RunSummary.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osvk/uireplay/internal/actions"
	"github.com/osvk/uireplay/internal/config"
	"github.com/osvk/uireplay/internal/logging"
	"github.com/osvk/uireplay/internal/logparse"
	"github.com/osvk/uireplay/internal/pages"
	"github.com/osvk/uireplay/internal/runtime"
	"github.com/osvk/uireplay/pkg/adapters/rodriver"
	"github.com/osvk/uireplay/pkg/domain"
	"github.com/osvk/uireplay/pkg/observability"
	"github.com/osvk/uireplay/pkg/ports"
	"github.com/osvk/uireplay/pkg/registry"
)

// RunOptions contains the configuration of the 'run' command.
type RunOptions struct {
	LogPath         string
	DryParse        bool
	NoPrepare       bool
	DebuggerAddress string
	SkipRulesPath   string
}

// Execute performs one replay invocation and returns the finalized summary.
// The summary is non-nil even on failure so callers can render it.
func Execute(ctx context.Context, opts RunOptions) (*domain.RunSummary, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.DebuggerAddress != "" {
		cfg.DebuggerAddress = opts.DebuggerAddress
	}
	log := logging.New(logging.ParseLevel(cfg.LogLevel))

	logPath, err := resolveLogPath(opts.LogPath)
	if err != nil {
		return nil, err
	}
	log.Info("replaying", "log", logPath, "dryParse", opts.DryParse, "prepare", !opts.NoPrepare)

	skip := registry.DefaultSkipPolicy()
	if opts.SkipRulesPath != "" {
		rules, err := registry.LoadSkipRules(opts.SkipRulesPath)
		if err != nil {
			return nil, err
		}
		skip = skip.Extend(rules...)
	}

	// Dry-parse guarantees zero driver interactions by never opening a
	// driver at all.
	var drv ports.Driver
	if !opts.DryParse {
		rodDrv, err := rodriver.Attach(ctx, cfg.DebuggerAddress,
			rodriver.WithTimeout(cfg.ElementTimeout),
			rodriver.WithLogger(log),
		)
		if err != nil {
			return nil, fmt.Errorf("attach to editor: %w", err)
		}
		defer rodDrv.Close()
		drv = rodDrv
	}

	// At debug level, collect per-action timings and report them after the run.
	var rec *observability.Recorder
	var hooks *domain.HookTable
	if log.Enabled(ctx, slog.LevelDebug) && !opts.DryParse {
		rec = observability.NewRecorder()
		hooks = rec.Attach(domain.NewHookTable())
	}

	eng := buildEngine(cfg, drv, skip, hooks, log, opts)
	summary, runErr := eng.Run(ctx, logPath)

	if rec != nil {
		for _, st := range rec.Snapshot() {
			log.Debug("action timing",
				"key", st.Key.String(),
				"count", st.Count,
				"total", st.Total,
				"slowest", st.Slowest,
			)
		}
	}
	return summary, runErr
}

func buildEngine(cfg *config.Config, drv ports.Driver, skip *registry.SkipPolicy, hooks *domain.HookTable, log *slog.Logger, opts RunOptions) *runtime.Engine {
	pageSet := pages.NewSet(drv, pages.Timeouts{
		Element: cfg.ElementTimeout,
		Preview: cfg.PreviewTimeout,
		Export:  cfg.ExportTimeout,
		Success: cfg.SuccessTimeout,
	}, log)
	reg := actions.NewRegistry(pageSet, drv, log)

	engineOpts := []runtime.Option{runtime.WithLogger(log)}
	if hooks != nil {
		engineOpts = append(engineOpts, runtime.WithHookTable(hooks))
	}
	if opts.DryParse {
		engineOpts = append(engineOpts, runtime.WithDryParse())
	}
	if opts.NoPrepare {
		engineOpts = append(engineOpts, runtime.WithoutPreparation())
	}
	return runtime.New(reg, skip, drv, engineOpts...)
}

func resolveLogPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	latest := logparse.LatestLog(".")
	if latest == "" {
		return "", fmt.Errorf("no --log given and no interaction-log-*.jsonl found in current directory")
	}
	return latest, nil
}
