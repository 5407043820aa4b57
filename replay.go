package uireplay

import (
	"context"
	"log/slog"

	"github.com/osvk/uireplay/internal/actions"
	"github.com/osvk/uireplay/internal/config"
	"github.com/osvk/uireplay/internal/logging"
	"github.com/osvk/uireplay/internal/pages"
	"github.com/osvk/uireplay/internal/runtime"
	"github.com/osvk/uireplay/pkg/adapters/rodriver"
	"github.com/osvk/uireplay/pkg/domain"
	"github.com/osvk/uireplay/pkg/ports"
	"github.com/osvk/uireplay/pkg/registry"
)

// Version is the release version, overridable at build time via ldflags.
var Version = "0.1.0"

// Replayer is the high-level entry point for the library.
// It wraps the internal runtime and provides a simplified API for consumers
// who don't need to assemble the registry, pages, and driver themselves.
type Replayer struct {
	driver      ports.Driver
	ownsDriver  bool
	hooks       *domain.HookTable
	skip        *registry.SkipPolicy
	logger      *slog.Logger
	dryParse    bool
	noPrepare   bool
	runtimeOpts []runtime.Option
}

// Option defines a functional option for configuring the Replayer.
type Option func(*Replayer)

// WithDriver injects a custom driver, bypassing the default DevTools attach.
func WithDriver(d ports.Driver) Option {
	return func(r *Replayer) {
		r.driver = d
	}
}

// WithHookTable registers per-record hooks.
func WithHookTable(h *domain.HookTable) Option {
	return func(r *Replayer) {
		r.hooks = h
	}
}

// WithSkipPolicy replaces the default skip policy.
func WithSkipPolicy(p *registry.SkipPolicy) Option {
	return func(r *Replayer) {
		r.skip = p
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Replayer) {
		r.logger = l
	}
}

// WithDryParse validates the log without touching the editor.
func WithDryParse() Option {
	return func(r *Replayer) {
		r.dryParse = true
	}
}

// WithoutPreparation skips the pre-step sequence.
func WithoutPreparation() Option {
	return func(r *Replayer) {
		r.noPrepare = true
	}
}

// New initializes a Replayer. By default it attaches to the editor's remote
// debugging port from the environment (UIREPLAY_DEBUGGER_ADDRESS). If
// WithDriver is provided no connection is made. In dry-parse mode no driver
// is needed at all.
func New(ctx context.Context, opts ...Option) (*Replayer, error) {
	r := &Replayer{}
	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = logging.NewNop()
	}
	if r.skip == nil {
		r.skip = registry.DefaultSkipPolicy()
	}

	if r.driver == nil && !r.dryParse {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		drv, err := rodriver.Attach(ctx, cfg.DebuggerAddress,
			rodriver.WithTimeout(cfg.ElementTimeout),
			rodriver.WithLogger(r.logger),
		)
		if err != nil {
			return nil, err
		}
		r.driver = drv
		r.ownsDriver = true
	}

	return r, nil
}

// Run replays the log at path and returns its summary. The returned error is
// non-nil exactly when the summary reports an aborted run.
func (r *Replayer) Run(ctx context.Context, path string) (*domain.RunSummary, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var reg *registry.Registry
	if r.driver != nil {
		pg := pages.NewSet(r.driver, pages.Timeouts{
			Element: cfg.ElementTimeout,
			Preview: cfg.PreviewTimeout,
			Export:  cfg.ExportTimeout,
			Success: cfg.SuccessTimeout,
		}, r.logger)
		reg = actions.NewRegistry(pg, r.driver, r.logger)
	} else {
		reg = registry.New()
	}

	engOpts := []runtime.Option{runtime.WithLogger(r.logger)}
	if r.hooks != nil {
		engOpts = append(engOpts, runtime.WithHookTable(r.hooks))
	}
	if r.dryParse {
		engOpts = append(engOpts, runtime.WithDryParse())
	}
	if r.noPrepare {
		engOpts = append(engOpts, runtime.WithoutPreparation())
	}
	engOpts = append(engOpts, r.runtimeOpts...)

	eng := runtime.New(reg, r.skip, r.driver, engOpts...)
	return eng.Run(ctx, path)
}

// Close releases the driver if the Replayer created it.
func (r *Replayer) Close() error {
	if r.ownsDriver && r.driver != nil {
		return r.driver.Close()
	}
	return nil
}
