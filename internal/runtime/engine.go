// Package runtime contains the replay orchestrator: the state machine that
// takes a parsed interaction log through injection and execution, fail-fast,
// in strict file line order.
package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osvk/uireplay/internal/logging"
	"github.com/osvk/uireplay/internal/logparse"
	"github.com/osvk/uireplay/pkg/domain"
	"github.com/osvk/uireplay/pkg/ports"
	"github.com/osvk/uireplay/pkg/registry"
)

// State is the orchestrator phase. Completed and Aborted are terminal; an
// Engine is one-shot and refuses to run twice.
type State string

const (
	StateIdle      State = "idle"
	StateParsing   State = "parsing"
	StateInjecting State = "injecting"
	StateExecuting State = "executing"
	StateCompleted State = "completed"
	StateAborted   State = "aborted"
)

// Engine drives one replay run. It exclusively owns the RunSummary and the
// iteration cursor; registry and skip policy are immutable configuration
// resolved by the caller at startup.
//
// Execution is single-threaded and synchronous: one record blocks the engine
// until its handler returns. The driver handle is treated as a single
// exclusively-owned resource for the run's lifetime.
type Engine struct {
	registry *registry.Registry
	skip     *registry.SkipPolicy
	driver   ports.Driver
	hooks    *domain.HookTable
	preSteps []domain.ActionRecord

	prepare  bool
	dryParse bool
	log      *slog.Logger

	state State
}

// Option configures an Engine.
type Option func(*Engine)

// WithHookTable binds before/after callbacks to record sequence numbers.
func WithHookTable(t *domain.HookTable) Option {
	return func(e *Engine) { e.hooks = t }
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithoutPreparation disables pre-step injection; replay begins directly
// with the first log record.
func WithoutPreparation() Option {
	return func(e *Engine) { e.prepare = false }
}

// WithDryParse makes the run stop after parsing: the whole file is validated
// structurally and the driver is never touched.
func WithDryParse() Option {
	return func(e *Engine) { e.dryParse = true }
}

// WithPreSteps overrides the default pre-step sequence.
func WithPreSteps(steps []domain.ActionRecord) Option {
	return func(e *Engine) { e.preSteps = steps }
}

// New creates a one-shot engine. drv may be nil for dry-parse runs.
func New(reg *registry.Registry, skip *registry.SkipPolicy, drv ports.Driver, opts ...Option) *Engine {
	e := &Engine{
		registry: reg,
		skip:     skip,
		driver:   drv,
		preSteps: DefaultPreSteps(),
		prepare:  true,
		log:      logging.NewNop(),
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current orchestrator phase.
func (e *Engine) State() State { return e.state }

// Run replays the log at path. The returned summary is always non-nil on a
// started run; its Err (also returned) is nil exactly when the run
// completed.
func (e *Engine) Run(ctx context.Context, path string) (*domain.RunSummary, error) {
	if e.state != StateIdle {
		return nil, fmt.Errorf("engine already ran (state %s); create a new one per invocation", e.state)
	}

	summary := &domain.RunSummary{Status: domain.StatusCompleted}

	e.state = StateParsing
	records, err := logparse.ReadFile(path)
	if err != nil {
		e.abort(summary, err)
		if mErr, ok := err.(*domain.MalformedRecordError); ok {
			summary.FailedLine = mErr.Line
		}
		return summary, err
	}
	e.log.Info("log parsed", "path", path, "records", len(records))

	if e.dryParse {
		summary.Seen = len(records)
		e.state = StateCompleted
		return summary, nil
	}

	if e.prepare {
		e.state = StateInjecting
		if err := e.inject(ctx); err != nil {
			e.abort(summary, err)
			summary.FailedSeq = domain.SeqInjection
			return summary, err
		}
	}

	e.state = StateExecuting
	if err := e.executeAll(ctx, records, summary); err != nil {
		e.abort(summary, err)
		return summary, err
	}

	e.state = StateCompleted
	e.log.Info("replay completed", "seen", summary.Seen, "executed", summary.Executed, "skipped", summary.Skipped)
	return summary, nil
}

func (e *Engine) abort(summary *domain.RunSummary, err error) {
	e.state = StateAborted
	summary.Status = domain.StatusAborted
	summary.Err = err
	e.log.Error("replay aborted", "error", err)
}

// inject runs the pre-step sequence through the ordinary handler plumbing,
// so a pre-step failure carries the same semantics as a record failure. The
// summary attributes it to the injection sentinel, never to a log seq.
func (e *Engine) inject(ctx context.Context) error {
	for i := range e.preSteps {
		step := &e.preSteps[i]
		e.log.Debug("pre-step", "action", step.Key().String())
		handler, ok := e.registry.Lookup(step.Key())
		if !ok {
			return &domain.InjectionError{
				Step: step.Key().String(),
				Err:  fmt.Errorf("no handler registered"),
			}
		}
		if _, err := handler.Execute(ctx, step, e.driver); err != nil {
			return &domain.InjectionError{Step: step.Key().String(), Err: err}
		}
	}
	return nil
}

// executeAll iterates records strictly in file line order. Seq and timestamp
// never influence ordering; duplicates and gaps are replayed as recorded.
func (e *Engine) executeAll(ctx context.Context, records []domain.ActionRecord, summary *domain.RunSummary) error {
	for i := range records {
		rec := &records[i]
		summary.Seen++

		if e.skip.ShouldSkip(rec) {
			summary.Skipped++
			e.log.Debug("skip", "line", rec.Line, "seq", rec.Seq, "key", rec.Key().String())
			continue
		}

		if err := e.executeOne(ctx, rec); err != nil {
			summary.FailedSeq = rec.Seq
			summary.FailedLine = rec.Line
			return err
		}
		summary.Executed++
	}
	return nil
}

// executeOne runs the hooks and handler of a single executable record.
// Hooks fire only here, never for skipped records.
func (e *Engine) executeOne(ctx context.Context, rec *domain.ActionRecord) error {
	handler, ok := e.registry.Lookup(rec.Key())
	if !ok {
		return &domain.UnsupportedActionError{Seq: rec.Seq, Line: rec.Line, Key: rec.Key()}
	}

	for _, hook := range e.hooks.BeforeHooks(rec.Seq) {
		if err := hook(ctx, rec); err != nil {
			return &domain.HookError{Seq: rec.Seq, Phase: domain.HookBefore, Err: err}
		}
	}

	e.log.Debug("execute", "line", rec.Line, "seq", rec.Seq, "key", rec.Key().String(), "testId", rec.Target.TestID)
	if _, err := handler.Execute(ctx, rec, e.driver); err != nil {
		return &domain.HandlerExecutionError{Seq: rec.Seq, Key: rec.Key(), Err: err}
	}

	for _, hook := range e.hooks.AfterHooks(rec.Seq) {
		if err := hook(ctx, rec); err != nil {
			return &domain.HookError{Seq: rec.Seq, Phase: domain.HookAfter, Err: err}
		}
	}
	return nil
}
