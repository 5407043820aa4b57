package domain

import "context"

// HookPhase says when a hook fires relative to its record's handler.
type HookPhase string

const (
	HookBefore HookPhase = "before"
	HookAfter  HookPhase = "after"
)

// HookFunc is a callback bound to a record's Seq, used for test-specific
// assertions or waits. A non-nil error aborts the run exactly like a handler
// failure.
type HookFunc func(ctx context.Context, rec *ActionRecord) error

// HookTable maps record Seq values to ordered before/after callbacks.
// Hooks fire only around records that actually execute: never for skipped
// records, and not at all when the Seq is absent from the log.
//
// A HookTable is built up front and must not be mutated once a run starts.
type HookTable struct {
	before map[int][]HookFunc
	after  map[int][]HookFunc

	everyBefore []HookFunc
	everyAfter  []HookFunc
}

// NewHookTable returns an empty hook table.
func NewHookTable() *HookTable {
	return &HookTable{
		before: make(map[int][]HookFunc),
		after:  make(map[int][]HookFunc),
	}
}

// OnBefore appends fn to the before-hooks of seq.
func (t *HookTable) OnBefore(seq int, fn HookFunc) *HookTable {
	t.before[seq] = append(t.before[seq], fn)
	return t
}

// OnAfter appends fn to the after-hooks of seq. After-hooks run only after a
// successful handler completion.
func (t *HookTable) OnAfter(seq int, fn HookFunc) *HookTable {
	t.after[seq] = append(t.after[seq], fn)
	return t
}

// OnEveryBefore appends fn to the before-hooks of every executed record.
// Every-record hooks fire ahead of seq-bound ones.
func (t *HookTable) OnEveryBefore(fn HookFunc) *HookTable {
	t.everyBefore = append(t.everyBefore, fn)
	return t
}

// OnEveryAfter appends fn to the after-hooks of every executed record.
func (t *HookTable) OnEveryAfter(fn HookFunc) *HookTable {
	t.everyAfter = append(t.everyAfter, fn)
	return t
}

// BeforeHooks returns the before-hooks that apply to seq: every-record hooks
// first, then seq-bound ones in registration order.
func (t *HookTable) BeforeHooks(seq int) []HookFunc {
	if t == nil {
		return nil
	}
	return joinHooks(t.everyBefore, t.before[seq])
}

// AfterHooks returns the after-hooks that apply to seq.
func (t *HookTable) AfterHooks(seq int) []HookFunc {
	if t == nil {
		return nil
	}
	return joinHooks(t.everyAfter, t.after[seq])
}

func joinHooks(every, bound []HookFunc) []HookFunc {
	if len(every) == 0 {
		return bound
	}
	if len(bound) == 0 {
		return every
	}
	out := make([]HookFunc, 0, len(every)+len(bound))
	out = append(out, every...)
	return append(out, bound...)
}

// Empty reports whether no hooks are registered.
func (t *HookTable) Empty() bool {
	if t == nil {
		return true
	}
	return len(t.before) == 0 && len(t.after) == 0 &&
		len(t.everyBefore) == 0 && len(t.everyAfter) == 0
}
