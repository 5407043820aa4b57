package domain

import "fmt"

// SeqInjection is the sentinel Seq reported for failures that happen during
// pre-step injection, before any logged record executes. It can never collide
// with a log-sourced Seq because parsed records require Seq >= 0.
const SeqInjection = -1

// MalformedRecordError reports a structural or schema violation in a log
// line. Parsing is fail-fast: the first malformed line aborts the run before
// anything executes.
type MalformedRecordError struct {
	Line  int // 1-based line number in the log file
	Cause string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at line %d: %s", e.Line, e.Cause)
}

// UnsupportedActionError reports a record whose (event, action) pair has no
// registered handler and is not covered by the skip policy.
type UnsupportedActionError struct {
	Seq  int
	Line int
	Key  ActionKey
}

func (e *UnsupportedActionError) Error() string {
	return fmt.Sprintf("no handler for %s (seq=%d, line=%d)", e.Key, e.Seq, e.Line)
}

// HandlerExecutionError reports a failed handler: element not found, a
// missing or invalid payload key the handler requires, or a driver-level
// failure.
type HandlerExecutionError struct {
	Seq int
	Key ActionKey
	Err error
}

func (e *HandlerExecutionError) Error() string {
	return fmt.Sprintf("handler %s failed (seq=%d): %v", e.Key, e.Seq, e.Err)
}

func (e *HandlerExecutionError) Unwrap() error { return e.Err }

// HookError reports a failed before/after hook. It carries the same severity
// as a handler failure and is attributed to the hooked record's Seq.
type HookError struct {
	Seq   int
	Phase HookPhase
	Err   error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("%s hook failed (seq=%d): %v", e.Phase, e.Seq, e.Err)
}

func (e *HookError) Unwrap() error { return e.Err }

// InjectionError reports a failed pre-step. The run aborts before any logged
// record executes; summaries carry SeqInjection instead of a log Seq.
type InjectionError struct {
	Step string
	Err  error
}

func (e *InjectionError) Error() string {
	return fmt.Sprintf("pre-step %q failed: %v", e.Step, e.Err)
}

func (e *InjectionError) Unwrap() error { return e.Err }
