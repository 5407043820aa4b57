package domain

// RunStatus is the terminal status of a replay run.
type RunStatus string

const (
	// StatusCompleted means every record was processed (executed or skipped)
	// without error.
	StatusCompleted RunStatus = "completed"
	// StatusAborted means the run stopped at the first parse, dispatch,
	// handler, hook, or injection failure.
	StatusAborted RunStatus = "aborted"
)

// RunSummary is produced once per invocation. The orchestrator owns it for
// the lifetime of the run and finalizes it at completion or at the abort
// point.
type RunSummary struct {
	// Seen counts every record iterated, including skipped ones.
	Seen int
	// Executed counts records dispatched to a handler that returned
	// successfully.
	Executed int
	// Skipped counts records covered by the skip policy.
	Skipped int

	Status RunStatus

	// FailedSeq identifies the offending record on abort. SeqInjection when
	// a pre-step failed; meaningless when Status is StatusCompleted.
	FailedSeq int
	// FailedLine is the 1-based log line of the failure, 0 when the failure
	// did not originate from a log line.
	FailedLine int
	// Err is the terminal cause on abort, nil on completion.
	Err error
}

// Completed reports whether the run finished without error.
func (s *RunSummary) Completed() bool {
	return s.Status == StatusCompleted
}
