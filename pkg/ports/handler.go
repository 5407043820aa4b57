package ports

import (
	"context"

	"github.com/osvk/uireplay/pkg/domain"
)

// Handler executes one ActionRecord against the live session. Handlers are
// polymorphic over this single capability; adding a new action kind is a new
// registration, never a new branch in the orchestrator.
//
// Handlers interpret the record's target and payload themselves and report
// missing or invalid keys they require as errors (the orchestrator wraps them
// into HandlerExecutionError).
type Handler interface {
	Execute(ctx context.Context, rec *domain.ActionRecord, drv Driver) (domain.HandlerResult, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, rec *domain.ActionRecord, drv Driver) (domain.HandlerResult, error)

func (f HandlerFunc) Execute(ctx context.Context, rec *domain.ActionRecord, drv Driver) (domain.HandlerResult, error) {
	return f(ctx, rec, drv)
}
