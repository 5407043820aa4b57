package ports

import (
	"context"
	"time"

	"github.com/osvk/uireplay/pkg/domain"
)

// Driver is the handle to the driven application. It is an injected
// dependency: the core never constructs one, treats it as a single
// exclusively-owned resource for the lifetime of a run, and performs only
// synchronous calls on it.
//
// Element-not-found and readiness timeouts are the driver's concern; the core
// sees them as plain errors.
type Driver interface {
	// Click locates the element (searching nested frames) and clicks it via
	// a script click, matching how the capture side records interactions on
	// the plugin's iframes.
	Click(ctx context.Context, loc domain.Locator) error

	// SetValue replaces the value of an input, textarea or select element
	// and fires the input/change events the plugin listens for.
	SetValue(ctx context.Context, loc domain.Locator, value string) error

	// SelectOption selects a <select> option by value or visible text.
	SelectOption(ctx context.Context, loc domain.Locator, option string) error

	// SetEditorValue replaces the content of a CodeMirror editor hosted at
	// loc. Falls back to the editor's backing textarea when the CodeMirror
	// instance is not reachable from the host node.
	SetEditorValue(ctx context.Context, loc domain.Locator, value string) error

	// PressKey dispatches a keyboard key (by capture name, e.g. "Enter") to
	// the focused element.
	PressKey(ctx context.Context, key string) error

	// Text reads the visible text (or value) of the element at loc.
	Text(ctx context.Context, loc domain.Locator) (string, error)

	// WaitVisible blocks until the element at loc is present and displayed,
	// or the timeout elapses.
	WaitVisible(ctx context.Context, loc domain.Locator, timeout time.Duration) error

	// Close releases the session. Safe to call once at run end.
	Close() error
}
