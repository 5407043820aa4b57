// Package memdriver is an in-memory implementation of the driver port. It
// records every call in order and can be scripted to fail on selected
// operations, which is all the orchestrator and handler tests need to verify
// dispatch order, skip behavior, and fail-fast semantics.
package memdriver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osvk/uireplay/pkg/domain"
)

// Call is one recorded driver interaction.
type Call struct {
	Method  string
	Locator domain.Locator
	Value   string
}

func (c Call) String() string {
	parts := []string{c.Method}
	if c.Locator.Value != "" {
		parts = append(parts, c.Locator.String())
	}
	if c.Value != "" {
		parts = append(parts, c.Value)
	}
	return strings.Join(parts, " ")
}

// Driver records calls and optionally fails them.
type Driver struct {
	Calls []Call

	// FailOn makes any call whose String() contains the given substring
	// return ErrScripted. Empty means never fail.
	FailOn string

	// Texts maps locator strings to the text Text returns.
	Texts map[string]string

	closed bool
}

// ErrScripted is returned by calls matched by FailOn.
var ErrScripted = fmt.Errorf("scripted driver failure")

// New returns an empty recording driver.
func New() *Driver {
	return &Driver{Texts: make(map[string]string)}
}

func (d *Driver) record(method string, loc domain.Locator, value string) error {
	call := Call{Method: method, Locator: loc, Value: value}
	d.Calls = append(d.Calls, call)
	if d.FailOn != "" && strings.Contains(call.String(), d.FailOn) {
		return fmt.Errorf("%s: %w", call, ErrScripted)
	}
	return nil
}

func (d *Driver) Click(_ context.Context, loc domain.Locator) error {
	return d.record("click", loc, "")
}

func (d *Driver) SetValue(_ context.Context, loc domain.Locator, value string) error {
	return d.record("set-value", loc, value)
}

func (d *Driver) SelectOption(_ context.Context, loc domain.Locator, option string) error {
	return d.record("select-option", loc, option)
}

func (d *Driver) SetEditorValue(_ context.Context, loc domain.Locator, value string) error {
	return d.record("set-editor-value", loc, value)
}

func (d *Driver) PressKey(_ context.Context, key string) error {
	return d.record("press-key", domain.Locator{}, key)
}

func (d *Driver) Text(_ context.Context, loc domain.Locator) (string, error) {
	if err := d.record("text", loc, ""); err != nil {
		return "", err
	}
	return d.Texts[loc.String()], nil
}

func (d *Driver) WaitVisible(_ context.Context, loc domain.Locator, _ time.Duration) error {
	return d.record("wait-visible", loc, "")
}

func (d *Driver) Close() error {
	d.closed = true
	return nil
}

// Closed reports whether Close was called.
func (d *Driver) Closed() bool { return d.closed }

// Methods returns the recorded method names in order.
func (d *Driver) Methods() []string {
	out := make([]string, len(d.Calls))
	for i, c := range d.Calls {
		out[i] = c.Method
	}
	return out
}
