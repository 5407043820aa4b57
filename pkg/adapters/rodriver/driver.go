// Package rodriver implements the driver port over the Chrome DevTools
// protocol using go-rod. The usual mode attaches to an already-running
// editor exposing a remote debugging endpoint; Launch exists for standalone
// development runs.
package rodriver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/osvk/uireplay/internal/logging"
)

// Driver drives one page of the editor. It is not safe for concurrent use;
// the orchestrator owns it exclusively for the run.
type Driver struct {
	browser     *rod.Browser
	page        *rod.Page
	timeout     time.Duration
	log         *slog.Logger
	ownsBrowser bool
}

// Option configures the driver.
type Option func(*Driver)

// WithTimeout sets the default per-element timeout.
func WithTimeout(d time.Duration) Option {
	return func(drv *Driver) { drv.timeout = d }
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(drv *Driver) { drv.log = log }
}

// Attach connects to a running editor via its remote debugging address
// (host:port) and takes over the first open page.
func Attach(ctx context.Context, debuggerAddress string, opts ...Option) (*Driver, error) {
	u, err := launcher.ResolveURL(debuggerAddress)
	if err != nil {
		return nil, fmt.Errorf("resolve debugger %s: %w", debuggerAddress, err)
	}

	browser := rod.New().ControlURL(u).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", u, err)
	}

	pages, err := browser.Pages()
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no open page at %s", debuggerAddress)
	}

	drv := newDriver(browser, pages.First(), false, opts...)
	drv.log.Debug("attached", "address", debuggerAddress)
	return drv, nil
}

// Launch starts a dedicated browser and opens url. Intended for development
// against a web deployment of the editor; Close tears the browser down.
func Launch(ctx context.Context, url string, headless bool, opts ...Option) (*Driver, error) {
	controlURL, err := launcher.New().
		Leakless(true).
		Headless(headless).
		Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", url, err)
	}

	scale := 1.0
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:  1920,
		Height: 1080,
		Scale:  &scale,
		Mobile: false,
	}); err != nil {
		// Not critical for replay.
		fmt.Printf("warning: failed to set viewport: %v\n", err)
	}

	drv := newDriver(browser, page, true, opts...)
	drv.log.Debug("launched", "url", url, "headless", headless)
	return drv, nil
}

func newDriver(browser *rod.Browser, page *rod.Page, owns bool, opts ...Option) *Driver {
	drv := &Driver{
		browser:     browser,
		page:        page,
		timeout:     10 * time.Second,
		log:         logging.NewNop(),
		ownsBrowser: owns,
	}
	for _, opt := range opts {
		opt(drv)
	}
	return drv
}

// Close tears down a launched browser. Attached sessions are left running:
// the editor belongs to the user, not to the replay.
func (d *Driver) Close() error {
	if !d.ownsBrowser || d.browser == nil {
		return nil
	}
	return d.browser.Close()
}
