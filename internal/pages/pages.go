// Package pages holds the Page Objects of the driven editor: the locators
// and composite interactions of the screens the replay handlers touch. Pages
// speak only to the driver port, never to a concrete automation backend.
package pages

import (
	"log/slog"
	"time"

	"github.com/osvk/uireplay/pkg/ports"
)

// Set bundles the page objects a replay run needs. Constructed once per run,
// sharing the single driver handle.
type Set struct {
	Home    *HomePage
	Editor  *EditorPage
	Plugin  *PluginPage
	SQLMode *SQLModePage
	Manager *SQLManagerPage
}

// Timeouts carries the page-level waits that differ per operation kind.
type Timeouts struct {
	Element time.Duration
	Preview time.Duration
	Export  time.Duration
	Success time.Duration
}

// DefaultTimeouts mirror the capture environment: previews and exports run
// real queries and can be slow.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Element: 10 * time.Second,
		Preview: 60 * time.Second,
		Export:  60 * time.Second,
		Success: 30 * time.Second,
	}
}

// NewSet builds all page objects over one driver.
func NewSet(drv ports.Driver, t Timeouts, log *slog.Logger) *Set {
	return &Set{
		Home:    &HomePage{drv: drv, timeouts: t, log: log.With("page", "home")},
		Editor:  &EditorPage{drv: drv, timeouts: t, log: log.With("page", "editor")},
		Plugin:  &PluginPage{drv: drv, timeouts: t, log: log.With("page", "plugin")},
		SQLMode: &SQLModePage{drv: drv, timeouts: t, log: log.With("page", "sqlmode")},
		Manager: &SQLManagerPage{drv: drv, timeouts: t, log: log.With("page", "sqlmanager")},
	}
}
