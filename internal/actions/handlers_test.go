package actions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osvk/uireplay/internal/logging"
	"github.com/osvk/uireplay/internal/pages"
	"github.com/osvk/uireplay/pkg/adapters/memdriver"
	"github.com/osvk/uireplay/pkg/domain"
	"github.com/osvk/uireplay/pkg/registry"
)

func newFixture(t *testing.T) (*registry.Registry, *memdriver.Driver, *pages.Set) {
	t.Helper()
	drv := memdriver.New()
	// The preview loader never renders in the recording driver; failing its
	// wait makes waitGone return immediately.
	drv.FailOn = "local-loading-overlay"
	pg := pages.NewSet(drv, pages.Timeouts{
		Element: time.Second,
		Preview: time.Second,
		Export:  time.Second,
		Success: time.Second,
	}, logging.NewNop())
	return NewRegistry(pg, drv, logging.NewNop()), drv, pg
}

func execute(t *testing.T, reg *registry.Registry, rec *domain.ActionRecord) error {
	t.Helper()
	h, ok := reg.Lookup(rec.Key())
	require.True(t, ok, "no handler for %s", rec.Key())
	_, err := h.Execute(context.Background(), rec, nil)
	return err
}

func clickRec(testID string, payload map[string]any) *domain.ActionRecord {
	return &domain.ActionRecord{
		Event:   "click",
		Action:  "activate",
		Target:  domain.Target{TestID: testID},
		Payload: payload,
	}
}

func TestClickActivate(t *testing.T) {
	t.Run("exact route drives the mode button", func(t *testing.T) {
		reg, drv, _ := newFixture(t)
		require.NoError(t, execute(t, reg, clickRec("main-sql-mode", nil)))

		require.Len(t, drv.Calls, 1)
		assert.Equal(t, "click", drv.Calls[0].Method)
		assert.Contains(t, drv.Calls[0].Locator.Value, "button[@id='sql-mode']")
	})

	t.Run("unknown testId falls back to a generic click", func(t *testing.T) {
		reg, drv, _ := newFixture(t)
		require.NoError(t, execute(t, reg, clickRec("sidebar-help-button", nil)))

		require.Len(t, drv.Calls, 1)
		assert.Equal(t, domain.ByCSS, drv.Calls[0].Locator.By)
		assert.Equal(t, "[data-testid='sidebar-help-button']", drv.Calls[0].Locator.Value)
	})

	t.Run("record without any target fails", func(t *testing.T) {
		reg, _, _ := newFixture(t)
		err := execute(t, reg, &domain.ActionRecord{Event: "click", Action: "activate", Line: 9})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 9")
	})

	t.Run("connection tree click selects by cleaned title", func(t *testing.T) {
		reg, drv, pg := newFixture(t)
		rec := clickRec("cm-tree-connection-3", map[string]any{"text": "\u200b\u25b6 Postgres Prod "})
		require.NoError(t, execute(t, reg, rec))

		require.Len(t, drv.Calls, 2)
		assert.Equal(t, "wait-visible", drv.Calls[0].Method)
		assert.Contains(t, drv.Calls[0].Locator.Value, "normalize-space()='Postgres Prod'")
		assert.Equal(t, "click", drv.Calls[1].Method)

		_, conn := pg.Manager.ActiveCard()
		assert.Equal(t, "Postgres Prod", conn)
	})

	t.Run("preview button targets the named card", func(t *testing.T) {
		reg, drv, _ := newFixture(t)
		rec := clickRec("sql-manager-query-preview-report1", map[string]any{"queryName": "report1"})
		require.NoError(t, execute(t, reg, rec))

		require.NotEmpty(t, drv.Calls)
		assert.Equal(t, "click", drv.Calls[0].Method)
		assert.Contains(t, drv.Calls[0].Locator.Value, "[@data-query-name='report1']")
		assert.Contains(t, drv.Calls[0].Locator.Value, "btn-preview")
	})

	t.Run("delete clears the tracked card", func(t *testing.T) {
		reg, _, pg := newFixture(t)
		pg.Manager.SetActiveCard("report1", "Postgres Prod")

		require.NoError(t, execute(t, reg, clickRec("sql-manager-query-delete-report1", nil)))
		query, conn := pg.Manager.ActiveCard()
		assert.Empty(t, query)
		assert.Empty(t, conn)
	})

	t.Run("export destination option item picks by suffix", func(t *testing.T) {
		reg, drv, _ := newFixture(t)
		rec := clickRec("custom-select-item-sql_manager_export_destination-file", nil)
		require.NoError(t, execute(t, reg, rec))

		require.Len(t, drv.Calls, 1)
		assert.Equal(t, "select-option", drv.Calls[0].Method)
		assert.Equal(t, "file", drv.Calls[0].Value)
	})
}

func TestSetValue(t *testing.T) {
	t.Run("query name input goes through the dialog page", func(t *testing.T) {
		reg, drv, pg := newFixture(t)
		rec := &domain.ActionRecord{
			Event:   "input",
			Action:  "set-value",
			Target:  domain.Target{TestID: "sql-manager-add-query-name"},
			Payload: map[string]any{"value": "report1"},
		}
		require.NoError(t, execute(t, reg, rec))

		require.Len(t, drv.Calls, 1)
		assert.Equal(t, "set-value", drv.Calls[0].Method)
		assert.Equal(t, "report1", drv.Calls[0].Value)
		assert.Contains(t, drv.Calls[0].Locator.Value, "dialog-menu-name-sqlreq")

		query, _ := pg.Manager.ActiveCard()
		assert.Equal(t, "report1", query)
	})

	t.Run("export destination change selects the option", func(t *testing.T) {
		reg, drv, _ := newFixture(t)
		rec := &domain.ActionRecord{
			Event:   "change",
			Action:  "set-value",
			Target:  domain.Target{ElementID: "export-destination-select"},
			Payload: map[string]any{"value": "document"},
		}
		require.NoError(t, execute(t, reg, rec))

		require.Len(t, drv.Calls, 1)
		assert.Equal(t, "select-option", drv.Calls[0].Method)
		assert.Equal(t, "document", drv.Calls[0].Value)
	})

	t.Run("other inputs write the recorded value on the recorded locator", func(t *testing.T) {
		reg, drv, _ := newFixture(t)
		rec := &domain.ActionRecord{
			Event:   "input",
			Action:  "set-value",
			Target:  domain.Target{Selector: "#search-box"},
			Payload: map[string]any{"value": "orders"},
		}
		require.NoError(t, execute(t, reg, rec))

		require.Len(t, drv.Calls, 1)
		assert.Equal(t, "set-value", drv.Calls[0].Method)
		assert.Equal(t, "#search-box", drv.Calls[0].Locator.Value)
		assert.Equal(t, "orders", drv.Calls[0].Value)
	})
}

func TestSetEditorValue(t *testing.T) {
	rec := func(payload map[string]any) *domain.ActionRecord {
		return &domain.ActionRecord{
			Event:   "codemirror-change",
			Action:  "set-value",
			Target:  domain.Target{TestID: "sql-codemirror-1"},
			Payload: payload,
		}
	}

	t.Run("writes into the active card editor when one is tracked", func(t *testing.T) {
		reg, drv, pg := newFixture(t)
		pg.Manager.SetActiveCard("report1", "")

		require.NoError(t, execute(t, reg, rec(map[string]any{"value": "select 1"})))
		require.Len(t, drv.Calls, 1)
		assert.Equal(t, "set-editor-value", drv.Calls[0].Method)
		assert.Contains(t, drv.Calls[0].Locator.Value, "[@data-query-name='report1']")
		assert.Equal(t, "select 1", drv.Calls[0].Value)
	})

	t.Run("falls back to the recorded locator without a card", func(t *testing.T) {
		reg, drv, _ := newFixture(t)
		require.NoError(t, execute(t, reg, rec(map[string]any{"value": "select 2"})))

		require.Len(t, drv.Calls, 1)
		assert.Equal(t, "[data-testid='sql-codemirror-1']", drv.Calls[0].Locator.Value)
	})

	t.Run("missing value is an error", func(t *testing.T) {
		reg, _, _ := newFixture(t)
		err := execute(t, reg, rec(map[string]any{"text": "select 3"}))
		require.Error(t, err)
	})
}

func TestPrepareHandlers(t *testing.T) {
	t.Run("open-cell waits for and clicks the blank template", func(t *testing.T) {
		reg, drv, _ := newFixture(t)
		rec := &domain.ActionRecord{Seq: domain.SeqInjection, Event: "replay", Action: "open-cell"}
		require.NoError(t, execute(t, reg, rec))

		assert.Equal(t, []string{"wait-visible", "click"}, drv.Methods())
		assert.Contains(t, drv.Calls[1].Locator.Value, "blank-document-btn")
	})

	t.Run("dismiss-tip tolerates an absent tip", func(t *testing.T) {
		reg, drv, _ := newFixture(t)
		drv.FailOn = "tip-close"
		rec := &domain.ActionRecord{Seq: domain.SeqInjection, Event: "replay", Action: "dismiss-tip"}
		require.NoError(t, execute(t, reg, rec))
		assert.Equal(t, []string{"wait-visible"}, drv.Methods())
	})
}

func TestParamHelpers(t *testing.T) {
	t.Run("decodeParams is weakly typed", func(t *testing.T) {
		p, err := decodeParams(&domain.ActionRecord{Payload: map[string]any{
			"value":     float64(42),
			"queryName": "q1",
			"ignored":   map[string]any{"x": 1},
		}})
		require.NoError(t, err)
		assert.Equal(t, "42", p.Value)
		assert.Equal(t, "q1", p.QueryName)
	})

	t.Run("cleanConnectionTitle strips tree decorations", func(t *testing.T) {
		assert.Equal(t, "Postgres Prod", cleanConnectionTitle("\u200b\u25b6 Postgres Prod "))
		assert.Equal(t, "MySQL", cleanConnectionTitle("MySQL"))
		assert.Equal(t, "", cleanConnectionTitle(" ▸ "))
	})

	t.Run("exportDestinationOption precedence", func(t *testing.T) {
		assert.Equal(t, "New file", exportDestinationOption(stepParams{Text: "New file", Value: "file"}, "x"))
		assert.Equal(t, "file", exportDestinationOption(stepParams{Value: "file"}, "x"))
		assert.Equal(t, "document", exportDestinationOption(stepParams{}, "custom-select-item-sql_manager_export_destination-document"))
		assert.Equal(t, "", exportDestinationOption(stepParams{}, "something-else"))
	})
}
