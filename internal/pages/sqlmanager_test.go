package pages

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osvk/uireplay/internal/logging"
	"github.com/osvk/uireplay/pkg/adapters/memdriver"
)

func newManager(drv *memdriver.Driver) *Set {
	return NewSet(drv, Timeouts{
		Element: time.Second,
		Preview: time.Second,
		Export:  time.Second,
		Success: time.Second,
	}, logging.NewNop())
}

func TestCardLocator(t *testing.T) {
	ctx := context.Background()

	t.Run("untracked card falls back to the expanded one", func(t *testing.T) {
		drv := memdriver.New()
		pg := newManager(drv)

		require.NoError(t, pg.Manager.ClickExport(ctx))
		require.Len(t, drv.Calls, 1)
		assert.Contains(t, drv.Calls[0].Locator.Value, "not(contains(@class,'collapsed'))")
	})

	t.Run("tracked card scopes by name attributes", func(t *testing.T) {
		drv := memdriver.New()
		pg := newManager(drv)
		pg.Manager.SetActiveCard("report1", "Postgres Prod")

		require.NoError(t, pg.Manager.ClickExport(ctx))
		require.Len(t, drv.Calls, 1)
		assert.Contains(t, drv.Calls[0].Locator.Value, "[@data-query-name='report1']")
		assert.Contains(t, drv.Calls[0].Locator.Value, "[@data-connection-name='Postgres Prod']")
	})

	t.Run("entering a query name updates the tracked card", func(t *testing.T) {
		drv := memdriver.New()
		pg := newManager(drv)

		require.NoError(t, pg.Manager.EnterQueryName(ctx, "  report2  "))
		query, _ := pg.Manager.ActiveCard()
		assert.Equal(t, "report2", query)
	})
}

func TestOpenSQLManager(t *testing.T) {
	drv := memdriver.New()
	// The pending-connection probe resolves instantly in the recording
	// driver; failing its wait stands in for "all connections settled".
	drv.FailOn = "connection-success"
	pg := newManager(drv)

	require.NoError(t, pg.SQLMode.OpenSQLManager(context.Background()))
	assert.Equal(t, []string{"click", "wait-visible", "wait-visible"}, drv.Methods())
	assert.Contains(t, drv.Calls[0].Locator.Value, "make_sql")
}

func TestReadSuccessMessage(t *testing.T) {
	drv := memdriver.New()
	pg := newManager(drv)
	drv.Texts[managerSuccessTitle.String()] = " Export complete "
	drv.Texts[managerSuccessText.String()] = "1200 rows written"

	title, text, err := pg.Manager.ReadSuccessMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Export complete", title)
	assert.Equal(t, "1200 rows written", text)
}
