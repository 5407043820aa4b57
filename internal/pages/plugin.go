package pages

import (
	"context"
	"log/slog"

	"github.com/osvk/uireplay/pkg/domain"
	"github.com/osvk/uireplay/pkg/ports"
)

// PluginPage is the plugin home screen with the mode buttons.
type PluginPage struct {
	drv      ports.Driver
	timeouts Timeouts
	log      *slog.Logger
}

var (
	pluginSQLMode           = domain.XPath("//div[@class='mode-buttons']/button[@id='sql-mode']")
	pluginOLAPMode          = domain.XPath("//div[@class='mode-buttons']/button[@id='olap-mode']")
	pluginFileMode          = domain.XPath("//div[@class='mode-buttons']/button[@id='file-mode']")
	pluginSmartDocs         = domain.XPath("//div[@class='mode-buttons']/button[@id='smartdocs-btn']")
	pluginConnectionManager = domain.XPath("//div[@class='mode-buttons']/button[@id='connection-manager-btn']")
	pluginSettings          = domain.XPath("//div[@class='mode-buttons']/button[@id='settings-btn']")
	pluginAbout             = domain.XPath("//div[@class='mode-buttons']/button[@id='about-page-btn']")
	pluginClose             = domain.XPath("//div[@id='panel-plugins-slider-query']//div[@class='plugin-close close']/button")
)

func (p *PluginPage) click(ctx context.Context, name string, loc domain.Locator) error {
	p.log.Debug("click", "button", name)
	return p.drv.Click(ctx, loc)
}

// OpenSQLMode opens the structured/relational data mode (SQL, CSV, TXT).
func (p *PluginPage) OpenSQLMode(ctx context.Context) error {
	return p.click(ctx, "sql-mode", pluginSQLMode)
}

// OpenOLAPMode opens the analytical databases mode.
func (p *PluginPage) OpenOLAPMode(ctx context.Context) error {
	return p.click(ctx, "olap-mode", pluginOLAPMode)
}

// OpenFileMode opens the unstructured documents mode (PDF, Word).
func (p *PluginPage) OpenFileMode(ctx context.Context) error {
	return p.click(ctx, "file-mode", pluginFileMode)
}

// OpenSmartDocs opens the documentation screen.
func (p *PluginPage) OpenSmartDocs(ctx context.Context) error {
	return p.click(ctx, "smartdocs", pluginSmartDocs)
}

// OpenConnectionManager opens the connection manager screen.
func (p *PluginPage) OpenConnectionManager(ctx context.Context) error {
	return p.click(ctx, "connection-manager", pluginConnectionManager)
}

// OpenSettings opens the settings screen.
func (p *PluginPage) OpenSettings(ctx context.Context) error {
	return p.click(ctx, "settings", pluginSettings)
}

// OpenAbout opens the about screen.
func (p *PluginPage) OpenAbout(ctx context.Context) error {
	return p.click(ctx, "about", pluginAbout)
}

// ClosePlugin closes the plugin slider.
func (p *PluginPage) ClosePlugin(ctx context.Context) error {
	return p.click(ctx, "close", pluginClose)
}

// SQLModePage is the SQL mode menu on the same screen (body_plugin > base_menu).
type SQLModePage struct {
	drv      ports.Driver
	timeouts Timeouts
	log      *slog.Logger
}

var (
	sqlModeManager        = domain.XPath("//div[@id='body_plugin']/div[@id='base_menu']/button[@id='make_sql']")
	sqlModeReportManager  = domain.XPath("//div[@id='body_plugin']/div[@id='base_menu']/button[@id='report_manager']")
	sqlModeQueryHistory   = domain.XPath("//div[@id='body_plugin']/div[@id='base_menu']/button[@id='history_query']")
	sqlModeLog            = domain.XPath("//div[@id='body_plugin']/div[@id='base_menu']/button[@id='show_log']")
	sqlConnectionList     = domain.XPath("//div[@id='sql_div']/div[@id='left-column']/div[@id='tree-frame']/ul")
	sqlConnectionsPending = domain.XPath("//div[@id='tree-frame']//li[contains(@class,'connection-item') and not(contains(@class,'connection-success')) and not(contains(@class,'connection-error'))]")
)

// OpenSQLManager opens the SQL manager and waits until every connection in
// the tree has finished probing (success or error class), matching the
// capture-side readiness gate.
func (p *SQLModePage) OpenSQLManager(ctx context.Context) error {
	p.log.Debug("open sql manager")
	if err := p.drv.Click(ctx, sqlModeManager); err != nil {
		return err
	}
	if err := p.drv.WaitVisible(ctx, sqlConnectionList, p.timeouts.Preview); err != nil {
		return err
	}
	return waitGone(ctx, p.drv, sqlConnectionsPending, p.timeouts.Preview)
}

// OpenReportManager opens the report manager screen.
func (p *SQLModePage) OpenReportManager(ctx context.Context) error {
	p.log.Debug("open report manager")
	return p.drv.Click(ctx, sqlModeReportManager)
}

// OpenQueryHistory opens the query history screen.
func (p *SQLModePage) OpenQueryHistory(ctx context.Context) error {
	p.log.Debug("open query history")
	return p.drv.Click(ctx, sqlModeQueryHistory)
}

// OpenLog opens the plugin log screen.
func (p *SQLModePage) OpenLog(ctx context.Context) error {
	p.log.Debug("open log")
	return p.drv.Click(ctx, sqlModeLog)
}
