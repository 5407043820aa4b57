package pages

import (
	"context"
	"log/slog"
	"time"

	"github.com/osvk/uireplay/pkg/domain"
	"github.com/osvk/uireplay/pkg/ports"
)

// HomePage is the editor start screen with the document templates.
type HomePage struct {
	drv      ports.Driver
	timeouts Timeouts
	log      *slog.Logger
}

var (
	homeCreateSpreadsheet = domain.XPath("//div[@id='templates']//div[contains(@class,'blank-document-btn')]")
)

// OpenCreationCell creates a fresh spreadsheet, the document context every
// captured session starts from.
func (p *HomePage) OpenCreationCell(ctx context.Context) error {
	p.log.Debug("open creation cell")
	if err := p.drv.WaitVisible(ctx, homeCreateSpreadsheet, p.timeouts.Element); err != nil {
		return err
	}
	return p.drv.Click(ctx, homeCreateSpreadsheet)
}

// EditorPage is the spreadsheet editor chrome around the plugin panel.
type EditorPage struct {
	drv      ports.Driver
	timeouts Timeouts
	log      *slog.Logger
}

var (
	editorPluginButton = domain.XPath("//div[@id='toolbar']//span[@id='slot-btn-plugins']//button")
	editorTipClose     = domain.XPath("//div[contains(@class,'tip-close')]/button")
)

// OpenPluginPanel opens the plugin slider from the editor toolbar.
func (p *EditorPage) OpenPluginPanel(ctx context.Context) error {
	p.log.Debug("open plugin panel")
	if err := p.drv.WaitVisible(ctx, editorPluginButton, p.timeouts.Element); err != nil {
		return err
	}
	return p.drv.Click(ctx, editorPluginButton)
}

// DismissTip closes the first-run tip balloon when it is present. Its absence
// is not an error.
func (p *EditorPage) DismissTip(ctx context.Context) error {
	if err := p.drv.WaitVisible(ctx, editorTipClose, 2*time.Second); err != nil {
		p.log.Debug("no tip dialog to dismiss")
		return nil
	}
	return p.drv.Click(ctx, editorTipClose)
}
