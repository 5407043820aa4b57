package pages

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/osvk/uireplay/pkg/domain"
	"github.com/osvk/uireplay/pkg/ports"
)

// SQLManagerPage is the SQL manager screen: the connection tree on the left
// and the query cards on the right.
//
// The page tracks the active query card the same way a user does: the card
// last touched by name. Card-scoped locators are built from that identity.
type SQLManagerPage struct {
	drv      ports.Driver
	timeouts Timeouts
	log      *slog.Logger

	activeQuery      string
	activeConnection string
}

var (
	managerAddQuery        = domain.XPath("//body/div[@id='text-res']/div/button[@id='btnAddQuery']")
	managerQueryNameInput  = domain.XPath("//input[@id='dialog-menu-name-sqlreq' and @class='dialog-input']")
	managerAddConfirm      = domain.XPath("//button[@id='btn-add-request' and @class='btn btn-primary']")
	managerAddCancel       = domain.XPath("//button[@id='btn-cancel-request' and @class='btn btn-secondary']")
	managerMinimize        = domain.XPath("//body/div[@id='text-res']/div/div/button[@id='btnMinimizeSqlManager']")
	managerToggleTree      = domain.XPath("//body/div[@id='text-res']/div/button[@id='btnHideTree']")
	managerPreviewLoader   = domain.XPath("//div[@class='query-preview-container']/div[@class='local-loading-overlay']")
	managerExportDest      = domain.XPath("//div[@class='dialog-content']//select[@id='export-destination-select']")
	managerExportConfirm   = domain.XPath("//div[@class='dialog-content']/div/button[@id='btn-export-confirm']")
	managerExportCancel    = domain.XPath("//div[@class='dialog-content']/div/button[@id='btn-export-cancel']")
	managerSuccessOK       = domain.XPath("//div[@class='message-dialog success-dialog']//div[@class='message-dialog-footer']/button[@class='btn btn-primary']")
	managerSuccessTitle    = domain.XPath("//div[@class='message-dialog success-dialog']//h3[@class='message-dialog-title']")
	managerSuccessText     = domain.XPath("//div[@class='message-dialog success-dialog']//div[@class='message-text']")
	managerQueryCardBase   = "//div[@id='right-column']/div[@id='queries_container']/div[contains(@class,'query-card')]"
	managerConnectionItems = "//div[@id='tree-frame']//li[contains(@class,'connection-item')]"
)

// SetActiveCard remembers the card identity subsequent card-scoped actions
// apply to. Empty strings clear the corresponding part of the identity.
func (p *SQLManagerPage) SetActiveCard(queryName, connectionName string) {
	p.activeQuery = strings.TrimSpace(queryName)
	p.activeConnection = strings.TrimSpace(connectionName)
}

// ClearActiveCard forgets the tracked card (after a delete).
func (p *SQLManagerPage) ClearActiveCard() {
	p.activeQuery, p.activeConnection = "", ""
}

// ActiveCard returns the tracked card identity.
func (p *SQLManagerPage) ActiveCard() (queryName, connectionName string) {
	return p.activeQuery, p.activeConnection
}

// cardLocator scopes to the active card when one is tracked, otherwise to
// the first expanded card on screen.
func (p *SQLManagerPage) cardLocator() domain.Locator {
	expr := managerQueryCardBase
	switch {
	case p.activeQuery != "":
		expr += fmt.Sprintf("[@data-query-name='%s']", p.activeQuery)
		if p.activeConnection != "" {
			expr += fmt.Sprintf("[@data-connection-name='%s']", p.activeConnection)
		}
	default:
		expr += "[not(contains(@class,'collapsed'))]"
	}
	return domain.XPath(expr)
}

func (p *SQLManagerPage) cardChild(childExpr string) domain.Locator {
	return domain.XPath(p.cardLocator().Value + childExpr)
}

// OpenAddQuery clicks the add-query button. Requires a selected connection,
// which is what unlocks the button.
func (p *SQLManagerPage) OpenAddQuery(ctx context.Context) error {
	p.log.Debug("open add query dialog")
	if err := p.drv.WaitVisible(ctx, managerAddQuery, p.timeouts.Element); err != nil {
		return err
	}
	return p.drv.Click(ctx, managerAddQuery)
}

// EnterQueryName fills the name input of the add-query dialog and remembers
// the name as the active card identity.
func (p *SQLManagerPage) EnterQueryName(ctx context.Context, name string) error {
	p.log.Debug("enter query name", "name", name)
	if err := p.drv.SetValue(ctx, managerQueryNameInput, name); err != nil {
		return err
	}
	p.activeQuery = strings.TrimSpace(name)
	return nil
}

// ConfirmAddQuery confirms the add-query dialog.
func (p *SQLManagerPage) ConfirmAddQuery(ctx context.Context) error {
	p.log.Debug("confirm add query")
	return p.drv.Click(ctx, managerAddConfirm)
}

// CancelAddQuery dismisses the add-query dialog.
func (p *SQLManagerPage) CancelAddQuery(ctx context.Context) error {
	p.log.Debug("cancel add query")
	return p.drv.Click(ctx, managerAddCancel)
}

// SelectConnection clicks the connection with the given title in the tree,
// unlocking query creation for it.
func (p *SQLManagerPage) SelectConnection(ctx context.Context, title string) error {
	p.log.Debug("select connection", "title", title)
	loc := domain.XPath(fmt.Sprintf(
		"%s[.//span[contains(@class,'connection-title')][normalize-space()='%s']]",
		managerConnectionItems, title,
	))
	if err := p.drv.WaitVisible(ctx, loc, p.timeouts.Element); err != nil {
		return fmt.Errorf("connection %q not found: %w", title, err)
	}
	if err := p.drv.Click(ctx, loc); err != nil {
		return err
	}
	p.activeConnection = title
	return nil
}

// SetQueryText replaces the SQL text of the active card's CodeMirror editor.
func (p *SQLManagerPage) SetQueryText(ctx context.Context, text string) error {
	p.log.Debug("set query text", "bytes", len(text))
	editor := p.cardChild("//div[@class='query-card-body']/div[@class='query-editor-container']")
	return p.drv.SetEditorValue(ctx, editor, text)
}

// ClickPreview runs the preview of the active card and waits for the loader
// to clear.
func (p *SQLManagerPage) ClickPreview(ctx context.Context) error {
	p.log.Debug("click preview")
	btn := p.cardChild("//div[@class='query-actions-right']/button[contains(@class,'btn-preview')]")
	if err := p.drv.Click(ctx, btn); err != nil {
		return err
	}
	return waitGone(ctx, p.drv, managerPreviewLoader, p.timeouts.Preview)
}

// ClickExport opens the export dialog from the active card's preview footer.
func (p *SQLManagerPage) ClickExport(ctx context.Context) error {
	p.log.Debug("click export")
	btn := p.cardChild("//div[@class='query-preview-footer']/button[@class='query-preview-btn btn-export']")
	return p.drv.Click(ctx, btn)
}

// SelectExportDestination picks the export destination option by its visible
// text (e.g. current document vs new file).
func (p *SQLManagerPage) SelectExportDestination(ctx context.Context, visibleText string) error {
	p.log.Debug("select export destination", "option", visibleText)
	return p.drv.SelectOption(ctx, managerExportDest, visibleText)
}

// ConfirmExport confirms the export dialog and waits out the preview loader
// round-trip.
func (p *SQLManagerPage) ConfirmExport(ctx context.Context) error {
	p.log.Debug("confirm export")
	if err := p.drv.Click(ctx, managerExportConfirm); err != nil {
		return err
	}
	return waitGone(ctx, p.drv, managerPreviewLoader, p.timeouts.Export)
}

// CancelExport dismisses the export dialog.
func (p *SQLManagerPage) CancelExport(ctx context.Context) error {
	p.log.Debug("cancel export")
	return p.drv.Click(ctx, managerExportCancel)
}

// ClickDelete deletes the active card and clears the tracked identity.
func (p *SQLManagerPage) ClickDelete(ctx context.Context) error {
	p.log.Debug("click delete")
	btn := p.cardChild("//div[@class='query-actions-right']/button[contains(@class,'btn-delete')]")
	if err := p.drv.Click(ctx, btn); err != nil {
		return err
	}
	p.ClearActiveCard()
	return nil
}

// ClickSuccessOK acknowledges the success dialog.
func (p *SQLManagerPage) ClickSuccessOK(ctx context.Context) error {
	p.log.Debug("click success ok")
	if err := p.drv.WaitVisible(ctx, managerSuccessOK, p.timeouts.Success); err != nil {
		return err
	}
	return p.drv.Click(ctx, managerSuccessOK)
}

// ReadSuccessMessage returns the title and text of the success dialog, for
// assertion hooks.
func (p *SQLManagerPage) ReadSuccessMessage(ctx context.Context) (title, text string, err error) {
	if title, err = p.drv.Text(ctx, managerSuccessTitle); err != nil {
		return "", "", err
	}
	if text, err = p.drv.Text(ctx, managerSuccessText); err != nil {
		return "", "", err
	}
	return strings.TrimSpace(title), strings.TrimSpace(text), nil
}

// Minimize collapses the SQL manager window.
func (p *SQLManagerPage) Minimize(ctx context.Context) error {
	p.log.Debug("minimize")
	return p.drv.Click(ctx, managerMinimize)
}

// ToggleLeftPanel hides or shows the connection tree panel.
func (p *SQLManagerPage) ToggleLeftPanel(ctx context.Context) error {
	p.log.Debug("toggle left panel")
	return p.drv.Click(ctx, managerToggleTree)
}

// waitGone polls until loc is no longer visible or timeout elapses.
func waitGone(ctx context.Context, drv ports.Driver, loc domain.Locator, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if err := drv.WaitVisible(ctx, loc, 500*time.Millisecond); err != nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("element %s still visible after %s", loc, timeout)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(250 * time.Millisecond):
		}
	}
}
