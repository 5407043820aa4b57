// Package actions wires the built-in action handlers: the immutable dispatch
// table from (event, action) pairs to page interactions against the SQL
// plugin. Adding a new action kind is a new registration here; the
// orchestrator never grows per-kind branches.
package actions

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osvk/uireplay/internal/pages"
	"github.com/osvk/uireplay/pkg/domain"
	"github.com/osvk/uireplay/pkg/ports"
	"github.com/osvk/uireplay/pkg/registry"
)

// handlers carries the shared state of the built-in handler set: the page
// objects and the click route tables.
type handlers struct {
	pages  *pages.Set
	routes *clickRoutes
	drv    ports.Driver
	log    *slog.Logger
}

// NewRegistry builds the full dispatch table over one page set. The returned
// registry is ready to be passed to the orchestrator and must not be mutated
// afterwards.
func NewRegistry(pg *pages.Set, drv ports.Driver, log *slog.Logger) *registry.Registry {
	h := &handlers{pages: pg, drv: drv, log: log.With("component", "actions")}
	h.routes = h.buildClickRoutes()

	reg := registry.New()
	reg.RegisterFunc(domain.ActionKey{Event: "click", Action: "activate"}, h.clickActivate)
	reg.RegisterFunc(domain.ActionKey{Event: "click", Action: "click-element"}, h.clickActivate)
	reg.RegisterFunc(domain.ActionKey{Event: "click", Action: "preview"}, h.clickPreview)
	reg.RegisterFunc(domain.ActionKey{Event: "click", Action: "export"}, h.clickExport)
	reg.RegisterFunc(domain.ActionKey{Event: "click", Action: "delete"}, h.clickDelete)
	reg.RegisterFunc(domain.ActionKey{Event: "input", Action: "set-value"}, h.setValue)
	reg.RegisterFunc(domain.ActionKey{Event: "change", Action: "set-value"}, h.setValue)
	reg.RegisterFunc(domain.ActionKey{Event: "codemirror-change", Action: "set-value"}, h.setEditorValue)

	// Pre-step actions share the ordinary handler plumbing so injection
	// failures behave exactly like record failures.
	reg.RegisterFunc(domain.ActionKey{Event: "replay", Action: "open-cell"}, h.prepareOpenCell)
	reg.RegisterFunc(domain.ActionKey{Event: "replay", Action: "open-plugin"}, h.prepareOpenPlugin)
	reg.RegisterFunc(domain.ActionKey{Event: "replay", Action: "dismiss-tip"}, h.prepareDismissTip)
	return reg
}

// resolveCard refreshes the tracked query card when the record names one.
func (h *handlers) resolveCard(p stepParams) {
	if p.QueryName == "" && p.ConnectionName == "" {
		return
	}
	query, conn := h.pages.Manager.ActiveCard()
	if p.QueryName != "" {
		query = p.QueryName
	}
	if p.ConnectionName != "" {
		conn = p.ConnectionName
	}
	h.pages.Manager.SetActiveCard(query, conn)
}

func (h *handlers) genericClick(ctx context.Context, rec *domain.ActionRecord) error {
	loc, ok := domain.LocatorFromTarget(rec.Target)
	if !ok {
		return fmt.Errorf("cannot build click locator for line %d", rec.Line)
	}
	return h.drv.Click(ctx, loc)
}

func (h *handlers) clickActivate(ctx context.Context, rec *domain.ActionRecord, _ ports.Driver) (domain.HandlerResult, error) {
	p, err := decodeParams(rec)
	if err != nil {
		return domain.HandlerResult{}, err
	}
	matched, err := h.routes.dispatch(ctx, rec, p)
	if err != nil {
		return domain.HandlerResult{}, err
	}
	if matched {
		return domain.HandlerResult{}, nil
	}
	if err := h.genericClick(ctx, rec); err != nil {
		return domain.HandlerResult{}, err
	}
	h.resolveCard(p)
	return domain.HandlerResult{}, nil
}

func (h *handlers) clickPreview(ctx context.Context, rec *domain.ActionRecord, _ ports.Driver) (domain.HandlerResult, error) {
	p, err := decodeParams(rec)
	if err != nil {
		return domain.HandlerResult{}, err
	}
	h.resolveCard(p)
	return domain.HandlerResult{}, h.pages.Manager.ClickPreview(ctx)
}

func (h *handlers) clickExport(ctx context.Context, rec *domain.ActionRecord, _ ports.Driver) (domain.HandlerResult, error) {
	p, err := decodeParams(rec)
	if err != nil {
		return domain.HandlerResult{}, err
	}
	h.resolveCard(p)
	return domain.HandlerResult{}, h.pages.Manager.ClickExport(ctx)
}

func (h *handlers) clickDelete(ctx context.Context, rec *domain.ActionRecord, _ ports.Driver) (domain.HandlerResult, error) {
	p, err := decodeParams(rec)
	if err != nil {
		return domain.HandlerResult{}, err
	}
	h.resolveCard(p)
	return domain.HandlerResult{}, h.pages.Manager.ClickDelete(ctx)
}

// setValue handles input/change records: the query name dialog and the
// export destination select get their page interactions, everything else is
// a generic value write on the recorded locator.
func (h *handlers) setValue(ctx context.Context, rec *domain.ActionRecord, _ ports.Driver) (domain.HandlerResult, error) {
	p, err := decodeParams(rec)
	if err != nil {
		return domain.HandlerResult{}, err
	}

	switch {
	case isQueryNameInput(rec.Target):
		return domain.HandlerResult{}, h.pages.Manager.EnterQueryName(ctx, p.Value)
	case isExportDestinationSelect(rec.Target):
		opt := exportDestinationOption(p, rec.Target.TestID)
		if opt == "" {
			return domain.HandlerResult{}, fmt.Errorf("export destination record without value at line %d", rec.Line)
		}
		return domain.HandlerResult{}, h.pages.Manager.SelectExportDestination(ctx, opt)
	}

	loc, ok := domain.LocatorFromTarget(rec.Target)
	if !ok {
		return domain.HandlerResult{}, fmt.Errorf("cannot locate input element for line %d", rec.Line)
	}
	return domain.HandlerResult{}, h.drv.SetValue(ctx, loc, p.Value)
}

// setEditorValue handles codemirror-change records.
func (h *handlers) setEditorValue(ctx context.Context, rec *domain.ActionRecord, _ ports.Driver) (domain.HandlerResult, error) {
	p, err := decodeParams(rec)
	if err != nil {
		return domain.HandlerResult{}, err
	}
	if _, ok := rec.Payload["value"]; !ok {
		return domain.HandlerResult{}, fmt.Errorf("codemirror-change has no value at line %d", rec.Line)
	}

	h.resolveCard(p)
	if query, conn := h.pages.Manager.ActiveCard(); query != "" || conn != "" {
		return domain.HandlerResult{}, h.pages.Manager.SetQueryText(ctx, p.Value)
	}

	loc, ok := domain.LocatorFromTarget(rec.Target)
	if !ok {
		return domain.HandlerResult{}, fmt.Errorf("cannot locate editor element for line %d", rec.Line)
	}
	return domain.HandlerResult{}, h.drv.SetEditorValue(ctx, loc, p.Value)
}

func (h *handlers) prepareOpenCell(ctx context.Context, _ *domain.ActionRecord, _ ports.Driver) (domain.HandlerResult, error) {
	return domain.HandlerResult{}, h.pages.Home.OpenCreationCell(ctx)
}

func (h *handlers) prepareOpenPlugin(ctx context.Context, _ *domain.ActionRecord, _ ports.Driver) (domain.HandlerResult, error) {
	return domain.HandlerResult{}, h.pages.Editor.OpenPluginPanel(ctx)
}

func (h *handlers) prepareDismissTip(ctx context.Context, _ *domain.ActionRecord, _ ports.Driver) (domain.HandlerResult, error) {
	return domain.HandlerResult{}, h.pages.Editor.DismissTip(ctx)
}

func isQueryNameInput(t domain.Target) bool {
	return t.ElementID == "dialog-menu-name-sqlreq" ||
		hasTestIDPrefix(t, "dialog-menu-name-sqlreq") ||
		hasTestIDPrefix(t, "sql-manager-add-query-name")
}

func isExportDestinationSelect(t domain.Target) bool {
	return t.ElementID == "export-destination-select" ||
		hasTestIDPrefix(t, "export-destination-select") ||
		hasTestIDPrefix(t, "sql-manager-export-destination")
}

func hasTestIDPrefix(t domain.Target, prefix string) bool {
	if t.TestID == "" {
		return false
	}
	return t.TestID == prefix || len(t.TestID) > len(prefix) && t.TestID[:len(prefix)+1] == prefix+"-"
}
