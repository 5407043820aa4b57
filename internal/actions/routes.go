package actions

import (
	"context"
	"strings"

	"github.com/osvk/uireplay/pkg/domain"
)

// routeFunc handles one click route resolved from a testId.
type routeFunc func(ctx context.Context, rec *domain.ActionRecord, p stepParams) error

// prefixRoute matches testIds by prefix. Order matters: the first match wins.
type prefixRoute struct {
	prefix string
	fn     routeFunc
}

// clickRoutes maps captured testIds to page interactions. Exact routes are
// consulted first, then prefix routes; a miss falls back to a generic click
// on the recorded locator.
type clickRoutes struct {
	exact  map[string]routeFunc
	prefix []prefixRoute
}

func (h *handlers) buildClickRoutes() *clickRoutes {
	pg := h.pages
	return &clickRoutes{
		exact: map[string]routeFunc{
			"main-sql-mode": func(ctx context.Context, _ *domain.ActionRecord, _ stepParams) error {
				return pg.Plugin.OpenSQLMode(ctx)
			},
			"main-olap-mode": func(ctx context.Context, _ *domain.ActionRecord, _ stepParams) error {
				return pg.Plugin.OpenOLAPMode(ctx)
			},
			"main-file-mode": func(ctx context.Context, _ *domain.ActionRecord, _ stepParams) error {
				return pg.Plugin.OpenFileMode(ctx)
			},
			"main-smartdocs": func(ctx context.Context, _ *domain.ActionRecord, _ stepParams) error {
				return pg.Plugin.OpenSmartDocs(ctx)
			},
			"main-connection-manager": func(ctx context.Context, _ *domain.ActionRecord, _ stepParams) error {
				return pg.Plugin.OpenConnectionManager(ctx)
			},
			"main-settings": func(ctx context.Context, _ *domain.ActionRecord, _ stepParams) error {
				return pg.Plugin.OpenSettings(ctx)
			},
			"main-about": func(ctx context.Context, _ *domain.ActionRecord, _ stepParams) error {
				return pg.Plugin.OpenAbout(ctx)
			},
			"sql-home-open-sql-manager": func(ctx context.Context, _ *domain.ActionRecord, _ stepParams) error {
				return pg.SQLMode.OpenSQLManager(ctx)
			},
			"sql-home-open-report-manager": func(ctx context.Context, _ *domain.ActionRecord, _ stepParams) error {
				return pg.SQLMode.OpenReportManager(ctx)
			},
			"sql-home-open-query-history": func(ctx context.Context, _ *domain.ActionRecord, _ stepParams) error {
				return pg.SQLMode.OpenQueryHistory(ctx)
			},
			"sql-home-open-log": func(ctx context.Context, _ *domain.ActionRecord, _ stepParams) error {
				return pg.SQLMode.OpenLog(ctx)
			},
			"sql-manager-add-query-open": func(ctx context.Context, _ *domain.ActionRecord, _ stepParams) error {
				return pg.Manager.OpenAddQuery(ctx)
			},
			"sql-manager-add-query-confirm": func(ctx context.Context, _ *domain.ActionRecord, _ stepParams) error {
				return pg.Manager.ConfirmAddQuery(ctx)
			},
			"sql-manager-add-query-name": func(ctx context.Context, _ *domain.ActionRecord, p stepParams) error {
				if strings.TrimSpace(p.Value) == "" {
					return nil
				}
				return pg.Manager.EnterQueryName(ctx, p.Value)
			},
			"sql-manager-export-confirm": func(ctx context.Context, _ *domain.ActionRecord, _ stepParams) error {
				return pg.Manager.ConfirmExport(ctx)
			},
			"sql-manager-export-destination": func(ctx context.Context, rec *domain.ActionRecord, p stepParams) error {
				opt := exportDestinationOption(p, rec.Target.TestID)
				if opt == "" {
					return nil
				}
				return pg.Manager.SelectExportDestination(ctx, opt)
			},
			"messagebox-button-OK-0": func(ctx context.Context, _ *domain.ActionRecord, _ stepParams) error {
				return pg.Manager.ClickSuccessOK(ctx)
			},
			"sql-manager-minimize": func(ctx context.Context, _ *domain.ActionRecord, _ stepParams) error {
				return pg.Manager.Minimize(ctx)
			},
			"sql-manager-toggle-left-panel": func(ctx context.Context, _ *domain.ActionRecord, _ stepParams) error {
				return pg.Manager.ToggleLeftPanel(ctx)
			},
		},
		prefix: []prefixRoute{
			{"cm-tree-connection-", func(ctx context.Context, rec *domain.ActionRecord, p stepParams) error {
				title := strings.TrimSpace(p.ConnectionName)
				if title == "" {
					title = cleanConnectionTitle(p.Text)
				}
				if title == "" {
					return h.genericClick(ctx, rec)
				}
				return pg.Manager.SelectConnection(ctx, title)
			}},
			{"sql-manager-query-preview-", func(ctx context.Context, rec *domain.ActionRecord, p stepParams) error {
				h.resolveCard(p)
				return pg.Manager.ClickPreview(ctx)
			}},
			{"sql-manager-query-export-", func(ctx context.Context, rec *domain.ActionRecord, p stepParams) error {
				h.resolveCard(p)
				return pg.Manager.ClickExport(ctx)
			}},
			{"sql-manager-query-delete-", func(ctx context.Context, rec *domain.ActionRecord, p stepParams) error {
				h.resolveCard(p)
				return pg.Manager.ClickDelete(ctx)
			}},
			{"sql-manager-query-editor-", func(ctx context.Context, rec *domain.ActionRecord, p stepParams) error {
				h.resolveCard(p)
				return h.genericClick(ctx, rec)
			}},
			{"sql-codemirror", func(ctx context.Context, rec *domain.ActionRecord, p stepParams) error {
				h.resolveCard(p)
				return h.genericClick(ctx, rec)
			}},
			{"custom-select-item-sql_manager_export_destination-", func(ctx context.Context, rec *domain.ActionRecord, p stepParams) error {
				opt := exportDestinationOption(p, rec.Target.TestID)
				if opt == "" {
					return h.genericClick(ctx, rec)
				}
				return pg.Manager.SelectExportDestination(ctx, opt)
			}},
		},
	}
}

// dispatch returns true when a route matched and ran.
func (r *clickRoutes) dispatch(ctx context.Context, rec *domain.ActionRecord, p stepParams) (bool, error) {
	testID := rec.Target.TestID
	if testID == "" {
		return false, nil
	}
	if fn, ok := r.exact[testID]; ok {
		return true, fn(ctx, rec, p)
	}
	for _, pr := range r.prefix {
		if strings.HasPrefix(testID, pr.prefix) {
			return true, pr.fn(ctx, rec, p)
		}
	}
	return false, nil
}
