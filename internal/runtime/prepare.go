package runtime

import (
	"github.com/osvk/uireplay/pkg/domain"
	"github.com/osvk/uireplay/pkg/dsl"
)

// DefaultPreSteps is the fixed preconditioning sequence run before record #1
// when injection is enabled: open a fresh document cell, open the plugin
// panel, and dismiss the first-run tip. The steps are synthetic records so
// they flow through the same registry and failure semantics as logged
// records; their Seq is the injection sentinel.
func DefaultPreSteps() []domain.ActionRecord {
	return []domain.ActionRecord{
		dsl.Synthetic("open-cell"),
		dsl.Synthetic("open-plugin"),
		dsl.Synthetic("dismiss-tip"),
	}
}
