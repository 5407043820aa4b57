package domain

// HandlerResult is the outcome of executing one record. It only lives for the
// duration of the record's processing step; the orchestrator does not retain
// it.
type HandlerResult struct {
	// Value is an optional observed value (e.g. text read back for an
	// assertion hook). Nil for most actions.
	Value any
}

// Locator identifies a UI element for the driver. Pages and handlers build
// locators; only the driver adapter interprets them.
type Locator struct {
	By    LocatorBy
	Value string
}

// LocatorBy is the lookup strategy of a Locator.
type LocatorBy string

const (
	ByCSS   LocatorBy = "css"
	ByXPath LocatorBy = "xpath"
	ByID    LocatorBy = "id"
)

func (l Locator) String() string {
	return string(l.By) + "=" + l.Value
}

// CSS builds a CSS selector locator.
func CSS(selector string) Locator { return Locator{By: ByCSS, Value: selector} }

// XPath builds an XPath locator.
func XPath(expr string) Locator { return Locator{By: ByXPath, Value: expr} }

// TestID builds a CSS locator for a data-testid attribute, escaping single
// quotes the same way the capture side does.
func TestID(id string) Locator {
	safe := ""
	for _, r := range id {
		if r == '\'' {
			safe += "\\'"
			continue
		}
		safe += string(r)
	}
	return Locator{By: ByCSS, Value: "[data-testid='" + safe + "']"}
}

// ElementID builds a locator for a DOM element id.
func ElementID(id string) Locator { return Locator{By: ByID, Value: id} }

// LocatorFromTarget builds the strongest locator available from a record
// target: explicit selector first, then testId, then element id. The zero
// Locator and false are returned when the target is empty.
func LocatorFromTarget(t Target) (Locator, bool) {
	switch {
	case t.Selector != "":
		return CSS(t.Selector), true
	case t.TestID != "":
		return TestID(t.TestID), true
	case t.ElementID != "":
		return ElementID(t.ElementID), true
	}
	return Locator{}, false
}
