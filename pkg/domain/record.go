package domain

import "time"

// ActionRecord is one logged interaction, parsed from a single line of the
// replay log. Records are immutable once parsed and are always processed in
// file line order; Seq is an identity for hooks and diagnostics, never an
// ordering key.
type ActionRecord struct {
	// Line is the 1-based line number of the record in the source file.
	Line int

	// Seq is the capture-time sequence number. It is not required to start
	// at zero or be contiguous.
	Seq int

	// Timestamp is the capture-time instant. Advisory only: replay is never
	// paced by it. Zero when the log line carried no timestamp.
	Timestamp time.Time

	// Event is the kind of the originating input (e.g. "click", "input",
	// "change", "codemirror-change", "keydown"). Normalized to lower case.
	Event string

	// Action is the semantic operation within the event (e.g. "activate",
	// "set-value", "preview"). Normalized to lower case.
	Action string

	// Target identifies the UI element the action applies to. The parser
	// does not interpret it; handlers do.
	Target Target

	// Payload carries the remaining action-specific fields of the log line
	// verbatim. Handlers decode and validate only the keys they need.
	Payload map[string]any
}

// Target is the locator envelope recorded with an interaction. Any of the
// fields may be empty; handlers pick the strongest one available.
type Target struct {
	TestID    string
	Selector  string
	ElementID string
}

// IsZero reports whether no locator information was recorded.
func (t Target) IsZero() bool {
	return t.TestID == "" && t.Selector == "" && t.ElementID == ""
}

// ActionKey is the (event, action) pair used for handler dispatch.
type ActionKey struct {
	Event  string
	Action string
}

func (k ActionKey) String() string {
	return k.Event + "/" + k.Action
}

// Key returns the dispatch key of the record.
func (r *ActionRecord) Key() ActionKey {
	return ActionKey{Event: r.Event, Action: r.Action}
}

// PayloadString returns the payload value under key as a string.
// Missing keys and non-string values yield "".
func (r *ActionRecord) PayloadString(key string) string {
	if r.Payload == nil {
		return ""
	}
	s, _ := r.Payload[key].(string)
	return s
}
