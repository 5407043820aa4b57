package dsl

import (
	"time"

	"github.com/osvk/uireplay/pkg/domain"
)

// RecordBuilder provides a fluent API for configuring a single record.
type RecordBuilder struct {
	rec     domain.ActionRecord
	builder *Builder
}

// TestID targets the element by its data-testid attribute.
func (r *RecordBuilder) TestID(id string) *RecordBuilder {
	r.rec.Target.TestID = id
	return r
}

// Selector targets the element by a raw XPath or CSS selector.
func (r *RecordBuilder) Selector(sel string) *RecordBuilder {
	r.rec.Target.Selector = sel
	return r
}

// ElementID targets the element by its DOM id.
func (r *RecordBuilder) ElementID(id string) *RecordBuilder {
	r.rec.Target.ElementID = id
	return r
}

// Value sets the "value" payload field, used by the set-value handlers.
func (r *RecordBuilder) Value(v string) *RecordBuilder {
	return r.Payload("value", v)
}

// Payload sets an arbitrary payload field.
func (r *RecordBuilder) Payload(key string, value any) *RecordBuilder {
	if r.rec.Payload == nil {
		r.rec.Payload = make(map[string]any)
	}
	r.rec.Payload[key] = value
	return r
}

// At overrides the record timestamp.
func (r *RecordBuilder) At(ts time.Time) *RecordBuilder {
	r.rec.Timestamp = ts
	return r
}

// Build returns the underlying record without seq or line assigned.
// This is primarily used by the Builder, but exposed for advanced usage.
func (r *RecordBuilder) Build() domain.ActionRecord {
	return r.rec
}
