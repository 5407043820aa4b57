package dsl

import (
	"time"

	"github.com/osvk/uireplay/pkg/domain"
)

// Builder accumulates a sequence of interaction records.
type Builder struct {
	records []*RecordBuilder
}

// New creates a new script builder.
func New() *Builder {
	return &Builder{}
}

// Add appends a record with the given event and action kind and returns its
// builder for further configuration.
func (b *Builder) Add(event, action string) *RecordBuilder {
	rb := &RecordBuilder{
		rec: domain.ActionRecord{
			Event:  event,
			Action: action,
		},
		builder: b,
	}
	b.records = append(b.records, rb)
	return rb
}

// Records compiles the script. Seq and line numbers are assigned in insertion
// order starting at 0 and 1 respectively, matching how a captured log counts.
func (b *Builder) Records() []domain.ActionRecord {
	out := make([]domain.ActionRecord, 0, len(b.records))
	now := time.Now()
	for i, rb := range b.records {
		rec := rb.rec
		rec.Seq = i
		rec.Line = i + 1
		if rec.Timestamp.IsZero() {
			rec.Timestamp = now
		}
		out = append(out, rec)
	}
	return out
}

// Synthetic builds a single injected preparation record. Such records carry
// the reserved injection seq and never appear in a captured log.
func Synthetic(action string) domain.ActionRecord {
	return domain.ActionRecord{
		Seq:    domain.SeqInjection,
		Event:  "replay",
		Action: action,
	}
}
