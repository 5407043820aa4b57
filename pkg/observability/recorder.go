package observability

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/osvk/uireplay/pkg/domain"
)

// KeyStats aggregates the executed records of one action kind.
type KeyStats struct {
	Key      domain.ActionKey
	Count    int
	Total    time.Duration
	Slowest  time.Duration
	LastSeq  int
	LastLine int
}

// Recorder measures record execution via every-record hooks. A single
// Recorder instance serves one run at a time; durations are taken between
// the before and after hook of the same record.
type Recorder struct {
	mu      sync.Mutex
	started map[int]time.Time
	stats   map[domain.ActionKey]*KeyStats
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		started: make(map[int]time.Time),
		stats:   make(map[domain.ActionKey]*KeyStats),
	}
}

// Attach registers the recorder's hooks on the table and returns it.
func (r *Recorder) Attach(t *domain.HookTable) *domain.HookTable {
	return t.OnEveryBefore(r.before).OnEveryAfter(r.after)
}

func (r *Recorder) before(_ context.Context, rec *domain.ActionRecord) error {
	r.mu.Lock()
	r.started[rec.Seq] = time.Now()
	r.mu.Unlock()
	return nil
}

func (r *Recorder) after(_ context.Context, rec *domain.ActionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var took time.Duration
	if start, ok := r.started[rec.Seq]; ok {
		took = time.Since(start)
		delete(r.started, rec.Seq)
	}

	key := rec.Key()
	st, ok := r.stats[key]
	if !ok {
		st = &KeyStats{Key: key}
		r.stats[key] = st
	}
	st.Count++
	st.Total += took
	if took > st.Slowest {
		st.Slowest = took
	}
	st.LastSeq = rec.Seq
	st.LastLine = rec.Line
	return nil
}

// Snapshot returns the per-key stats sorted by total time, slowest first.
func (r *Recorder) Snapshot() []KeyStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]KeyStats, 0, len(r.stats))
	for _, st := range r.stats {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}
