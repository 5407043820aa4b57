package logparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osvk/uireplay/pkg/domain"
)

func recs(seqs ...int) []domain.ActionRecord {
	out := make([]domain.ActionRecord, len(seqs))
	for i, s := range seqs {
		out[i] = domain.ActionRecord{Seq: s, Line: i + 1, Event: "click", Action: "activate"}
	}
	return out
}

func TestSplitSessions(t *testing.T) {
	t.Run("single run stays together", func(t *testing.T) {
		sessions := SplitSessions(recs(0, 1, 2, 5))
		require.Len(t, sessions, 1)
		assert.Len(t, sessions[0], 4, "gaps are not resets")
	})

	t.Run("splits at each seq reset", func(t *testing.T) {
		sessions := SplitSessions(recs(0, 1, 2, 0, 1, 0))
		require.Len(t, sessions, 3)
		assert.Len(t, sessions[0], 3)
		assert.Len(t, sessions[1], 2)
		assert.Len(t, sessions[2], 1)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, SplitSessions(nil))
	})
}

func TestLatestLog(t *testing.T) {
	dir := t.TempDir()

	older := filepath.Join(dir, "interaction-log-2026-01-01.jsonl")
	newer := filepath.Join(dir, "interaction-log-2026-01-15.jsonl")
	other := filepath.Join(dir, "notes.jsonl")
	for _, p := range []string{older, newer, other} {
		require.NoError(t, os.WriteFile(p, []byte("{}\n"), 0o644))
	}
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, past, past))

	assert.Equal(t, newer, LatestLog(dir))
	assert.Equal(t, "", LatestLog(t.TempDir()))
}
