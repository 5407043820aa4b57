package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osvk/uireplay/pkg/domain"
)

// chdir is a stand-in for t.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestRenderSummary(t *testing.T) {
	t.Run("completed run prints the counters", func(t *testing.T) {
		var buf bytes.Buffer
		RenderSummary(&buf, &domain.RunSummary{
			Status:   domain.StatusCompleted,
			Seen:     10,
			Executed: 7,
			Skipped:  3,
		})
		out := buf.String()
		assert.Contains(t, out, "seen=10 executed=7 skipped=3")
		assert.NotContains(t, out, "failed")
	})

	t.Run("parse failure reports the line", func(t *testing.T) {
		var buf bytes.Buffer
		mErr := &domain.MalformedRecordError{Line: 12, Cause: "invalid JSON"}
		RenderSummary(&buf, &domain.RunSummary{
			Status:     domain.StatusAborted,
			FailedLine: 12,
			Err:        mErr,
		})
		assert.Contains(t, buf.String(), "failed at line 12")
	})

	t.Run("injection failure is called out", func(t *testing.T) {
		var buf bytes.Buffer
		RenderSummary(&buf, &domain.RunSummary{
			Status:    domain.StatusAborted,
			FailedSeq: domain.SeqInjection,
			Err:       &domain.InjectionError{Step: "replay/open-cell", Err: assert.AnError},
		})
		assert.Contains(t, buf.String(), "pre-step injection")
	})

	t.Run("record failure reports seq and line", func(t *testing.T) {
		var buf bytes.Buffer
		RenderSummary(&buf, &domain.RunSummary{
			Status:     domain.StatusAborted,
			Seen:       5,
			Executed:   4,
			FailedSeq:  4,
			FailedLine: 5,
			Err: &domain.HandlerExecutionError{
				Seq: 4,
				Key: domain.ActionKey{Event: "click", Action: "activate"},
				Err: assert.AnError,
			},
		})
		assert.Contains(t, buf.String(), "failed at seq=4 (line 5)")
	})
}

func TestSessions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "interaction-log-x.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"seq":0,"event":"click","action":"activate"}
{"seq":1,"event":"click","action":"activate"}
{"seq":0,"event":"click","action":"activate"}
`), 0o644))

	var buf bytes.Buffer
	require.NoError(t, Sessions(&buf, path))

	out := buf.String()
	assert.Contains(t, out, "3 records, 2 session(s)")
	assert.Contains(t, out, "session 1: lines 1-2, seq 0-1, 2 records")
	assert.Contains(t, out, "session 2: lines 3-3, seq 0-0, 1 records")
}

func TestResolveLogPath(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		p, err := resolveLogPath("/tmp/some.jsonl")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/some.jsonl", p)
	})

	t.Run("errors when nothing to discover", func(t *testing.T) {
		chdir(t, t.TempDir())
		_, err := resolveLogPath("")
		require.Error(t, err)
	})
}
