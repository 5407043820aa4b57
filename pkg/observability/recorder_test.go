package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osvk/uireplay/pkg/domain"
)

func TestRecorder(t *testing.T) {
	ctx := context.Background()
	rec := NewRecorder()
	hooks := rec.Attach(domain.NewHookTable())

	run := func(seq, line int, event, action string) {
		r := &domain.ActionRecord{Seq: seq, Line: line, Event: event, Action: action}
		for _, h := range hooks.BeforeHooks(seq) {
			require.NoError(t, h(ctx, r))
		}
		for _, h := range hooks.AfterHooks(seq) {
			require.NoError(t, h(ctx, r))
		}
	}

	run(0, 1, "click", "activate")
	run(1, 2, "input", "set-value")
	run(2, 3, "click", "activate")

	snap := rec.Snapshot()
	require.Len(t, snap, 2)

	byKey := map[string]KeyStats{}
	for _, st := range snap {
		byKey[st.Key.String()] = st
	}

	click := byKey["click/activate"]
	assert.Equal(t, 2, click.Count)
	assert.Equal(t, 2, click.LastSeq)
	assert.Equal(t, 3, click.LastLine)
	assert.GreaterOrEqual(t, click.Total, click.Slowest)

	input := byKey["input/set-value"]
	assert.Equal(t, 1, input.Count)
}
