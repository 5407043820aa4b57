package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osvk/uireplay/pkg/domain"
)

func rec(event, action, testID string) *domain.ActionRecord {
	return &domain.ActionRecord{
		Event:  event,
		Action: action,
		Target: domain.Target{TestID: testID},
	}
}

func TestDefaultSkipPolicy(t *testing.T) {
	p := DefaultSkipPolicy()

	assert.True(t, p.ShouldSkip(rec("keydown", "press", "sql-codemirror-1")))
	assert.True(t, p.ShouldSkip(rec("keyup", "release", "")))
	assert.True(t, p.ShouldSkip(rec("keypress", "press", "x")))

	assert.False(t, p.ShouldSkip(rec("click", "activate", "main-sql")))
	assert.False(t, p.ShouldSkip(rec("input", "set-value", "sql-manager-add-query-name")))
}

func TestSkipRuleMatching(t *testing.T) {
	t.Run("all set fields must match", func(t *testing.T) {
		r := SkipRule{Event: "click", TestID: "main-about"}
		assert.True(t, r.Matches(rec("click", "activate", "main-about")))
		assert.False(t, r.Matches(rec("click", "activate", "main-sql")))
		assert.False(t, r.Matches(rec("input", "set-value", "main-about")))
	})

	t.Run("prefix rule", func(t *testing.T) {
		r := SkipRule{TestIDPrefix: "sql-codemirror"}
		assert.True(t, r.Matches(rec("click", "activate", "sql-codemirror-3")))
		assert.False(t, r.Matches(rec("click", "activate", "cm-tree-connection-1")))
	})
}

func TestExtendDoesNotMutateReceiver(t *testing.T) {
	base := DefaultSkipPolicy()
	extended := base.Extend(SkipRule{Event: "scroll"})

	assert.False(t, base.ShouldSkip(rec("scroll", "move", "")))
	assert.True(t, extended.ShouldSkip(rec("scroll", "move", "")))
	assert.Len(t, base.Rules(), 3)
	assert.Len(t, extended.Rules(), 4)
}

func TestLoadSkipRules(t *testing.T) {
	t.Run("reads the skip list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "skip.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`skip:
  - event: scroll
  - event: click
    testIdPrefix: sql-manager-resize
`), 0o644))

		rules, err := LoadSkipRules(path)
		require.NoError(t, err)
		require.Len(t, rules, 2)
		assert.Equal(t, "scroll", rules[0].Event)
		assert.Equal(t, "sql-manager-resize", rules[1].TestIDPrefix)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSkipRules(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("skip: {not: [a, list"), 0o644))
		_, err := LoadSkipRules(path)
		require.Error(t, err)
	})
}
