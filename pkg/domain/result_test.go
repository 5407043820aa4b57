package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestIDLocator(t *testing.T) {
	assert.Equal(t, "[data-testid='main-sql']", TestID("main-sql").Value)
	assert.Equal(t, `[data-testid='it\'s']`, TestID("it's").Value)
	assert.Equal(t, ByCSS, TestID("x").By)
}

func TestLocatorFromTarget(t *testing.T) {
	t.Run("selector wins over testId and id", func(t *testing.T) {
		loc, ok := LocatorFromTarget(Target{Selector: "#a", TestID: "b", ElementID: "c"})
		assert.True(t, ok)
		assert.Equal(t, CSS("#a"), loc)
	})

	t.Run("testId wins over id", func(t *testing.T) {
		loc, ok := LocatorFromTarget(Target{TestID: "b", ElementID: "c"})
		assert.True(t, ok)
		assert.Equal(t, TestID("b"), loc)
	})

	t.Run("id alone", func(t *testing.T) {
		loc, ok := LocatorFromTarget(Target{ElementID: "c"})
		assert.True(t, ok)
		assert.Equal(t, ElementID("c"), loc)
	})

	t.Run("empty target", func(t *testing.T) {
		_, ok := LocatorFromTarget(Target{})
		assert.False(t, ok)
	})
}
