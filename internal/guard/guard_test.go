package guard

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestAllowUnlimitedByDefault(t *testing.T) {
	g := New(Limits{}, nil)
	for i := 0; i < 100; i++ {
		assert.NilError(t, g.Allow("list", nil))
	}
}

func TestMaxTotal(t *testing.T) {
	g := New(Limits{}, map[string]Limits{"list": {MaxTotal: 2}})

	assert.NilError(t, g.Allow("list", nil))
	assert.NilError(t, g.Allow("list", nil))
	assert.ErrorContains(t, g.Allow("list", nil), "exceeded 2 total calls")

	// Other verbs fall back to the unlimited defaults.
	assert.NilError(t, g.Allow("tree", nil))
}

func TestRatePerMinute(t *testing.T) {
	g := New(Limits{}, map[string]Limits{"search-by-pattern": {RatePerMinute: 2}})

	assert.NilError(t, g.Allow("search-by-pattern", nil))
	assert.NilError(t, g.Allow("search-by-pattern", nil))
	assert.ErrorContains(t, g.Allow("search-by-pattern", nil), "rate limit")
}

func TestMaxArgumentLength(t *testing.T) {
	g := New(Limits{MaxArgumentLength: 8}, nil)

	assert.NilError(t, g.Allow("list", map[string]any{"path": "short"}))
	err := g.Allow("list", map[string]any{"path": strings.Repeat("a", 9)})
	assert.ErrorContains(t, err, "exceeds 8 characters")

	// Non-string arguments are not length-checked.
	assert.NilError(t, g.Allow("tree", map[string]any{"depth": 1000000}))
}

func TestDeniedCallDoesNotCount(t *testing.T) {
	g := New(Limits{}, map[string]Limits{"list": {MaxTotal: 1, MaxArgumentLength: 4}})

	assert.ErrorContains(t, g.Allow("list", map[string]any{"path": "toolong"}), "exceeds")
	assert.NilError(t, g.Allow("list", map[string]any{"path": "ok"}))
}
