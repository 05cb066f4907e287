package plan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questdeck/questdeck/internal/quest"
	"github.com/questdeck/questdeck/internal/testutil"
)

// starterPagePlan draws the opening page of a worksheet: two proofs, a
// calm note, and a movement quest. With ZeroSource every pick is the
// first unused candidate, so the golden trace is hand-checkable against
// the built-in pool data.
func starterPagePlan() *Plan {
	return &Plan{
		Name: "starter-page",
		Seed: 7,
		Draws: []Draw{
			{Pool: "proof", Count: 2},
			{Pool: "note", Tags: []string{"calm"}},
			{Pool: "quest", Tags: []string{"movement"}},
		},
	}
}

func TestRunWithGolden_StarterPage(t *testing.T) {
	reg := testutil.Registry(t)

	// To regenerate:
	//   go test ./internal/plan -run TestRunWithGolden_StarterPage -update
	err := RunWithGolden(t, starterPagePlan(), Options{
		Registry: reg,
		Source:   quest.ZeroSource{},
	})
	require.NoError(t, err)
}

func TestSnapshot_FieldOrderAndOmissions(t *testing.T) {
	reg := testutil.Registry(t)

	result, err := Run(context.Background(), starterPagePlan(), Options{
		Registry: reg,
		Source:   quest.ZeroSource{},
	})
	require.NoError(t, err)

	snap, err := result.Snapshot()
	require.NoError(t, err)

	jsonStr := string(snap)
	assert.Contains(t, jsonStr, `"plan_name":"starter-page"`)
	assert.Contains(t, jsonStr, `"seed":7`)
	assert.Contains(t, jsonStr, `"picks":[`)
	// Store-less run: no session key, no repeat flags.
	assert.NotContains(t, jsonStr, `"session"`)
	assert.NotContains(t, jsonStr, `"repeat"`)
}

func TestSnapshot_IncludesSessionWhenBound(t *testing.T) {
	r := &Result{
		PlanName: "bound",
		Session:  "tok-1",
		Seed:     1,
		Picks:    []Pick{{Pool: "quest", ID: "Q001", Text: "x"}},
	}

	snap, err := r.Snapshot()
	require.NoError(t, err)
	assert.Contains(t, string(snap), `"session":"tok-1"`)
}

func TestSnapshot_RepeatFlagSurfaced(t *testing.T) {
	r := &Result{
		PlanName: "repeats",
		Seed:     1,
		Picks: []Pick{
			{Pool: "note", ID: "N001", Text: "x", Tags: []string{"calm"}, Repeat: true},
		},
	}

	snap, err := r.Snapshot()
	require.NoError(t, err)
	assert.Contains(t, string(snap), `"repeat":true`)
}
