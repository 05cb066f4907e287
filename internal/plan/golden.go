package plan

import (
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// toCanonicalMap converts a Result to a map[string]any for canonical
// JSON serialization. This is required because MarshalCanonical only
// handles maps, slices, and primitives.
func (r *Result) toCanonicalMap() map[string]any {
	picks := make([]any, len(r.Picks))
	for i, p := range r.Picks {
		pickMap := map[string]any{
			"pool": p.Pool,
			"id":   p.ID,
			"text": p.Text,
		}
		if p.Tags != nil {
			pickMap["tags"] = p.Tags
		}
		if p.Repeat {
			pickMap["repeat"] = true
		}
		picks[i] = pickMap
	}

	result := map[string]any{
		"plan_name": r.PlanName,
		"seed":      r.Seed,
		"picks":     picks,
	}
	if r.Session != "" {
		result["session"] = r.Session
	}
	return result
}

// Snapshot serializes the result to canonical JSON.
func (r *Result) Snapshot() ([]byte, error) {
	return MarshalCanonical(r.toCanonicalMap())
}

// RunWithGolden executes a plan and compares the trace against a golden
// file at testdata/golden/{plan.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/plan -update
//
// Returns error if the run itself fails. Test failure (via goldie)
// occurs if the trace doesn't match the golden file.
func RunWithGolden(t *testing.T, p *Plan, opts Options) error {
	t.Helper()

	result, err := Run(context.Background(), p, opts)
	if err != nil {
		return err
	}

	traceJSON, err := result.Snapshot()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, p.Name, traceJSON)

	return nil
}
