package plan

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan defines one document-generation run.
type Plan struct {
	// Name uniquely identifies this plan. Used as the golden file
	// name in tests and as the default session label.
	Name string `yaml:"name"`

	// Description explains what the plan generates.
	Description string `yaml:"description,omitempty"`

	// Seed drives the run's random source. The same seed and plan
	// always produce the same document.
	Seed int64 `yaml:"seed"`

	// Session is an optional fixed session token for store-backed
	// runs. If empty and a store is attached, a token is generated.
	Session string `yaml:"session,omitempty"`

	// Draws are executed in order. Each draw picks Count items from
	// one pool, optionally restricted by tags.
	Draws []Draw `yaml:"draws"`
}

// Draw is one pool request within a plan.
type Draw struct {
	// Pool names the pool to draw from.
	Pool string `yaml:"pool"`

	// Tags restricts candidates to items sharing at least one tag.
	// Empty means no restriction.
	Tags []string `yaml:"tags,omitempty"`

	// Count is how many items to pick. Zero defaults to 1.
	Count int `yaml:"count,omitempty"`
}

// LoadPlan reads and parses a plan YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like
	// "draw:" vs "draws:")
	var p Plan
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validatePlan(&p); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}

	return &p, nil
}

// validatePlan checks that required fields are present and valid.
func validatePlan(p *Plan) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}

	if len(p.Draws) == 0 {
		return fmt.Errorf("draws list is required and must be non-empty")
	}

	for i, d := range p.Draws {
		if d.Pool == "" {
			return fmt.Errorf("draws[%d]: pool is required", i)
		}
		if d.Count < 0 {
			return fmt.Errorf("draws[%d]: count must be non-negative", i)
		}
	}

	return nil
}
