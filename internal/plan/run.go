package plan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/questdeck/questdeck/internal/quest"
	"github.com/questdeck/questdeck/internal/store"
)

// Pick is one item drawn during a plan run.
type Pick struct {
	Pool   string
	ID     string
	Text   string
	Tags   []string
	Repeat bool
}

// Result is the trace of a completed plan run.
type Result struct {
	PlanName string
	Session  string // empty for store-less runs
	Seed     int64
	Picks    []Pick
}

// Options configures a plan run.
type Options struct {
	// Registry supplies the pools. Required.
	Registry *quest.Registry

	// Source overrides the random source. If nil, a SeededSource
	// seeded with the plan's seed is used. Tests pass ZeroSource for
	// hand-computable golden traces.
	Source quest.Source

	// Store enables session persistence. If nil, the used-id set
	// lives only for the duration of the run.
	Store *store.Store

	// Tokens generates session tokens when the plan doesn't fix one.
	// If nil, defaults to UUIDv7Generator.
	Tokens TokenGenerator
}

// Run executes the plan's draws in order.
//
// One used-id set and one random source span the whole run, so a plan
// never repeats an item until its filtered pools are exhausted, and
// the same seed reproduces the same document.
//
// With a store attached, the run binds to a session: an existing
// session token resumes with its persisted used-id set, a fresh one is
// created with the plan's seed. Every pick is recorded before the next
// draw, so a run interrupted mid-document resumes without repeats.
func Run(ctx context.Context, p *Plan, opts Options) (*Result, error) {
	if opts.Registry == nil {
		return nil, fmt.Errorf("run plan %q: registry is required", p.Name)
	}

	src := opts.Source
	if src == nil {
		src = quest.NewSeededSource(p.Seed)
	}

	result := &Result{PlanName: p.Name, Seed: p.Seed}

	used := make(map[string]bool)
	var seq int64
	if opts.Store != nil {
		token, resumedUsed, nextSeq, err := bindSession(ctx, p, opts)
		if err != nil {
			return nil, fmt.Errorf("run plan %q: %w", p.Name, err)
		}
		result.Session = token
		used = resumedUsed
		seq = nextSeq
	}

	for i, d := range p.Draws {
		count := d.Count
		if count == 0 {
			count = 1
		}
		for n := 0; n < count; n++ {
			sel, err := opts.Registry.Pick(d.Pool, used, src, d.Tags)
			if err != nil {
				return nil, fmt.Errorf("run plan %q: draw[%d] pick %d: %w", p.Name, i, n, err)
			}

			slog.Debug("plan pick",
				"plan", p.Name,
				"draw", i,
				"pool", d.Pool,
				"item", sel.Item.ID,
				"repeat", sel.Repeat,
			)

			used[sel.Item.ID] = true
			if opts.Store != nil {
				if err := opts.Store.MarkUsed(ctx, result.Session, sel.Item.ID, d.Pool, seq); err != nil {
					return nil, fmt.Errorf("run plan %q: record draw[%d]: %w", p.Name, i, err)
				}
				seq++
			}

			result.Picks = append(result.Picks, Pick{
				Pool:   d.Pool,
				ID:     sel.Item.ID,
				Text:   sel.Item.Text,
				Tags:   sel.Item.Tags,
				Repeat: sel.Repeat,
			})
		}
	}

	return result, nil
}

// bindSession resolves the session token for a store-backed run and
// loads any persisted used-id state.
func bindSession(ctx context.Context, p *Plan, opts Options) (string, map[string]bool, int64, error) {
	token := p.Session
	if token == "" {
		gen := opts.Tokens
		if gen == nil {
			gen = UUIDv7Generator{}
		}
		token = gen.Generate()
	}

	exists, err := opts.Store.SessionExists(ctx, token)
	if err != nil {
		return "", nil, 0, err
	}

	if !exists {
		if err := opts.Store.CreateSession(ctx, token, p.Seed); err != nil {
			return "", nil, 0, err
		}
		slog.Info("session created", "session", token, "seed", p.Seed)
		return token, make(map[string]bool), 1, nil
	}

	used, err := opts.Store.UsedIDs(ctx, token)
	if err != nil {
		return "", nil, 0, err
	}
	seq, err := opts.Store.NextSeq(ctx, token)
	if err != nil {
		return "", nil, 0, err
	}
	slog.Info("session resumed", "session", token, "used", len(used))
	return token, used, seq, nil
}
