package quest

import (
	"math/rand"
	"sync"
)

// Source supplies random draws for item selection.
//
// Selection never touches global random state: callers pass a Source
// explicitly so that the same seed reproduces the same document.
// Implemented by SeededSource (production) and FixedSource/ZeroSource
// (tests and golden runs).
type Source interface {
	// Intn returns a non-negative value in [0, n). Panics if n <= 0,
	// matching math/rand semantics.
	Intn(n int) int
}

// SeededSource wraps a math/rand generator seeded by the caller.
//
// One SeededSource should span an entire document-generation run so
// that "seed = same document" holds across every draw in the run.
//
// Thread-safety: SeededSource serializes draws via an internal mutex,
// so a single source may be shared across goroutines, though draw
// order (and therefore output) is only deterministic when calls are
// sequential.
type SeededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource creates a Source seeded with the given value.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns the next draw from the seeded generator.
func (s *SeededSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// FixedSource returns predetermined draws for testing.
//
// Each configured value is reduced modulo n at draw time, so tests can
// express "pick index 2" without knowing the candidate count up front.
//
// Panics when all draws are consumed. This is a fail-fast approach to
// catch test misconfiguration (test drew more items than expected).
type FixedSource struct {
	mu    sync.Mutex
	draws []int
	idx   int
}

// NewFixedSource creates a source that returns draws in order.
//
// Example:
//
//	src := NewFixedSource(0, 2, 1)
//	src.Intn(5) // 0
//	src.Intn(5) // 2
//	src.Intn(2) // 1
//	src.Intn(5) // panic: all draws exhausted
func NewFixedSource(draws ...int) *FixedSource {
	return &FixedSource{draws: draws}
}

// Intn returns the next predetermined draw, reduced modulo n.
func (s *FixedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 {
		panic("FixedSource: Intn called with n <= 0")
	}
	if s.idx >= len(s.draws) {
		panic("FixedSource: all draws exhausted")
	}
	d := s.draws[s.idx]
	s.idx++
	return d % n
}

// ZeroSource always draws index zero, selecting the first candidate in
// pool order. Used by golden tests where the trace must be computable
// by hand.
type ZeroSource struct{}

// Intn returns 0 for any positive n.
func (ZeroSource) Intn(n int) int {
	if n <= 0 {
		panic("ZeroSource: Intn called with n <= 0")
	}
	return 0
}
