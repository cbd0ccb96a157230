// Package chance abstracts the random draws made by the agent so that tests
// can replay fixed sequences.
package chance

import (
	"math/rand"
	"sync"
	"time"
)

// Source produces the random values used for gating and template picks
type Source interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// Hit reports whether a fresh draw falls under probability p
func Hit(src Source, p float64) bool {
	return src.Float64() < p
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// lockedSource serializes access to a math/rand generator
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a goroutine-safe source seeded with seed
func New(seed int64) Source {
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

// NewTimeSeeded returns a goroutine-safe source seeded from the wall clock
func NewTimeSeeded() Source {
	return New(time.Now().UnixNano())
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

// Sequence replays fixed values, wrapping around when exhausted. Floats and
// ints are consumed independently. An empty list yields zero.
type Sequence struct {
	mu     sync.Mutex
	Floats []float64
	Ints   []int
	fi, ii int
}

// NewSequence builds a replaying source from float draws
func NewSequence(floats ...float64) *Sequence {
	return &Sequence{Floats: floats}
}

// WithInts sets the values returned by Intn
func (s *Sequence) WithInts(ints ...int) *Sequence {
	s.Ints = ints
	return s
}

func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

// Intn returns the next configured int reduced modulo n
func (s *Sequence) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Always returns a source whose float draws are all v
func Always(v float64) *Sequence {
	return NewSequence(v)
}
