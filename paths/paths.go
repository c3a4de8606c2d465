// Package paths holds the operations shared by route generators: node-set
// similarity, verbatim comparison and total length of a vertex path.
package paths

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/greedyroute/core"
)

var (
	// ErrBrokenPath indicates two consecutive vertices with no connecting edge.
	ErrBrokenPath = errors.New("paths: consecutive vertices are not connected")

	// ErrNoPath marks a search that finished without reaching its goal.
	ErrNoPath = errors.New("paths: no path found")
)

// Source names the strategy that produced a path.
type Source string

const (
	ShortestWeight Source = "shortest_weight"
	FewestHops     Source = "fewest_hops"
	AvoidMidpoint  Source = "avoid_midpoint"
	Greedy         Source = "greedy"
)

// Verdict classifies a candidate path against already accepted ones.
type Verdict int

const (
	// Novel: not present and not too similar to any accepted path.
	Novel Verdict = iota
	// Duplicate: an accepted path has exactly the same vertex sequence.
	Duplicate
	// TooSimilar: Jaccard similarity to some accepted path exceeds the threshold.
	TooSimilar
)

func (v Verdict) String() string {
	switch v {
	case Novel:
		return "novel"
	case Duplicate:
		return "duplicate"
	case TooSimilar:
		return "too_similar"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Jaccard returns |A∩B| / |A∪B| over the vertex sets of a and b.
// Repeated vertices count once. Two empty paths have similarity 0.
func Jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := make(map[string]struct{}, len(a))
	for _, id := range a {
		setA[id] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	inter := 0
	for _, id := range b {
		if _, dup := setB[id]; dup {
			continue
		}
		setB[id] = struct{}{}
		if _, ok := setA[id]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter

	return float64(inter) / float64(union)
}

// Equal reports whether a and b list the same vertices in the same order.
func Equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Fingerprint hashes the vertex sequence of p. Equal paths share a
// fingerprint; equal fingerprints must still be confirmed with Equal.
func Fingerprint(p []string) uint64 {
	d := xxhash.New()
	for _, id := range p {
		_, _ = d.WriteString(id)
		_, _ = d.Write([]byte{0})
	}

	return d.Sum64()
}

// Set is an append-only list of accepted paths indexed by fingerprint.
// Each path is hashed once, when added; verbatim lookups compare vertex
// sequences only inside the matching fingerprint bucket.
// The zero value is ready to use. A Set is not safe for concurrent use.
type Set struct {
	paths [][]string
	byFP  map[uint64][]int
}

// NewSet returns a Set holding ps in order.
func NewSet(ps ...[]string) *Set {
	s := &Set{}
	for _, p := range ps {
		s.Add(p)
	}

	return s
}

// Add appends p and returns its position.
func (s *Set) Add(p []string) int {
	if s.byFP == nil {
		s.byFP = make(map[uint64][]int)
	}
	i := len(s.paths)
	s.paths = append(s.paths, p)
	fp := Fingerprint(p)
	s.byFP[fp] = append(s.byFP[fp], i)

	return i
}

// Len is the number of paths added so far.
func (s *Set) Len() int { return len(s.paths) }

// At returns the i-th added path.
func (s *Set) At(i int) []string { return s.paths[i] }

// Lookup returns the position of the first added path equal to p.
func (s *Set) Lookup(p []string) (int, bool) {
	for _, i := range s.byFP[Fingerprint(p)] {
		if Equal(s.paths[i], p) {
			return i, true
		}
	}

	return -1, false
}

// Judge applies the novelty rule: a candidate is a Duplicate if it matches an
// added path verbatim, TooSimilar if its Jaccard similarity to any added
// path is strictly greater than threshold, and Novel otherwise.
func (s *Set) Judge(candidate []string, threshold float64) Verdict {
	if _, dup := s.Lookup(candidate); dup {
		return Duplicate
	}
	for _, p := range s.paths {
		if Jaccard(candidate, p) > threshold {
			return TooSimilar
		}
	}

	return Novel
}

// Weight sums the lengths of the shortest edges joining consecutive vertices
// of p in g. A single-vertex or empty path weighs 0.
func Weight(g *core.Graph, p []string) (float64, error) {
	total := 0.0
	for i := 1; i < len(p); i++ {
		e, err := g.EdgeBetween(p[i-1], p[i])
		if err != nil {
			return 0, fmt.Errorf("%w: %q -> %q", ErrBrokenPath, p[i-1], p[i])
		}
		total += e.Length()
	}

	return total, nil
}

// Legs returns the length of every step of p, in order.
func Legs(g *core.Graph, p []string) ([]float64, error) {
	if len(p) < 2 {
		return nil, nil
	}
	legs := make([]float64, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		e, err := g.EdgeBetween(p[i-1], p[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %q -> %q", ErrBrokenPath, p[i-1], p[i])
		}
		legs = append(legs, e.Length())
	}

	return legs, nil
}
