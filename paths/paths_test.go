package paths_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/greedyroute/core"
	"github.com/katalvlaran/greedyroute/paths"
)

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical", []string{"A", "B"}, []string{"A", "B"}, 1},
		{"reversed", []string{"A", "B"}, []string{"B", "A"}, 1},
		{"disjoint", []string{"A"}, []string{"B"}, 0},
		{"half", []string{"A", "B", "C"}, []string{"A", "B", "D"}, 0.5},
		{"repeats count once", []string{"A", "A", "B"}, []string{"A", "B"}, 1},
		{"empty", nil, []string{"A"}, 0},
		{"both empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, paths.Jaccard(tt.a, tt.b), 1e-12)
		})
	}
}

func TestFingerprintSeparatesBoundaries(t *testing.T) {
	assert.Equal(t, paths.Fingerprint([]string{"A", "B"}), paths.Fingerprint([]string{"A", "B"}))
	assert.NotEqual(t, paths.Fingerprint([]string{"AB"}), paths.Fingerprint([]string{"A", "B"}))
}

func TestSet_Judge(t *testing.T) {
	accepted := paths.NewSet([]string{"A", "B", "C", "D"})

	assert.Equal(t, paths.Duplicate, accepted.Judge([]string{"A", "B", "C", "D"}, 0.3))
	// {A,B,C,D} vs {A,D}: 2/4 = 0.5
	assert.Equal(t, paths.TooSimilar, accepted.Judge([]string{"A", "D"}, 0.3))
	assert.Equal(t, paths.Novel, accepted.Judge([]string{"A", "D"}, 0.5), "threshold is inclusive")
	// Same vertex set, different order: similar, never a duplicate.
	assert.Equal(t, paths.TooSimilar, accepted.Judge([]string{"D", "C", "B", "A"}, 0.3))
	assert.Equal(t, paths.Novel, new(paths.Set).Judge([]string{"X"}, 0))
	assert.Equal(t, "too_similar", paths.TooSimilar.String())
}

func TestSet_Lookup(t *testing.T) {
	var s paths.Set
	for i := 0; i < 50; i++ {
		p := []string{"S", fmt.Sprintf("v%d", i), "T"}
		assert.Equal(t, i, s.Add(p))
	}
	assert.Equal(t, 50, s.Len())
	assert.Equal(t, []string{"S", "v7", "T"}, s.At(7))

	i, ok := s.Lookup([]string{"S", "v42", "T"})
	require.True(t, ok)
	assert.Equal(t, 42, i)

	// A repeated path resolves to its first position.
	assert.Equal(t, 50, s.Add([]string{"S", "v3", "T"}))
	i, ok = s.Lookup([]string{"S", "v3", "T"})
	require.True(t, ok)
	assert.Equal(t, 3, i)

	i, ok = s.Lookup([]string{"S", "v3"})
	assert.False(t, ok)
	assert.Equal(t, -1, i)
	_, ok = s.Lookup([]string{"Sv3", "T"})
	assert.False(t, ok)
}

func TestWeightAndLegs(t *testing.T) {
	g := core.NewRoadGraph()
	_, err := g.AddEdge("A", "B", 4)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 3)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 0, core.WithUnmeasured())
	require.NoError(t, err)

	w, err := paths.Weight(g, []string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, 4.0, w)

	legs, err := paths.Legs(g, []string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1}, legs)

	w, err = paths.Weight(g, []string{"A"})
	require.NoError(t, err)
	assert.Zero(t, w)

	_, err = paths.Weight(g, []string{"C", "A"})
	assert.ErrorIs(t, err, paths.ErrBrokenPath)
}
