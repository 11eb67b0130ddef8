package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frag gives a fragment whose every position has the distance score.
func frag(left, right, length int, score float64) Fragment {
	f := Fragment{
		LeftStart:  left,
		RightStart: right,
		Distances:  make([]float64, length),
		Score:      score,
	}
	for k := range f.Distances {
		f.Distances[k] = score
	}
	return f
}

func TestResolveOverlapsLowerScoreWins(t *testing.T) {
	a := frag(0, 0, 5, 5.0)
	b := frag(2, 10, 5, 3.0)
	assert.Equal(t, []Fragment{b}, resolveOverlaps([]Fragment{a, b}, 3))
	assert.Equal(t, []Fragment{b}, resolveOverlaps([]Fragment{b, a}, 3))
}

func TestResolveOverlapsRightSide(t *testing.T) {
	a := frag(0, 0, 4, 5.0)
	b := frag(10, 2, 4, 3.0)
	assert.Equal(t, []Fragment{b}, resolveOverlaps([]Fragment{a, b}, 3))
}

func TestResolveOverlapsTieBreaks(t *testing.T) {
	short := frag(0, 0, 3, 1.0)
	long := frag(1, 1, 6, 1.0)
	assert.Equal(t, []Fragment{long}, resolveOverlaps([]Fragment{short, long}, 3))

	// The smaller start of either side decides, not the left start.
	early := frag(4, 0, 4, 1.0)
	late := frag(3, 8, 4, 1.0)
	assert.Equal(t, []Fragment{early}, resolveOverlaps([]Fragment{late, early}, 3))

	first := frag(3, 0, 4, 1.0)
	second := frag(3, 9, 4, 1.0)
	assert.Equal(t, []Fragment{first}, resolveOverlaps([]Fragment{second, first}, 3))
}

func TestResolveOverlapsTrimsLoser(t *testing.T) {
	long := frag(0, 0, 10, 15.0)
	short := frag(2, 20, 3, 8.0)
	got := resolveOverlaps([]Fragment{long, short}, 3)
	assert.Equal(t, []Fragment{short, long.sub(5, 10)}, got)
	assert.Equal(t, 5, got[1].LeftStart)
	assert.Equal(t, 5, got[1].Len())
	assert.Equal(t, 15.0, got[1].Score)

	// Neither remaining run is long enough.
	assert.Equal(t, []Fragment{short}, resolveOverlaps([]Fragment{long, short}, 6))
}

func TestResolveOverlapsTrimmedReranked(t *testing.T) {
	// Once cut, a's remainder is worse than c and loses to it as well.
	a := frag(0, 0, 8, 2.0)
	a.Distances = []float64{1, 1, 1, 1, 3, 3, 3, 3}
	b := frag(0, 20, 4, 1.5)
	c := frag(5, 30, 3, 2.5)
	got := resolveOverlaps([]Fragment{a, b, c}, 1)
	assert.Equal(t, []Fragment{b, a.sub(4, 5), c}, got)
	assert.Equal(t, 3.0, got[1].Score)
}

func TestResolveOverlapsMirrors(t *testing.T) {
	// Mirror images that overlap each other cut each other down.
	f := frag(0, 2, 4, 1.0)
	g := frag(2, 0, 4, 1.0)
	assert.True(t, f.mirrors(g))
	assert.Empty(t, resolveOverlaps([]Fragment{f, g}, 1))
	assert.Empty(t, resolveOverlaps([]Fragment{g, f}, 1))

	// Mirror images that do not overlap are both kept.
	f, g = frag(0, 3, 3, 1.0), frag(3, 0, 3, 1.0)
	assert.Equal(t, []Fragment{f, g}, resolveOverlaps([]Fragment{g, f}, 3))

	diag := frag(2, 2, 3, 1.0)
	assert.False(t, diag.mirrors(diag))
}

func TestFragmentWithoutGaps(t *testing.T) {
	f := Fragment{
		LeftStart:  0,
		RightStart: 0,
		Distances:  []float64{2, 4, 90, 6, 8},
		Gaps:       []int{2},
		Score:      5,
	}
	// Cutting position 3 leaves a bridged position at the end of the
	// first run, which is dropped.
	blocker := frag(3, 10, 1, 0)
	pieces := f.without([]Fragment{blocker}, 1)
	require.Len(t, pieces, 2)
	assert.Equal(t, []float64{2, 4}, pieces[0].Distances)
	assert.Empty(t, pieces[0].Gaps)
	assert.Equal(t, 3.0, pieces[0].Score)
	assert.Equal(t, 4, pieces[1].LeftStart)
	assert.Equal(t, 8.0, pieces[1].Score)

	whole := f.sub(0, 5)
	assert.Equal(t, []int{2}, whole.Gaps)
	assert.Equal(t, 5.0, whole.Score)
}

func TestResolveOverlapsDisjointSorted(t *testing.T) {
	a := frag(10, 0, 3, 1.0)
	b := frag(0, 10, 3, 9.0)
	c := frag(5, 5, 3, 4.0)
	assert.Equal(t, []Fragment{b, c, a}, resolveOverlaps([]Fragment{a, b, c}, 3))
	assert.Empty(t, resolveOverlaps(nil, 3))
}

func TestFragmentPairs(t *testing.T) {
	f := Fragment{LeftStart: 2, RightStart: 7, Distances: []float64{1, 2}}
	assert.Equal(t, []Pair{{2, 7, 1}, {3, 8, 2}}, f.Pairs())
	assert.Equal(t, 4, f.LeftEnd())
	assert.Equal(t, 9, f.RightEnd())

	g := Fragment{LeftStart: 4, RightStart: 0, Distances: []float64{0}}
	assert.False(t, f.overlaps(g))
	g.RightStart = 8
	assert.True(t, f.overlaps(g))
}

func TestSelectionMatchSwap(t *testing.T) {
	frags := []Fragment{frag(0, 6, 3, 2.0), frag(4, 0, 4, 1.0)}
	m := newSelectionMatch(nil, nil, frags)
	score, ok := m.Score()
	assert.True(t, ok)
	assert.InDelta(t, (3*2.0+4*1.0)/7, score, 1e-9)
	assert.Equal(t, 7, m.Coverage())

	swapped := m.Swap()
	got := swapped.Fragments()
	assert.Equal(t, 0, got[0].LeftStart)
	assert.Equal(t, 4, got[0].RightStart)
	assert.Equal(t, 6, got[1].LeftStart)
	assert.Equal(t, 0, got[1].RightStart)
	assert.Equal(t, m.Fragments(), swapped.Swap().Fragments())
}
