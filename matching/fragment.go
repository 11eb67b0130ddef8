package matching

import (
	"fmt"

	matrix "github.com/skelterjohn/go.matrix"

	"github.com/BurntSushi/torsmatch/selection"
)

// A Pair is a single matched position: residue Left of the left selection
// corresponds to residue Right of the right selection.
type Pair struct {
	Left, Right int
	Distance    float64
}

// A Fragment is a contiguous run of matched residues. Position k of the
// fragment pairs left residue LeftStart+k with right residue RightStart+k.
//
// Distances holds the MCQ of every position. Gaps lists the offsets (into
// Distances) of bridged positions whose distance exceeded the threshold;
// they are part of the fragment but do not contribute to Score.
//
// The slices of a Fragment must not be modified.
type Fragment struct {
	LeftStart, RightStart int
	Distances             []float64
	Gaps                  []int
	Score                 float64
}

// Len returns the number of residue pairs in the fragment.
func (f Fragment) Len() int {
	return len(f.Distances)
}

// LeftEnd is the exclusive end of the fragment in the left selection.
func (f Fragment) LeftEnd() int {
	return f.LeftStart + f.Len()
}

// RightEnd is the exclusive end of the fragment in the right selection.
func (f Fragment) RightEnd() int {
	return f.RightStart + f.Len()
}

// Pairs returns every position of the fragment.
func (f Fragment) Pairs() []Pair {
	pairs := make([]Pair, f.Len())
	for k, d := range f.Distances {
		pairs[k] = Pair{f.LeftStart + k, f.RightStart + k, d}
	}
	return pairs
}

// overlaps returns true if f and g share a residue on either side.
func (f Fragment) overlaps(g Fragment) bool {
	return (f.LeftStart < g.LeftEnd() && g.LeftStart < f.LeftEnd()) ||
		(f.RightStart < g.RightEnd() && g.RightStart < f.RightEnd())
}

// better implements the ordering used to resolve overlaps: lower score,
// then longer, then by the smaller and then the larger of the two start
// positions. The ordering does not change when the sides are swapped; the
// only fragments it cannot tell apart are mirror images.
func (f Fragment) better(g Fragment) bool {
	fmin, fmax := minmax(f.LeftStart, f.RightStart)
	gmin, gmax := minmax(g.LeftStart, g.RightStart)
	switch {
	case f.Score != g.Score:
		return f.Score < g.Score
	case f.Len() != g.Len():
		return f.Len() > g.Len()
	case fmin != gmin:
		return fmin < gmin
	}
	return fmax < gmax
}

// mirrors returns true if g is f with its sides swapped (and f is not on
// the main diagonal).
func (f Fragment) mirrors(g Fragment) bool {
	return f.LeftStart != f.RightStart &&
		f.LeftStart == g.RightStart && f.RightStart == g.LeftStart &&
		f.Len() == g.Len() && f.Score == g.Score
}

func minmax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}

func (f Fragment) overlapsAny(fs []Fragment) bool {
	for _, g := range fs {
		if f.overlaps(g) {
			return true
		}
	}
	return false
}

// without cuts every position sharing a residue with one of blockers out of
// f. The runs that remain lose any bridged positions at either end, and
// those with at least minLength positions are returned.
func (f Fragment) without(blockers []Fragment, minLength int) []Fragment {
	free := func(k int) bool {
		li, rj := f.LeftStart+k, f.RightStart+k
		for _, g := range blockers {
			if (li >= g.LeftStart && li < g.LeftEnd()) ||
				(rj >= g.RightStart && rj < g.RightEnd()) {
				return false
			}
		}
		return true
	}

	var pieces []Fragment
	for k := 0; k < f.Len(); {
		if !free(k) {
			k++
			continue
		}
		start := k
		for k < f.Len() && free(k) {
			k++
		}
		end := k
		for start < end && f.isGap(start) {
			start++
		}
		for end > start && f.isGap(end-1) {
			end--
		}
		if end-start >= minLength {
			pieces = append(pieces, f.sub(start, end))
		}
	}
	return pieces
}

func (f Fragment) isGap(k int) bool {
	for _, g := range f.Gaps {
		if g == k {
			return true
		}
	}
	return false
}

// sub returns positions [start, end) of f as a fragment of its own, with its
// score computed again. There must be at least one position in the range that
// is not a gap.
func (f Fragment) sub(start, end int) Fragment {
	g := Fragment{
		LeftStart:  f.LeftStart + start,
		RightStart: f.RightStart + start,
		Distances:  f.Distances[start:end:end],
	}
	var sum float64
	scored := 0
	for k, d := range g.Distances {
		if f.isGap(start + k) {
			g.Gaps = append(g.Gaps, k)
			continue
		}
		sum += d
		scored++
	}
	g.Score = sum / float64(scored)
	return g
}

// swap returns the fragment with its two sides exchanged.
func (f Fragment) swap() Fragment {
	f.LeftStart, f.RightStart = f.RightStart, f.LeftStart
	return f
}

func (f Fragment) String() string {
	return fmt.Sprintf("left %d-%d, right %d-%d, MCQ %0.2f",
		f.LeftStart, f.LeftEnd()-1, f.RightStart, f.RightEnd()-1, f.Score)
}

// fragments orders fragments by their starting position on the left.
type fragments []Fragment

func (fs fragments) Len() int {
	return len(fs)
}

func (fs fragments) Less(i, j int) bool {
	if fs[i].LeftStart != fs[j].LeftStart {
		return fs[i].LeftStart < fs[j].LeftStart
	}
	return fs[i].RightStart < fs[j].RightStart
}

func (fs fragments) Swap(i, j int) {
	fs[i], fs[j] = fs[j], fs[i]
}

// extender grows anchors along diagonals of a distance matrix.
type extender struct {
	D           *matrix.DenseMatrix
	left, right *selection.Selection
	threshold   float64
	gaps        int
}

// linked reports whether position idx follows the previous position when
// walking in direction step, without crossing a chain break.
func linked(sel *selection.Selection, idx, step int) bool {
	if step > 0 {
		return sel.Connected(idx - 1)
	}
	return sel.Connected(idx)
}

// walk returns how many positions beyond (i, j) in direction step (+1 or -1)
// belong to the fragment. Bridged positions are only counted when they are
// followed by a position within the threshold.
func (e extender) walk(i, j, step int) int {
	accepted, pending := 0, 0
	for k := 1; ; k++ {
		li, rj := i+step*k, j+step*k
		if !linked(e.left, li, step) || !linked(e.right, rj, step) {
			break
		}
		if e.D.Get(li, rj) <= e.threshold {
			accepted, pending = k, 0
			continue
		}
		pending++
		if pending > e.gaps {
			break
		}
	}
	return accepted
}

// extend builds the maximal fragment through the anchor (i, j).
func (e extender) extend(i, j int) Fragment {
	back := e.walk(i, j, -1)
	forward := e.walk(i, j, 1)

	f := Fragment{
		LeftStart:  i - back,
		RightStart: j - back,
		Distances:  make([]float64, back+forward+1),
	}
	var sum float64
	scored := 0
	for k := range f.Distances {
		d := e.D.Get(f.LeftStart+k, f.RightStart+k)
		f.Distances[k] = d
		if d > e.threshold {
			f.Gaps = append(f.Gaps, k)
			continue
		}
		sum += d
		scored++
	}
	// The anchor itself is always within the threshold.
	f.Score = sum / float64(scored)
	return f
}
