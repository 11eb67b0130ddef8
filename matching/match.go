package matching

import (
	"sort"

	"github.com/BurntSushi/torsmatch/selection"
)

// Side picks one of the two selections of a match.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// SelectionMatch is the result of matching two selections: the fragments
// found, ordered by their position in the left selection, and the
// selections they refer to.
//
// A SelectionMatch is never modified after Match returns it.
type SelectionMatch struct {
	left, right *selection.Selection
	frags       []Fragment
	score       float64
}

func newSelectionMatch(left, right *selection.Selection,
	frags []Fragment) *SelectionMatch {

	m := &SelectionMatch{left: left, right: right, frags: frags}
	var sum float64
	n := 0
	for _, f := range frags {
		sum += f.Score * float64(f.Len())
		n += f.Len()
	}
	if n > 0 {
		m.score = sum / float64(n)
	}
	return m
}

// Left returns the left selection.
func (m *SelectionMatch) Left() *selection.Selection {
	return m.left
}

// Right returns the right selection.
func (m *SelectionMatch) Right() *selection.Selection {
	return m.right
}

// Selection returns the selection on the given side.
func (m *SelectionMatch) Selection(side Side) *selection.Selection {
	if side == Right {
		return m.right
	}
	return m.left
}

// Fragments returns the matched fragments ordered by left position.
func (m *SelectionMatch) Fragments() []Fragment {
	return append([]Fragment(nil), m.frags...)
}

// Len returns the number of fragments.
func (m *SelectionMatch) Len() int {
	return len(m.frags)
}

// Empty returns true when no fragments were found. This is how "the
// structures have nothing in common" is reported.
func (m *SelectionMatch) Empty() bool {
	return len(m.frags) == 0
}

// Score returns the mean fragment score weighted by fragment length. It is
// not defined for an empty match, in which case false is returned.
func (m *SelectionMatch) Score() (float64, bool) {
	if m.Empty() {
		return 0, false
	}
	return m.score, true
}

// Coverage returns the number of matched residues on one side. (Both sides
// always have the same coverage.)
func (m *SelectionMatch) Coverage() int {
	n := 0
	for _, f := range m.frags {
		n += f.Len()
	}
	return n
}

// Residues returns the identifiers of the matched residues of one side, in
// fragment order. Position k of Residues(Left) corresponds to position k of
// Residues(Right).
func (m *SelectionMatch) Residues(side Side) []selection.ResidueID {
	sel := m.Selection(side)
	ids := make([]selection.ResidueID, 0, m.Coverage())
	for _, f := range m.frags {
		start := f.LeftStart
		if side == Right {
			start = f.RightStart
		}
		ids = append(ids, sel.IDs(start, start+f.Len())...)
	}
	return ids
}

// Pairs returns every matched position of every fragment, in fragment order.
func (m *SelectionMatch) Pairs() []Pair {
	pairs := make([]Pair, 0, m.Coverage())
	for _, f := range m.frags {
		pairs = append(pairs, f.Pairs()...)
	}
	return pairs
}

// Swap returns the same match with the left and right selections exchanged.
func (m *SelectionMatch) Swap() *SelectionMatch {
	frags := make([]Fragment, len(m.frags))
	for i, f := range m.frags {
		frags[i] = f.swap()
	}
	sort.Sort(fragments(frags))
	return &SelectionMatch{
		left:  m.right,
		right: m.left,
		frags: frags,
		score: m.score,
	}
}
