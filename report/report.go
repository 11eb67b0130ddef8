// Package report turns selection matches into text for people: a header
// naming the compared structures, a table of fragments, the matched residues
// of either side, and a one line summary.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/BurntSushi/torsmatch/matching"
)

// Status says whether an alignment produced anything.
type Status int

const (
	Empty Status = iota
	Aligned
)

func (s Status) String() string {
	if s == Aligned {
		return "aligned"
	}
	return "empty"
}

// Result is the outcome of aligning two selections. An empty result has no
// match; this is a normal outcome, not a failure.
type Result struct {
	Status Status
	Match  *matching.SelectionMatch
}

// NewResult wraps a match. A nil or empty match gives an empty result.
func NewResult(match *matching.SelectionMatch) Result {
	if match == nil || match.Empty() {
		return Result{Status: Empty}
	}
	return Result{Status: Aligned, Match: match}
}

// Header names the selections of the match, e.g., "Structures selected for
// alignment: 1EHZ.A, 1EVV.A".
func Header(match *matching.SelectionMatch) string {
	return fmt.Sprintf("Structures selected for alignment: %s, %s",
		match.Left().Label(), match.Right().Label())
}

// Summary describes a result in one line.
func Summary(res Result) string {
	if res.Status == Empty {
		return "The selected structures have no matching fragments in common."
	}
	score, _ := res.Match.Score()
	noun := "fragments"
	if res.Match.Len() == 1 {
		noun = "fragment"
	}
	return fmt.Sprintf("%d %s covering %d of %d residues (left) and "+
		"%d residues (right), MCQ %0.2f degrees.",
		res.Match.Len(), noun, res.Match.Coverage(),
		res.Match.Left().Len(), res.Match.Right().Len(), score)
}

// WriteFragments writes a table with one line per fragment of the match.
func WriteFragments(w io.Writer, match *matching.SelectionMatch) error {
	tabw := tabwriter.NewWriter(w, 0, 4, 4, ' ', 0)
	fmt.Fprintln(tabw, "Fragment\tLeft\tRight\tLength\tGaps\tMCQ")
	left, right := match.Left(), match.Right()
	for i, f := range match.Fragments() {
		fmt.Fprintf(tabw, "%d\t%s-%s\t%s-%s\t%d\t%d\t%0.2f\n",
			i+1,
			left.ID(f.LeftStart), left.ID(f.LeftEnd()-1),
			right.ID(f.RightStart), right.ID(f.RightEnd()-1),
			f.Len(), len(f.Gaps), f.Score)
	}
	return tabw.Flush()
}

// WriteResidues writes the matched residues of one side of the match, one
// per line and in fragment order. Each line holds the fragment number, the
// residue identifier and the MCQ of its position.
func WriteResidues(w io.Writer, match *matching.SelectionMatch,
	side matching.Side) error {

	ids := match.Residues(side)
	var buf strings.Builder
	fmt.Fprintf(&buf, "# %s (%s)\n", match.Selection(side).Label(), side)
	k := 0
	for i, f := range match.Fragments() {
		for _, d := range f.Distances {
			fmt.Fprintf(&buf, "%d\t%s\t%0.2f\n", i+1, ids[k], d)
			k++
		}
	}
	_, err := io.WriteString(w, buf.String())
	return err
}
