// Package selection represents the ordered residues of one or more chains of
// a structure, each annotated with its torsion angles. A Selection is the
// input to fragment matching.
package selection

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/torsmatch/torsion"
)

// ResidueID identifies a residue within a structure.
type ResidueID struct {
	Chain  string
	Number int
	ICode  byte
	Name   string
}

// String returns a compact form of the identifier like "A.GLY12" or "B.U7a".
func (id ResidueID) String() string {
	var icode string
	if id.ICode != 0 && id.ICode != ' ' {
		icode = string(id.ICode)
	}
	return fmt.Sprintf("%s.%s%d%s", id.Chain, id.Name, id.Number, icode)
}

// A Residue is a single position in a selection.
type Residue struct {
	ResidueID
	Angles torsion.ResidueAngles
}

// A Selection is an ordered list of residues grouped by chain. Adjacent
// residues of the same chain are assumed to be connected.
//
// Selections are read-only once created.
type Selection struct {
	Name     string
	residues []Residue
	chains   []string
}

// New creates a selection from residues in chain order. Residues of the same
// chain must be adjacent; if a chain identifier shows up again after another
// chain has started, an error is returned.
//
// The residues are copied. Residues without any defined angles are kept,
// since they still separate their neighbors along the chain.
func New(name string, residues []Residue) (*Selection, error) {
	sel := &Selection{
		Name:     name,
		residues: make([]Residue, len(residues)),
	}
	copy(sel.residues, residues)

	seen := make(map[string]bool)
	for i, r := range sel.residues {
		if i > 0 && r.Chain == sel.residues[i-1].Chain {
			continue
		}
		if seen[r.Chain] {
			return nil, fmt.Errorf("Chain '%s' in selection '%s' is not "+
				"contiguous: it starts again at residue %s.",
				r.Chain, name, r.ResidueID)
		}
		seen[r.Chain] = true
		sel.chains = append(sel.chains, r.Chain)
	}
	return sel, nil
}

// Len returns the number of residues in the selection.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.residues)
}

// At returns the residue at position i.
func (s *Selection) At(i int) Residue {
	return s.residues[i]
}

// Angles returns the torsion angles of the residue at position i.
func (s *Selection) Angles(i int) torsion.ResidueAngles {
	return s.residues[i].Angles
}

// ID returns the identifier of the residue at position i.
func (s *Selection) ID(i int) ResidueID {
	return s.residues[i].ResidueID
}

// IDs returns the identifiers of the residues in [start, end).
func (s *Selection) IDs(start, end int) []ResidueID {
	ids := make([]ResidueID, 0, end-start)
	for i := start; i < end; i++ {
		ids = append(ids, s.residues[i].ResidueID)
	}
	return ids
}

// Chains returns the chain identifiers in the order they appear.
func (s *Selection) Chains() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.chains...)
}

// Connected returns true if residues i and i+1 exist and belong to the same
// chain.
func (s *Selection) Connected(i int) bool {
	if i < 0 || i+1 >= s.Len() {
		return false
	}
	return s.residues[i].Chain == s.residues[i+1].Chain
}

// Label returns the selection name followed by its chain identifiers, e.g.,
// "1EHZ.A" or "2HHB.AB".
func (s *Selection) Label() string {
	if s == nil {
		return ""
	}
	return s.Name + "." + strings.Join(s.chains, "")
}

// Slice returns the residues in [start, end) as a new selection with the same
// name. Residues are shared with the original rather than copied, which is
// fine since neither may be modified.
func (s *Selection) Slice(start, end int) *Selection {
	sub := &Selection{
		Name:     s.Name,
		residues: s.residues[start:end],
	}
	for i, r := range sub.residues {
		if i == 0 || r.Chain != sub.residues[i-1].Chain {
			sub.chains = append(sub.chains, r.Chain)
		}
	}
	return sub
}

// Undefined returns the number of residues that have none of the given angle
// types defined.
func (s *Selection) Undefined(types []torsion.AngleType) int {
	n := 0
	for _, r := range s.residues {
		if r.Angles.Defined(types) == 0 {
			n++
		}
	}
	return n
}

func (s *Selection) String() string {
	return fmt.Sprintf("%s (%d residues)", s.Label(), s.Len())
}
