package report

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BurntSushi/torsmatch/matching"
	"github.com/BurntSushi/torsmatch/selection"
	"github.com/BurntSushi/torsmatch/torsion"
)

func chain(t *testing.T, name string, phis ...float64) *selection.Selection {
	residues := make([]selection.Residue, len(phis))
	for i, phi := range phis {
		residues[i] = selection.Residue{
			ResidueID: selection.ResidueID{Chain: "A", Number: i + 1, Name: "ALA"},
			Angles: torsion.NewResidueAngles(torsion.Protein,
				map[torsion.AngleType]float64{torsion.Phi: phi}),
		}
	}
	sel, err := selection.New(name, residues)
	require.NoError(t, err)
	return sel
}

func match(t *testing.T, left, right *selection.Selection) *matching.SelectionMatch {
	conf := matching.DefaultConfig()
	conf.Threshold = 10
	m, err := matching.New([]torsion.AngleType{torsion.Phi}, conf)
	require.NoError(t, err)
	sm, err := m.Match(context.Background(), left, right)
	require.NoError(t, err)
	return sm
}

func TestAligned(t *testing.T) {
	left := chain(t, "1ABC", 0, 40, 80, 120)
	right := chain(t, "2DEF", 200, 2, 42, 82, 122)
	sm := match(t, left, right)

	res := NewResult(sm)
	require.Equal(t, Aligned, res.Status)
	assert.Equal(t, "Structures selected for alignment: 1ABC.A, 2DEF.A", Header(sm))
	assert.Equal(t, "1 fragment covering 4 of 4 residues (left) and "+
		"5 residues (right), MCQ 2.00 degrees.", Summary(res))

	buf := new(bytes.Buffer)
	require.NoError(t, WriteFragments(buf, sm))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "A.ALA1-A.ALA4")
	assert.Contains(t, lines[1], "A.ALA2-A.ALA5")
	assert.Contains(t, lines[1], "2.00")

	buf.Reset()
	require.NoError(t, WriteResidues(buf, sm, matching.Right))
	assert.Equal(t, "# 2DEF.A (right)\n"+
		"1\tA.ALA2\t2.00\n"+
		"1\tA.ALA3\t2.00\n"+
		"1\tA.ALA4\t2.00\n"+
		"1\tA.ALA5\t2.00\n", buf.String())
}

func TestEmpty(t *testing.T) {
	left := chain(t, "1ABC", 0, 40, 80)
	right := chain(t, "2DEF", 180, 220, 260)
	sm := match(t, left, right)

	res := NewResult(sm)
	assert.Equal(t, Empty, res.Status)
	assert.Nil(t, res.Match)
	assert.Equal(t, "empty", res.Status.String())
	assert.Contains(t, Summary(res), "no matching fragments")
	assert.Equal(t, Empty, NewResult(nil).Status)

	buf := new(bytes.Buffer)
	require.NoError(t, WriteFragments(buf, sm))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}
