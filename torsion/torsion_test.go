package torsion

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleCatalog_MainAngles() {
	cat := DefaultCatalog()
	fmt.Println(cat.MainAngles(Protein))
	fmt.Println(cat.MainAngles(RNA))
	// Output:
	// [phi psi omega]
	// [alpha beta gamma delta epsilon zeta chi]
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, out float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{-1, 359},
		{-360, 0},
		{725, 5},
		{-179.5, 180.5},
	}
	for _, test := range tests {
		assert.InDelta(t, test.out, Normalize(test.in), 1e-9, "Normalize(%f)", test.in)
	}
}

func TestAngleValue(t *testing.T) {
	v := NewAngleValue(Phi, -60)
	assert.True(t, v.Defined)
	assert.Equal(t, 300.0, v.Degrees)

	assert.False(t, NewAngleValue(Psi, math.NaN()).Defined)
	assert.False(t, NewAngleValue(Psi, math.Inf(1)).Defined)
	assert.Equal(t, "psi=-", Undefined(Psi).String())
}

func TestAngleTable(t *testing.T) {
	for at := AngleType(0); at < numAngleTypes; at++ {
		require.NotEmpty(t, at.Name(), "angle %d has no name", at)
		require.NotEqual(t, Unknown, at.Class(), "angle %s has no class", at)
		require.NotEmpty(t, at.Atoms(), "angle %s has no atoms", at)
	}
	assert.False(t, numAngleTypes.Valid())
	assert.Equal(t, Unknown, numAngleTypes.Class())
	assert.False(t, numAngleTypes.IsMain())
}

func TestResidueAngles(t *testing.T) {
	ra := NewResidueAngles(Protein, map[AngleType]float64{
		Phi:   -57,
		Psi:   math.NaN(),
		Omega: 180,
		Alpha: 10, // not a protein angle
	})
	assert.Equal(t, Protein, ra.Class())
	assert.True(t, ra.Has(Phi))
	assert.False(t, ra.Has(Psi))
	assert.False(t, ra.Has(Alpha))
	assert.Equal(t, 303.0, ra.Get(Phi).Degrees)
	assert.False(t, ra.Get(Alpha).Defined)
	assert.True(t, math.IsNaN(ra.Degrees(Psi)))
	assert.Equal(t, 2, ra.Defined([]AngleType{Phi, Psi, Omega, Alpha}))
	assert.Len(t, ra.Values(), 8)

	var zero ResidueAngles
	assert.Equal(t, 0, zero.Defined(DefaultCatalog().MainAngles()))
}

func TestCatalogParseList(t *testing.T) {
	cat := DefaultCatalog()

	types, err := cat.ParseList("PHI, psi,phi")
	require.NoError(t, err)
	assert.Equal(t, []AngleType{Phi, Psi}, types)

	types, err = cat.ParseList("main")
	require.NoError(t, err)
	assert.Len(t, types, 10)
	assert.Equal(t, Alpha, types[0])

	_, err = cat.ParseList("phi,kappa")
	assert.Error(t, err)

	_, err = cat.ParseList(" , ")
	assert.Error(t, err)
}

func TestCatalogRestricted(t *testing.T) {
	cat := NewCatalog(Phi, Psi, Phi, AngleType(200))
	assert.Equal(t, []AngleType{Phi, Psi}, cat.MainAngles())
	assert.Empty(t, cat.Angles(RNA))
	_, ok := cat.Lookup("omega")
	assert.False(t, ok)
}

func TestParseClass(t *testing.T) {
	c, err := ParseClass("RNA")
	require.NoError(t, err)
	assert.Equal(t, RNA, c)

	c, err = ParseClass("protein")
	require.NoError(t, err)
	assert.Equal(t, Protein, c)

	_, err = ParseClass("lipid")
	assert.Error(t, err)
}
