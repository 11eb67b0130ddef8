package torsion

import (
	"fmt"
	"math"
	"strings"
)

// MoleculeClass is the chemical class of a residue. Every angle type belongs
// to exactly one class.
type MoleculeClass uint8

const (
	Unknown MoleculeClass = iota
	Protein
	RNA
)

var classNames = [...]string{
	Unknown: "unknown",
	Protein: "protein",
	RNA:     "rna",
}

func (c MoleculeClass) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("MoleculeClass(%d)", uint8(c))
}

// ParseClass converts the (case insensitive) name of a molecule class to its
// value. "nucleic" is accepted as a synonym for RNA.
func ParseClass(name string) (MoleculeClass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "protein", "aa":
		return Protein, nil
	case "rna", "nucleic", "na":
		return RNA, nil
	case "unknown", "", "-":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("Unknown molecule class '%s'.", name)
}

// AngleType identifies a single torsion angle (e.g., phi for proteins or
// alpha for RNA). Its metadata is kept in a lookup table indexed by the type,
// so adding a new molecule class only means adding rows to that table.
type AngleType uint8

const (
	Phi AngleType = iota
	Psi
	Omega
	Chi1
	Chi2
	Chi3
	Chi4
	Chi5
	Alpha
	Beta
	Gamma
	Delta
	Epsilon
	Zeta
	Chi
	Nu0
	Nu1
	Nu2
	Nu3
	Nu4
	Eta
	Theta

	numAngleTypes
)

type angleInfo struct {
	name  string
	class MoleculeClass
	main  bool
	atoms string
}

// angleTable is indexed by AngleType. It is never modified.
var angleTable = [numAngleTypes]angleInfo{
	Phi:   {"phi", Protein, true, "C(i-1) N CA C"},
	Psi:   {"psi", Protein, true, "N CA C N(i+1)"},
	Omega: {"omega", Protein, true, "CA C N(i+1) CA(i+1)"},
	Chi1:  {"chi1", Protein, false, "N CA CB *G"},
	Chi2:  {"chi2", Protein, false, "CA CB *G *D"},
	Chi3:  {"chi3", Protein, false, "CB *G *D *E"},
	Chi4:  {"chi4", Protein, false, "*G *D *E *Z"},
	Chi5:  {"chi5", Protein, false, "CD NE CZ NH1"},

	Alpha:   {"alpha", RNA, true, "O3'(i-1) P O5' C5'"},
	Beta:    {"beta", RNA, true, "P O5' C5' C4'"},
	Gamma:   {"gamma", RNA, true, "O5' C5' C4' C3'"},
	Delta:   {"delta", RNA, true, "C5' C4' C3' O3'"},
	Epsilon: {"epsilon", RNA, true, "C4' C3' O3' P(i+1)"},
	Zeta:    {"zeta", RNA, true, "C3' O3' P(i+1) O5'(i+1)"},
	Chi:     {"chi", RNA, true, "O4' C1' N9/N1 C4/C2"},
	Nu0:     {"nu0", RNA, false, "C4' O4' C1' C2'"},
	Nu1:     {"nu1", RNA, false, "O4' C1' C2' C3'"},
	Nu2:     {"nu2", RNA, false, "C1' C2' C3' C4'"},
	Nu3:     {"nu3", RNA, false, "C2' C3' C4' O4'"},
	Nu4:     {"nu4", RNA, false, "C3' C4' O4' C1'"},
	Eta:     {"eta", RNA, false, "C4'(i-1) P C4' P(i+1)"},
	Theta:   {"theta", RNA, false, "P C4' P(i+1) C4'(i+1)"},
}

// Valid returns true if t corresponds to a row in the angle table.
func (t AngleType) Valid() bool {
	return t < numAngleTypes
}

// Name returns the lower case name of the angle, e.g., "phi".
func (t AngleType) Name() string {
	if !t.Valid() {
		return fmt.Sprintf("AngleType(%d)", uint8(t))
	}
	return angleTable[t].name
}

func (t AngleType) String() string {
	return t.Name()
}

// Class returns the molecule class that the angle is defined for.
func (t AngleType) Class() MoleculeClass {
	if !t.Valid() {
		return Unknown
	}
	return angleTable[t].class
}

// IsMain returns true if the angle is part of its class's default
// comparison set.
func (t AngleType) IsMain() bool {
	return t.Valid() && angleTable[t].main
}

// Atoms returns a short description of the four atoms defining the dihedral.
func (t AngleType) Atoms() string {
	if !t.Valid() {
		return ""
	}
	return angleTable[t].atoms
}

// AngleValue is the value of a single torsion angle in one residue. When
// Defined is false, Degrees is meaningless.
type AngleValue struct {
	Type    AngleType
	Degrees float64
	Defined bool
}

// NewAngleValue creates a defined angle value, normalized into [0, 360).
// A NaN or infinite value produces an undefined angle.
func NewAngleValue(t AngleType, degrees float64) AngleValue {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return Undefined(t)
	}
	return AngleValue{Type: t, Degrees: Normalize(degrees), Defined: true}
}

// Undefined returns an undefined value for the angle type given.
func Undefined(t AngleType) AngleValue {
	return AngleValue{Type: t}
}

func (v AngleValue) String() string {
	if !v.Defined {
		return fmt.Sprintf("%s=-", v.Type)
	}
	return fmt.Sprintf("%s=%0.2f", v.Type, v.Degrees)
}

// Normalize maps any finite angle in degrees into [0, 360).
func Normalize(degrees float64) float64 {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	// math.Mod(-1e-20, 360) + 360 rounds to 360, and -0 should print as 0.
	if d >= 360 || d == 0 {
		return 0
	}
	return d
}
