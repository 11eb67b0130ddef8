package torsion

import (
	"math"
	"strings"
)

// ResidueAngles is the set of torsion angle values of a single residue. The
// zero value is a residue of unknown class with no defined angles.
//
// A ResidueAngles value is immutable once constructed; it is safe to share
// between goroutines.
type ResidueAngles struct {
	class   MoleculeClass
	values  [numAngleTypes]float64
	defined uint32
}

// NewResidueAngles builds the angle set of a residue of the given class.
// Angle types that are missing from values, that belong to a different
// molecule class, or whose value is NaN are recorded as undefined.
func NewResidueAngles(class MoleculeClass, values map[AngleType]float64) ResidueAngles {
	ra := ResidueAngles{class: class}
	for t, deg := range values {
		if !t.Valid() || t.Class() != class {
			continue
		}
		v := NewAngleValue(t, deg)
		if !v.Defined {
			continue
		}
		ra.values[t] = v.Degrees
		ra.defined |= 1 << t
	}
	return ra
}

// Class returns the molecule class of the residue.
func (ra ResidueAngles) Class() MoleculeClass {
	return ra.class
}

// Get returns the value of the angle t. Requesting an angle that does not
// apply to the residue's class gives an undefined value, not an error.
func (ra ResidueAngles) Get(t AngleType) AngleValue {
	if !ra.Has(t) {
		return Undefined(t)
	}
	return AngleValue{Type: t, Degrees: ra.values[t], Defined: true}
}

// Has returns true if the angle t is defined for this residue.
func (ra ResidueAngles) Has(t AngleType) bool {
	return t.Valid() && ra.defined&(1<<t) != 0
}

// Defined counts how many of the given angle types are defined.
func (ra ResidueAngles) Defined(types []AngleType) int {
	n := 0
	for _, t := range types {
		if ra.Has(t) {
			n++
		}
	}
	return n
}

// Values returns every angle of the residue's class in table order,
// including undefined ones.
func (ra ResidueAngles) Values() []AngleValue {
	vals := make([]AngleValue, 0, 8)
	for t := AngleType(0); t < numAngleTypes; t++ {
		if t.Class() == ra.class {
			vals = append(vals, ra.Get(t))
		}
	}
	return vals
}

// Degrees returns the value of t, or NaN when it is undefined.
func (ra ResidueAngles) Degrees(t AngleType) float64 {
	if !ra.Has(t) {
		return math.NaN()
	}
	return ra.values[t]
}

func (ra ResidueAngles) String() string {
	vals := ra.Values()
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = v.String()
	}
	return ra.class.String() + "{" + strings.Join(strs, " ") + "}"
}
