package mcq

import (
	"math"

	"github.com/BurntSushi/torsmatch/torsion"
)

// MaxDistance is the largest possible circular distance between two angles,
// and the score given to any comparison without data.
const MaxDistance = 180.0

// Sample is an optional distance. Undefined samples are skipped by
// Aggregate.
type Sample struct {
	Degrees float64
	Defined bool
}

// Diff returns the circular distance between two angles, which is undefined
// when either angle is undefined.
func Diff(a, b torsion.AngleValue) Sample {
	if !a.Defined || !b.Defined {
		return Sample{}
	}
	return Sample{Degrees: circular(a.Degrees, b.Degrees), Defined: true}
}

// Distance returns min(|a-b|, 360-|a-b|) and true, or false if either angle
// is undefined.
func Distance(a, b torsion.AngleValue) (float64, bool) {
	s := Diff(a, b)
	return s.Degrees, s.Defined
}

// circular accepts any finite angles, normalized or not.
func circular(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > MaxDistance {
		d = 360 - d
	}
	return d
}

// Aggregate returns the arithmetic mean of the defined samples. If no sample
// is defined, MaxDistance is returned.
func Aggregate(samples []Sample) float64 {
	var sum float64
	n := 0
	for _, s := range samples {
		if s.Defined {
			sum += s.Degrees
			n++
		}
	}
	if n == 0 {
		return MaxDistance
	}
	return sum / float64(n)
}

// Residues computes the MCQ of two residues over the angle types given. It is
// equivalent to calling Aggregate on the Diff of every type, but does not
// allocate.
func Residues(a, b torsion.ResidueAngles, types []torsion.AngleType) float64 {
	var sum float64
	n := 0
	for _, t := range types {
		if !a.Has(t) || !b.Has(t) {
			continue
		}
		sum += circular(a.Degrees(t), b.Degrees(t))
		n++
	}
	if n == 0 {
		return MaxDistance
	}
	return sum / float64(n)
}

// Compare returns one sample per angle type for a pair of residues, in the
// order of types.
func Compare(a, b torsion.ResidueAngles, types []torsion.AngleType) []Sample {
	samples := make([]Sample, len(types))
	for i, t := range types {
		samples[i] = Diff(a.Get(t), b.Get(t))
	}
	return samples
}
