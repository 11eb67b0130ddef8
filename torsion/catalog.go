package torsion

import (
	"fmt"
	"strings"
)

// Catalog is the set of angle types known to a computation, grouped by
// molecule class. A catalog is constructed explicitly and handed to whatever
// needs it; it is never modified after construction.
type Catalog struct {
	byName  map[string]AngleType
	byClass map[MoleculeClass][]AngleType
}

// DefaultCatalog returns a catalog of every angle type in this package.
func DefaultCatalog() Catalog {
	types := make([]AngleType, numAngleTypes)
	for i := range types {
		types[i] = AngleType(i)
	}
	return NewCatalog(types...)
}

// NewCatalog builds a catalog restricted to the angle types given. Invalid
// types and duplicates are ignored.
func NewCatalog(types ...AngleType) Catalog {
	cat := Catalog{
		byName:  make(map[string]AngleType, len(types)),
		byClass: make(map[MoleculeClass][]AngleType, 2),
	}
	for _, t := range types {
		if !t.Valid() {
			continue
		}
		if _, ok := cat.byName[t.Name()]; ok {
			continue
		}
		cat.byName[t.Name()] = t
		cat.byClass[t.Class()] = append(cat.byClass[t.Class()], t)
	}
	return cat
}

// Angles returns all angle types of a molecule class in table order.
func (cat Catalog) Angles(class MoleculeClass) []AngleType {
	return append([]AngleType(nil), cat.byClass[class]...)
}

// MainAngles returns the default comparison set for each class given, in
// the order the classes are given. With no classes, the main angles of RNA
// and then protein are returned. (This is the set used when comparing
// structures of unknown composition.)
func (cat Catalog) MainAngles(classes ...MoleculeClass) []AngleType {
	if len(classes) == 0 {
		classes = []MoleculeClass{RNA, Protein}
	}
	var mains []AngleType
	for _, class := range classes {
		for _, t := range cat.byClass[class] {
			if t.IsMain() {
				mains = append(mains, t)
			}
		}
	}
	return mains
}

// Lookup finds an angle type by its (case insensitive) name.
func (cat Catalog) Lookup(name string) (AngleType, bool) {
	t, ok := cat.byName[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// ParseList parses a comma separated list of angle names. The special names
// "main", "protein" and "rna" expand to the main angles of both classes,
// protein only, and RNA only, respectively.
func (cat Catalog) ParseList(list string) ([]AngleType, error) {
	var types []AngleType
	seen := make(map[AngleType]bool)
	add := func(ts ...AngleType) {
		for _, t := range ts {
			if !seen[t] {
				seen[t] = true
				types = append(types, t)
			}
		}
	}
	for _, field := range strings.Split(list, ",") {
		field = strings.ToLower(strings.TrimSpace(field))
		switch field {
		case "":
			continue
		case "main":
			add(cat.MainAngles()...)
		case "protein":
			add(cat.MainAngles(Protein)...)
		case "rna":
			add(cat.MainAngles(RNA)...)
		default:
			t, ok := cat.Lookup(field)
			if !ok {
				return nil, fmt.Errorf("Unknown torsion angle '%s'.", field)
			}
			add(t)
		}
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("No torsion angles found in '%s'.", list)
	}
	return types, nil
}
