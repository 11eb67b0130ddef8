/*
Package torsion describes the torsion angles used to compare macromolecular
backbones: the angle types themselves (grouped by molecule class), a single
residue's set of angle values and an immutable catalog of the angle types
that are known.

Angle values are always in degrees and always normalized into [0, 360). An
angle may be undefined, which usually means the residue is missing one of the
atoms needed to compute the dihedral (terminal residues lack phi or psi, for
example).
*/
package torsion
