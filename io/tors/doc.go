/*
Package tors reads and writes torsion angle tables: plain text files with one
residue per line, which is how selections are handed to this module by
whatever computes torsion angles from atomic coordinates.

A table starts with a header naming its columns. The first five columns are
fixed; every column after them names a torsion angle:

	# comments and blank lines are ignored
	chain	number	icode	name	class	phi	psi	omega
	A	1	-	MET	protein	-	142.1	178.3
	A	2	-	LYS	protein	-63.5	-41.2	179.9

Fields are separated by tabs (or, failing that, by runs of spaces). An
undefined angle, or an empty insertion code, is written as "-". "NaN" is
also read as an undefined angle.
*/
package tors
