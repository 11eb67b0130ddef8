/*
Package matching finds corresponding fragments of two selections whose
backbone geometry is similar, as measured by the MCQ of their torsion angles.

The matcher is local rather than global: it does not align every residue,
but reports the maximal contiguous runs of residue pairs whose per-position
MCQ stays below a threshold.

Matching proceeds in six steps:

	1. A distance matrix D[i][j] is computed between every residue i of the
	   left selection and every residue j of the right selection. This is
	   the expensive step and is spread over several goroutines, one row at
	   a time.
	2. Every pair (i, j) with D[i][j] <= Threshold is an anchor.
	3. Each anchor is extended in both directions along its diagonal while
	   the distance stays below the threshold. Up to GapTolerance consecutive
	   positions above the threshold may be bridged if the run picks up
	   again afterwards. Extension stops at chain breaks in either selection.
	4. Fragments shorter than MinLength are discarded.
	5. Overlapping fragments are resolved: lower scores win, then longer
	   fragments, then the fragment whose earlier start (on either side) is
	   smaller, then the one whose later start is smaller. A fragment
	   overlaps another if their ranges intersect in either selection. The
	   loser keeps the runs of at least MinLength positions it does not
	   share, which compete again with everything left.
	6. The survivors are sorted by their starting position on the left.

No fragments at all is a normal result, not an error. The only errors are
an invalid configuration (reported by New) and cancellation of the context
given to Match.
*/
package matching
