/*
Package mcq implements the circular distance between torsion angles and its
aggregation into a Mean of Circular Quantities (MCQ) score.

All distances are in degrees and lie in [0, 180]. Missing data is excluded
from a mean rather than padded; a mean over no data at all is the worst
possible score, MaxDistance.
*/
package mcq
