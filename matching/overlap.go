package matching

import "sort"

// resolveOverlaps picks fragments such that no residue of either selection
// belongs to more than one of them. The result is sorted by position on the
// left.
//
// Candidates are taken best first. A candidate that clashes with a fragment
// already picked is not thrown away: the positions that clash are cut out
// and whatever runs of at least minLength remain go back into the pool to be
// ranked again.
//
// Two candidates that are mirror images of each other (see mirrors) cannot
// be ordered without favoring one of the selections, so they are taken
// together and each is cut against the other.
func resolveOverlaps(candidates []Fragment, minLength int) []Fragment {
	pool := make([]Fragment, len(candidates))
	copy(pool, candidates)

	kept := make([]Fragment, 0, len(pool))
	for len(pool) > 0 {
		best := 0
		for i := range pool {
			if pool[i].better(pool[best]) {
				best = i
			}
		}
		group := []Fragment{pool[best]}
		pool = removeFragment(pool, best)
		for i := range pool {
			if group[0].mirrors(pool[i]) {
				group = append(group, pool[i])
				pool = removeFragment(pool, i)
				break
			}
		}

		for i, f := range group {
			blockers := append([]Fragment(nil), kept...)
			for j, g := range group {
				if i != j {
					blockers = append(blockers, g)
				}
			}
			if !f.overlapsAny(blockers) {
				kept = append(kept, f)
				continue
			}
			pool = append(pool, f.without(blockers, minLength)...)
		}
	}
	sort.Sort(fragments(kept))
	return kept
}

func removeFragment(fs []Fragment, i int) []Fragment {
	return append(fs[:i], fs[i+1:]...)
}
