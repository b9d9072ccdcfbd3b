package indexer

import "github.com/pulibrary/marc-copyright/internal/domain"

// positionSet is an unordered set of reference positions. Ordering
// among candidates is explicitly the matcher's responsibility, not the
// indexer's.
type positionSet map[int]struct{}

func newPositionSet() positionSet { return make(positionSet) }

func (s positionSet) addAll(positions []int) {
	for _, p := range positions {
		s[p] = struct{}{}
	}
}

func (s positionSet) intersect(other positionSet) positionSet {
	out := newPositionSet()
	for p := range s {
		if _, ok := other[p]; ok {
			out[p] = struct{}{}
		}
	}
	return out
}

func (s positionSet) toSlice() []int {
	out := make([]int, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	return out
}

// FindCandidates runs the four-step lookup protocol against a query
// Publication.
//
//  1. Identifier exact-hit short-circuits everything else.
//  2. Year-window candidates (± tolerance, plus the unknown-year
//     bucket) intersected with the union of title-word candidates.
//  3. If empty, fall back to author-word candidates intersected with
//     year candidates.
//  4. If still empty and bruteForceWithoutYear is enabled, return the
//     union of title-word candidates regardless of year.
func (idx *Index) FindCandidates(query *domain.Publication, yearTolerance int, bruteForceWithoutYear bool) []int {
	if key := query.IdentifierKey(); key != "" {
		if positions, ok := idx.identifier[key]; ok && len(positions) > 0 {
			return append([]int(nil), positions...)
		}
	}

	titleCandidates := idx.unionWords(idx.titleWord, query.NormalizedTitleTokens())

	yearCandidates := idx.yearWindow(query, yearTolerance)
	intersected := titleCandidates.intersect(yearCandidates)
	if len(intersected) > 0 {
		return intersected.toSlice()
	}

	authorCandidates := idx.unionWords(idx.authorWord, query.NormalizedAuthorTokens())
	fallback := authorCandidates.intersect(yearCandidates)
	if len(fallback) > 0 {
		return fallback.toSlice()
	}

	if bruteForceWithoutYear {
		return titleCandidates.toSlice()
	}
	return nil
}

func (idx *Index) unionWords(table map[string][]int, tokens []string) positionSet {
	out := newPositionSet()
	for _, tok := range tokens {
		out.addAll(table[tok])
	}
	return out
}

// yearWindow returns the union of the unknown-year bucket with every
// year within tolerance of the query year. A query lacking a year
// restricts to the unknown-year bucket alone: whether it is allowed to
// match candidates with a known year at all is the brute-force gate's
// decision (step 4 of FindCandidates), not this window's.
func (idx *Index) yearWindow(query *domain.Publication, tolerance int) positionSet {
	out := newPositionSet()
	out.addAll(idx.year[UnknownYear])
	if !query.HasYear {
		return out
	}
	for y := query.Year - tolerance; y <= query.Year+tolerance; y++ {
		out.addAll(idx.year[y])
	}
	return out
}
