// Package scoring implements the field-level fuzzy similarity measures
// and weighted score combination used by the matching engine. Scores
// are deterministic, side-effect free, and safe to call concurrently
// from multiple workers, using a token-set fuzzy ratio suited to
// bibliographic text.
package scoring

import (
	"sort"
	"strings"
)

// TokenSetRatio returns a commutative similarity score in [0, 100]
// between two whitespace-tokenized strings that are assumed to already
// be normalized (lower-cased, stemmed, stopword-filtered). It is
// tolerant of word-order differences: two strings built from the same
// token multiset score 100 regardless of order.
func TokenSetRatio(a, b string) float64 {
	if a == "" && b == "" {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}

	tokensA := dedupeTokens(strings.Fields(a))
	tokensB := dedupeTokens(strings.Fields(b))

	setA := toSet(tokensA)
	setB := toSet(tokensB)

	intersection := intersect(setA, setB)
	sortedIntersection := strings.Join(sortedKeys(intersection), " ")
	sortedA := strings.Join(sortedKeys(setA), " ")
	sortedB := strings.Join(sortedKeys(setB), " ")

	// The standard token-set ratio takes the best of three comparisons:
	// the shared tokens alone against each full token set, and the two
	// full sets against each other. This makes the measure tolerant of
	// one side containing extra qualifying words the other lacks.
	best := ratio(sortedIntersection, sortedA)
	if r := ratio(sortedIntersection, sortedB); r > best {
		best = r
	}
	if r := ratio(sortedA, sortedB); r > best {
		best = r
	}
	return best
}

// ratio returns a normalized-edit-distance similarity in [0, 100]: 100
// when the strings are identical, degrading with Levenshtein distance
// relative to the longer string's length.
func ratio(a, b string) float64 {
	if a == b {
		return 100
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 100
	}
	dist := levenshtein(a, b)
	similarity := 1.0 - float64(dist)/float64(maxLen)
	if similarity < 0 {
		similarity = 0
	}
	return similarity * 100
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = minOf3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func minOf3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func dedupeTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := tokens[:0:0]
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func toSet(tokens []string) map[string]struct{} {
	m := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		m[t] = struct{}{}
	}
	return m
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
