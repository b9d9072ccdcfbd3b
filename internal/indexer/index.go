// Package indexer implements the Candidate Index: a multi-key inverted
// index over a reference corpus supporting identifier, title-word,
// author-word, publisher-word, and year-bucketed candidate lookup.
// Generalized from a single token-to-entry inverted index to four
// parallel maps plus a year index.
package indexer

import "github.com/pulibrary/marc-copyright/internal/domain"

// UnknownYear is the bucket key used for reference entries lacking an
// extracted year, so every indexed publication appears in the year
// index.
const UnknownYear = -1

// Index is a composite, append-only-until-built structure over a fixed
// reference corpus. After Build it is treated as immutable and safe
// for concurrent read access from multiple workers.
type Index struct {
	entries []*domain.Publication

	identifier map[string][]int
	titleWord  map[string][]int
	authorWord map[string][]int
	pubWord    map[string][]int
	year       map[int][]int

	built bool
}

// New returns an empty Index ready to accept Add calls.
func New() *Index {
	return &Index{
		identifier: make(map[string][]int),
		titleWord:  make(map[string][]int),
		authorWord: make(map[string][]int),
		pubWord:    make(map[string][]int),
		year:       make(map[int][]int),
	}
}

// Add appends a reference Publication to the index, registering it
// under every applicable key. Add must not be called after Build.
func (idx *Index) Add(p *domain.Publication) {
	if idx.built {
		panic("indexer: Add called after Build")
	}
	pos := len(idx.entries)
	idx.entries = append(idx.entries, p)

	if key := p.IdentifierKey(); key != "" {
		idx.identifier[key] = append(idx.identifier[key], pos)
	}
	for _, tok := range p.NormalizedTitleTokens() {
		idx.titleWord[tok] = append(idx.titleWord[tok], pos)
	}
	for _, tok := range p.NormalizedAuthorTokens() {
		idx.authorWord[tok] = append(idx.authorWord[tok], pos)
	}
	for _, tok := range p.NormalizedPublisherTokens() {
		idx.pubWord[tok] = append(idx.pubWord[tok], pos)
	}

	yearKey := UnknownYear
	if p.HasYear {
		yearKey = p.Year
	}
	idx.year[yearKey] = append(idx.year[yearKey], pos)
}

// Build marks the index immutable. Calling it more than once is a no-op.
func (idx *Index) Build() { idx.built = true }

// Len returns the number of indexed reference entries.
func (idx *Index) Len() int { return len(idx.entries) }

// At returns the reference Publication at a position previously
// returned by FindCandidates.
func (idx *Index) At(pos int) *domain.Publication { return idx.entries[pos] }

// Stats reports index composition, useful for diagnostics and for
// cache-key invalidation checks.
func (idx *Index) Stats() map[string]int {
	return map[string]int{
		"entries":          len(idx.entries),
		"identifier_keys":  len(idx.identifier),
		"title_word_keys":  len(idx.titleWord),
		"author_word_keys": len(idx.authorWord),
		"pub_word_keys":    len(idx.pubWord),
		"year_buckets":     len(idx.year),
	}
}
