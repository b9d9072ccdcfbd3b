package refloader

import "github.com/pulibrary/marc-copyright/internal/domain"

// MemoryLoader is a trivial Loader backed by a pre-built in-memory
// slice, used by tests and by callers that have already parsed a
// reference corpus through some other means (e.g. a TSV reader built
// outside this module's scope).
type MemoryLoader struct {
	Publications []*domain.Publication
	Max          int
}

// NewMemoryLoader returns a Loader over an already-materialized slice
// of reference Publications.
func NewMemoryLoader(pubs []*domain.Publication, maxDataYear int) *MemoryLoader {
	return &MemoryLoader{Publications: pubs, Max: maxDataYear}
}

func (m *MemoryLoader) Load() ([]*domain.Publication, error) { return m.Publications, nil }

func (m *MemoryLoader) MaxDataYear() int { return m.Max }
