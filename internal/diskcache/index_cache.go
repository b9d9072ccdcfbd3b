package diskcache

import "github.com/pulibrary/marc-copyright/internal/domain"

// IndexEntry is the gob-encodable snapshot of one Candidate Index
// built from a reference corpus, cached keyed on the corpus file's
// path and modification time so a later run with an unchanged corpus
// skips re-parsing and re-indexing it entirely.
type IndexEntry struct {
	Publications []*domain.Publication
	MaxDataYear  int
}

// LoadIndexEntry is a typed convenience over Load for IndexEntry
// values, resetting each Publication's memoized fields the way every
// other gob round-trip in this module does.
func (c *Cache) LoadIndexEntry(key string) (IndexEntry, bool, error) {
	var entry IndexEntry
	ok, err := c.Load(key, &entry)
	if err != nil || !ok {
		return IndexEntry{}, ok, err
	}
	for _, p := range entry.Publications {
		p.Reset()
	}
	return entry, true, nil
}

// StoreIndexEntry is a typed convenience over Store for IndexEntry values.
func (c *Cache) StoreIndexEntry(key string, entry IndexEntry) error {
	return c.Store(key, entry)
}
