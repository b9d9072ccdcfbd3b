package cmd

import (
	"fmt"
	"os"

	"github.com/pulibrary/marc-copyright/internal/diskcache"
	"github.com/pulibrary/marc-copyright/internal/generictitle"
	"github.com/pulibrary/marc-copyright/internal/indexer"
	"github.com/pulibrary/marc-copyright/internal/refloader"
)

// buildIndexFromFile loads a reference corpus file (written by
// refloader.WriteFile) and builds a Candidate Index over it, checking
// the persistent cache first so an unchanged corpus is never
// re-indexed across runs.
func buildIndexFromFile(path string, cache *diskcache.Cache) (*indexer.Index, int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, fmt.Errorf("index: stat reference file %s: %w", path, err)
	}
	key := diskcache.Key(path, info.ModTime().String(), fmt.Sprint(info.Size()))

	if entry, ok, err := cache.LoadIndexEntry(key); err == nil && ok {
		idx := indexer.New()
		for _, p := range entry.Publications {
			idx.Add(p)
		}
		idx.Build()
		return idx, entry.MaxDataYear, nil
	}

	loader := &refloader.FileLoader{Path: path}
	pubs, err := loader.Load()
	if err != nil {
		return nil, 0, fmt.Errorf("index: load reference file %s: %w", path, err)
	}

	idx := indexer.New()
	for _, p := range pubs {
		idx.Add(p)
	}
	idx.Build()

	maxDataYear := loader.MaxDataYear()
	if err := cache.StoreIndexEntry(key, diskcache.IndexEntry{Publications: pubs, MaxDataYear: maxDataYear}); err != nil {
		return idx, maxDataYear, nil
	}
	return idx, maxDataYear, nil
}

// buildGenericDetector precomputes a generic-title detector's
// frequency table over every entry of the given indexes, the way the
// generic-title detector is cached alongside the index it describes.
// Rebuilding it from an index's entries (rather than persisting a
// separate serialized frequency table) keeps it correct across a cache
// hit for free, since entries loaded from the Persistent Cache are the
// same publications the frequency table would otherwise be computed
// from.
func buildGenericDetector(frequencyThreshold int, indexes ...*indexer.Index) *generictitle.Detector {
	detector := generictitle.New(generictitle.DefaultGenericPatterns(), frequencyThreshold)
	for _, idx := range indexes {
		if idx == nil {
			continue
		}
		for i := 0; i < idx.Len(); i++ {
			detector.Observe(idx.At(i).NormalizedTitleForMatching())
		}
	}
	return detector
}
