// Package groundtruth implements the Ground-Truth Extractor:
// identifier-based pair extraction over already-batched MARC
// records, used to evaluate matcher quality independent of the fuzzy
// matching thresholds. It streams over on-disk batch files the same
// way the Batch Coordinator does (internal/batch/coordinator.go), so
// it runs in bounded memory regardless of corpus size.
package groundtruth

import (
	"github.com/pulibrary/marc-copyright/internal/domain"
	"github.com/pulibrary/marc-copyright/internal/marcloader"
)

// Pair is one MARC record whose normalized authority identifier
// matched an entry in a reference corpus, with the reference-side
// entry it paired to.
type Pair struct {
	MARC      *domain.Publication
	Reference *domain.Publication
	IsRenewal bool
}

// Stats is the aggregate-count contract: MARC
// total, MARC records carrying an identifier, registration and
// renewal matches found by identifier, and the count of distinct
// identifiers that matched at least one reference entry.
type Stats struct {
	MARCTotal            int
	MARCWithIdentifier   int
	RegistrationMatches  int
	RenewalMatches       int
	UniqueIdentifiersHit int
}

// byIdentifier indexes a reference corpus's publications by
// normalized authority identifier for O(1) pairing lookups.
func byIdentifier(pubs []*domain.Publication) map[string]*domain.Publication {
	idx := make(map[string]*domain.Publication, len(pubs))
	for _, p := range pubs {
		if key := p.IdentifierKey(); key != "" {
			idx[key] = p
		}
	}
	return idx
}

// Extract streams the MARC batch files at batchPaths, pairing each
// record whose identifier key appears in registration or renewal by
// identifier, and returns the extracted pairs plus aggregate counts.
func Extract(batchPaths []string, registration, renewal []*domain.Publication) ([]Pair, Stats, error) {
	regIdx := byIdentifier(registration)
	renIdx := byIdentifier(renewal)

	var pairs []Pair
	var stats Stats
	hitIdentifiers := make(map[string]struct{})

	for _, path := range batchPaths {
		pubs, err := marcloader.ReadBatchFile(path)
		if err != nil {
			return nil, Stats{}, err
		}
		for _, marc := range pubs {
			stats.MARCTotal++
			key := marc.IdentifierKey()
			if key == "" {
				continue
			}
			stats.MARCWithIdentifier++

			matched := false
			if ref, ok := regIdx[key]; ok {
				pairs = append(pairs, Pair{MARC: marc, Reference: ref, IsRenewal: false})
				stats.RegistrationMatches++
				matched = true
			}
			if ref, ok := renIdx[key]; ok {
				pairs = append(pairs, Pair{MARC: marc, Reference: ref, IsRenewal: true})
				stats.RenewalMatches++
				matched = true
			}
			if matched {
				hitIdentifiers[key] = struct{}{}
			}
		}
	}
	stats.UniqueIdentifiersHit = len(hitIdentifiers)
	return pairs, stats, nil
}
