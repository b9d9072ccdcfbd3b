// Package aggregate implements the Result Aggregator: a commutative
// statistics accumulator keyed by final status label, fed from the
// Batch Coordinator's per-batch results, plus the Exporter interface
// used to render the aggregated publications to an external format.
package aggregate

import (
	"github.com/pulibrary/marc-copyright/internal/batch"
	"github.com/pulibrary/marc-copyright/internal/domain"
)

// Stats is the job-wide statistics summary surfaced to exporters and
// the CLI, built by folding in every batch's AggregateStats.
type Stats struct {
	TotalRecords        int            `json:"totalRecords"`
	USRecords           int            `json:"usRecords"`
	NonUSRecords        int            `json:"nonUsRecords"`
	UnknownCountry      int            `json:"unknownCountry"`
	RegistrationMatches int            `json:"registrationMatches"`
	RenewalMatches      int            `json:"renewalMatches"`
	NoMatches           int            `json:"noMatches"`
	StatusCounts        map[string]int `json:"statusCounts"`
	RecordsWithErrors   int            `json:"recordsWithErrors"`
	BatchesFailed       int            `json:"batchesFailed"`
}

// FromBatchStats converts the Batch Coordinator's AggregateStats into
// the aggregator's exported Stats shape.
func FromBatchStats(s batch.AggregateStats) Stats {
	counts := make(map[string]int, len(s.StatusCounts))
	for k, v := range s.StatusCounts {
		counts[k] = v
	}
	return Stats{
		TotalRecords:        s.TotalRecords,
		USRecords:           s.USRecords,
		NonUSRecords:        s.NonUSRecords,
		UnknownCountry:      s.UnknownCountry,
		RegistrationMatches: s.RegistrationMatches,
		RenewalMatches:      s.RenewalMatches,
		NoMatches:           s.NoMatches,
		StatusCounts:        counts,
		RecordsWithErrors:   s.RecordsWithErrors,
		BatchesFailed:       s.BatchesFailed,
	}
}

// Aggregator collects publications and stats across result files into
// a single in-memory structure bounded by the job's total record
// count (the coordinator already bounds memory per-batch; the
// aggregator's job is just to fold the pieces back together for
// reporting and export).
type Aggregator struct {
	Stats        batch.AggregateStats
	Publications []*domain.Publication
}

// New returns an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{Stats: batch.NewAggregateStats()}
}

// AddResult folds one batch Result's stats and publications in,
// recomputing the per-status-label breakdown from the decoded
// publications so the aggregator can be rebuilt purely from on-disk
// result files (e.g. by a separate reporting command) without needing
// the coordinator's in-memory per-batch AggregateStats.
func (a *Aggregator) AddResult(result batch.Result) {
	contribution := batch.NewAggregateStats()
	contribution.RecordsWithErrors = result.Stats.RecordsWithErrors
	if result.Stats.Failed {
		contribution.BatchesFailed = 1
	}
	for _, p := range result.Publications {
		contribution.TotalRecords++
		switch p.CountryClassification {
		case domain.CountryUS:
			contribution.USRecords++
		case domain.CountryNonUS:
			contribution.NonUSRecords++
		default:
			contribution.UnknownCountry++
		}
		if p.HasRegistrationMatch() {
			contribution.RegistrationMatches++
		}
		if p.HasRenewalMatch() {
			contribution.RenewalMatches++
		}
		if !p.HasRegistrationMatch() && !p.HasRenewalMatch() {
			contribution.NoMatches++
		}
		contribution.StatusCounts[p.Status.String()]++
	}

	a.Stats.Add(contribution)
	a.Publications = append(a.Publications, result.Publications...)
}

// FinalStats returns the exporter-facing Stats snapshot.
func (a *Aggregator) FinalStats() Stats {
	return FromBatchStats(a.Stats)
}
