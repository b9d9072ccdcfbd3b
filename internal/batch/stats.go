package batch

// RecordStats is the per-batch statistics structure required
// in every result file.
type RecordStats struct {
	BatchID                  string
	MarcCount                int
	RegistrationMatchesFound int
	RenewalMatchesFound      int
	SkippedRecords           int
	ProcessingTimeSeconds    float64
	RecordsWithErrors        int
	Failed                   bool
}

// AggregateStats is the job-wide statistics map, combined via
// "Aggregated output", with one counter per final status label
// encountered. Addition is commutative by construction (plain integer
// sums), satisfying the commutativity-of-aggregation invariant
// regardless of the order batches complete in.
type AggregateStats struct {
	TotalRecords        int
	USRecords           int
	NonUSRecords        int
	UnknownCountry      int
	RegistrationMatches int
	RenewalMatches      int
	NoMatches           int
	StatusCounts        map[string]int
	RecordsWithErrors   int
	BatchesFailed       int
}

// NewAggregateStats returns a zeroed AggregateStats ready for Add.
func NewAggregateStats() AggregateStats {
	return AggregateStats{StatusCounts: make(map[string]int)}
}

// Add merges other into s in place. Safe to call in any order across
// completed batches since every component operation is a commutative
// integer sum.
func (s *AggregateStats) Add(other AggregateStats) {
	s.TotalRecords += other.TotalRecords
	s.USRecords += other.USRecords
	s.NonUSRecords += other.NonUSRecords
	s.UnknownCountry += other.UnknownCountry
	s.RegistrationMatches += other.RegistrationMatches
	s.RenewalMatches += other.RenewalMatches
	s.NoMatches += other.NoMatches
	s.RecordsWithErrors += other.RecordsWithErrors
	s.BatchesFailed += other.BatchesFailed
	if s.StatusCounts == nil {
		s.StatusCounts = make(map[string]int)
	}
	for k, v := range other.StatusCounts {
		s.StatusCounts[k] += v
	}
}
