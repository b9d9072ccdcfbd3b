package domain

// Match is a scored link from a Publication to a reference corpus entry.
//
// Field scores are in [0, 100], or ScoreNotComputed when the match was
// established by identifier equality in strict mode.
type Match struct {
	MatchedTitle     string
	MatchedAuthor    string
	MatchedPublisher string
	MatchedDate      string
	SourceID         string
	SourceType       SourceType

	TitleScore      float64
	AuthorScore     float64
	PublisherScore  float64
	CombinedScore   float64
	YearDifference  int
	MatchType       MatchType
}

// Clone returns a deep copy; Match has no reference fields so a value
// copy suffices, but Clone documents the intent at call sites that need
// an independent mutable copy (e.g. before rewriting SourceType).
func (m Match) Clone() *Match {
	c := m
	return &c
}
