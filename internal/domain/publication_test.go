package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublicationDefaultsToEnglishUnknownStatus(t *testing.T) {
	p := NewPublication("A Title")
	assert.Equal(t, "A Title", p.OriginalTitle)
	assert.Equal(t, "fallback_english", p.LanguageDetectionStatus)
	assert.Equal(t, StatusCountryUnknownNoMatch, p.Status.Base)
}

func TestSetLCCNNormalizesIdentifier(t *testing.T) {
	p := NewPublication("Title")
	p.SetLCCN("25-12345")
	assert.Equal(t, "25-12345", p.LCCN)
	assert.Equal(t, "25012345", p.NormalizedLCCN)
	assert.Equal(t, "25012345", p.IdentifierKey())
}

func TestSetLCCNEmptyLeavesNormalizedEmpty(t *testing.T) {
	p := NewPublication("Title")
	p.SetLCCN("")
	assert.Empty(t, p.NormalizedLCCN)
}

func TestSetPubDateExtractsYearWhenAbsent(t *testing.T) {
	p := NewPublication("Title")
	p.SetPubDateAndExtractYear("c1950.")
	require.True(t, p.HasYear)
	assert.Equal(t, 1950, p.Year)
}

func TestSetPubDateDoesNotOverrideExistingYear(t *testing.T) {
	p := NewPublication("Title")
	p.Year, p.HasYear = 1940, true
	p.SetPubDateAndExtractYear("c1950.")
	assert.Equal(t, 1940, p.Year)
}

func TestSetRegistrationMatchRewritesSourceType(t *testing.T) {
	p := NewPublication("Title")
	m := &Match{SourceType: SourceTypeRenewal, CombinedScore: 80}
	p.SetRegistrationMatch(m)
	assert.True(t, p.HasRegistrationMatch())
	assert.Equal(t, SourceTypeRegistration, p.RegistrationMatch.SourceType)
}

func TestSetRenewalMatchRewritesSourceType(t *testing.T) {
	p := NewPublication("Title")
	m := &Match{SourceType: SourceTypeRegistration, CombinedScore: 80}
	p.SetRenewalMatch(m)
	assert.True(t, p.HasRenewalMatch())
	assert.Equal(t, SourceTypeRenewal, p.RenewalMatch.SourceType)
}

func TestSetRegistrationMatchNilClearsSlot(t *testing.T) {
	p := NewPublication("Title")
	p.SetRegistrationMatch(&Match{CombinedScore: 80})
	p.SetRegistrationMatch(nil)
	assert.False(t, p.HasRegistrationMatch())
}

func TestTitleIsMemoizedAndResetClearsCache(t *testing.T) {
	p := NewPublication("  [A Bracket] Real Title  ")
	first := p.Title()
	assert.NotContains(t, first, "[A Bracket]")

	p.OriginalTitle = "An Entirely Different Title"
	assert.Equal(t, first, p.Title(), "Title() should be memoized across calls")

	p.Reset()
	assert.NotEqual(t, first, p.Title(), "Reset should clear the memoized title cache")
}

func TestSortScoreIdentifierMatchDominates(t *testing.T) {
	p := NewPublication("Title")
	p.SetRegistrationMatch(&Match{MatchType: MatchTypeIdentifier, CombinedScore: 10})
	assert.Equal(t, 1000.0, p.SortScore())
}

func TestSortScoreBothMatchesAverages(t *testing.T) {
	p := NewPublication("Title")
	p.SetRegistrationMatch(&Match{MatchType: MatchTypeSimilarity, CombinedScore: 80})
	p.SetRenewalMatch(&Match{MatchType: MatchTypeSimilarity, CombinedScore: 60})
	assert.Equal(t, 70.0, p.SortScore())
}

func TestSortScoreRenewalOnlyAppliesDiscount(t *testing.T) {
	p := NewPublication("Title")
	p.SetRenewalMatch(&Match{MatchType: MatchTypeSimilarity, CombinedScore: 80})
	assert.Equal(t, 72.0, p.SortScore())
}

func TestSortScoreNoMatchesIsZero(t *testing.T) {
	p := NewPublication("Title")
	assert.Equal(t, 0.0, p.SortScore())
}

func TestCheckDataCompletenessFlagsMissingFields(t *testing.T) {
	p := NewPublication("Title")
	issues := p.CheckDataCompleteness()
	assert.Contains(t, issues, "missing_year")
	assert.Contains(t, issues, "missing_publisher")
	assert.Contains(t, issues, "missing_author")
	assert.Contains(t, issues, "unknown_country")
}

func TestCheckDataCompletenessCleanRecordHasNoIssues(t *testing.T) {
	p := NewPublication("Title")
	p.Year, p.HasYear = 1950, true
	p.OriginalPublisher = "Acme"
	p.OriginalAuthor = "Smith"
	p.CountryCode = "nyu"
	p.CountryClassification = CountryUS
	assert.Empty(t, p.CheckDataCompleteness())
}

func TestNormalizedTitleTokensFiltersShortTokens(t *testing.T) {
	p := NewPublication("A Book of Things")
	tokens := p.NormalizedTitleTokens()
	for _, tok := range tokens {
		assert.GreaterOrEqual(t, len(tok), 2)
	}
}
