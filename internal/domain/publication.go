package domain

import (
	"strconv"
	"strings"

	"github.com/pulibrary/marc-copyright/internal/textnorm"
)

// Publication is the central bibliographic entity correlated against the
// registration and renewal reference corpora. Normalized text fields are
// memoized lazily the first time they're read and reset by Reset (called
// after deserialization), mirroring the original's cache invalidation
// without relying on dynamic attribute assignment.
type Publication struct {
	SourceID string
	Source   string

	OriginalTitle     string
	OriginalAuthor    string
	OriginalMainAuthor string
	OriginalPublisher string
	OriginalPlace     string
	OriginalEdition   string
	PubDate           string
	FullText          string

	LCCN           string
	NormalizedLCCN string

	LanguageCode             textnorm.Language
	LanguageDetectionStatus  string

	Year    int
	HasYear bool

	CountryCode           string
	CountryClassification CountryClassification

	RegistrationMatch *Match
	RenewalMatch      *Match

	GenericTitleDetected    bool
	GenericDetectionReason  string
	RegistrationGenericTitle bool
	RenewalGenericTitle      bool

	Status         StatusLabel
	StatusRule     Rule
	SortScoreValue float64
	DataCompleteness []string

	cachedTitle      *string
	cachedAuthor     *string
	cachedMainAuthor *string
	cachedPublisher  *string
	cachedPlace      *string
	cachedEdition    *string
}

// NewPublication constructs a Publication with the given title, English
// as a fallback language, and a COUNTRY_UNKNOWN_NO_MATCH status. The
// identifier and year are set separately via SetLCCN and
// SetPubDateAndExtractYear.
func NewPublication(title string) *Publication {
	p := &Publication{OriginalTitle: title}
	p.LanguageCode = textnorm.English
	p.LanguageDetectionStatus = "fallback_english"
	p.Status = StatusLabel{Base: StatusCountryUnknownNoMatch}
	return p
}

// SetLCCN normalizes and stores an authority identifier.
func (p *Publication) SetLCCN(lccn string) {
	p.LCCN = lccn
	if lccn != "" {
		p.NormalizedLCCN = textnorm.NormalizeIdentifier(lccn)
	}
}

// SetPubDateAndExtractYear stores a publication-date string and, unless
// a year is already set, extracts one from it using the standard year rules.
func (p *Publication) SetPubDateAndExtractYear(pubDate string) {
	p.PubDate = pubDate
	if !p.HasYear && pubDate != "" {
		if y, ok := textnorm.ExtractYear(pubDate); ok {
			p.Year, p.HasYear = y, true
		}
	}
}

// SetRegistrationMatch assigns the registration match slot, rewriting
// its SourceType to the canonical value, per the match-slot-exclusivity
// invariant.
func (p *Publication) SetRegistrationMatch(m *Match) {
	if m != nil {
		m.SourceType = SourceTypeRegistration
	}
	p.RegistrationMatch = m
}

// SetRenewalMatch assigns the renewal match slot, rewriting its
// SourceType to the canonical value.
func (p *Publication) SetRenewalMatch(m *Match) {
	if m != nil {
		m.SourceType = SourceTypeRenewal
	}
	p.RenewalMatch = m
}

func (p *Publication) HasRegistrationMatch() bool { return p.RegistrationMatch != nil }
func (p *Publication) HasRenewalMatch() bool       { return p.RenewalMatch != nil }

// Title returns the title with minimal cleanup (bracket removal plus
// whitespace collapse) only; full matching normalization happens in the
// scorer, not here, so the "original" field stays close to source data.
func (p *Publication) Title() string { return p.memoize(&p.cachedTitle, p.OriginalTitle) }

func (p *Publication) Author() string {
	return p.memoize(&p.cachedAuthor, p.OriginalAuthor)
}

func (p *Publication) MainAuthor() string {
	return p.memoize(&p.cachedMainAuthor, p.OriginalMainAuthor)
}

func (p *Publication) Publisher() string {
	return p.memoize(&p.cachedPublisher, p.OriginalPublisher)
}

func (p *Publication) Place() string { return p.memoize(&p.cachedPlace, p.OriginalPlace) }

func (p *Publication) Edition() string { return p.memoize(&p.cachedEdition, p.OriginalEdition) }

func (p *Publication) memoize(cache **string, original string) string {
	if *cache != nil {
		return **cache
	}
	var cleaned string
	if original != "" {
		if cache == &p.cachedTitle {
			cleaned = textnorm.RemoveBracketedContent(original)
		} else {
			cleaned = original
		}
		cleaned = textnorm.NormalizeMinimal(cleaned)
	}
	*cache = &cleaned
	return cleaned
}

// Reset clears memoized normalized fields, to be called after
// deserializing a Publication from gob/cache so cached pointers aren't
// carried across process boundaries stale. Mirrors the original's
// __setstate__ behavior.
func (p *Publication) Reset() {
	p.cachedTitle = nil
	p.cachedAuthor = nil
	p.cachedMainAuthor = nil
	p.cachedPublisher = nil
	p.cachedPlace = nil
	p.cachedEdition = nil
}

// SortScore computes the ranking priority used to order candidates:
// identifier match -> 1000; both registration and renewal -> mean of
// combined scores; registration only -> its combined score; renewal
// only -> 0.9x its combined score; else 0.
func (p *Publication) SortScore() float64 {
	switch {
	case p.RegistrationMatch != nil && p.RegistrationMatch.MatchType == MatchTypeIdentifier:
		p.SortScoreValue = 1000.0
	case p.RenewalMatch != nil && p.RenewalMatch.MatchType == MatchTypeIdentifier:
		p.SortScoreValue = 1000.0
	case p.RegistrationMatch != nil && p.RenewalMatch != nil:
		p.SortScoreValue = (p.RegistrationMatch.CombinedScore + p.RenewalMatch.CombinedScore) / 2.0
	case p.RegistrationMatch != nil:
		p.SortScoreValue = p.RegistrationMatch.CombinedScore
	case p.RenewalMatch != nil:
		p.SortScoreValue = p.RenewalMatch.CombinedScore * 0.9
	default:
		p.SortScoreValue = 0.0
	}
	return p.SortScoreValue
}

// CheckDataCompleteness populates and returns the list of data-quality
// issues affecting confidence in this record's classification.
func (p *Publication) CheckDataCompleteness() []string {
	issues := p.DataCompleteness[:0]
	if !p.HasYear {
		issues = append(issues, "missing_year")
	}
	if p.OriginalPublisher == "" {
		issues = append(issues, "missing_publisher")
	}
	if p.OriginalAuthor == "" && p.OriginalMainAuthor == "" {
		issues = append(issues, "missing_author")
	}
	if p.GenericTitleDetected {
		issues = append(issues, "generic_title")
	}
	if p.CountryCode == "" || p.CountryClassification == CountryUnknown {
		issues = append(issues, "unknown_country")
	}
	p.DataCompleteness = issues
	return p.DataCompleteness
}

// NormalizedTitleForMatching returns the title under the full
// language-aware matching normalization pipeline, as a single string
// (tokens rejoined), for use by the similarity scorer.
func (p *Publication) NormalizedTitleForMatching() string {
	return textnorm.NormalizeForMatching(p.Title(), p.LanguageCode)
}

// NormalizedAuthorForMatching returns the transcribed author form under
// matching normalization.
func (p *Publication) NormalizedAuthorForMatching() string {
	return textnorm.NormalizeForMatching(p.Author(), p.LanguageCode)
}

// NormalizedMainAuthorForMatching returns the normalized-heading author
// form under matching normalization.
func (p *Publication) NormalizedMainAuthorForMatching() string {
	return textnorm.NormalizeForMatching(p.MainAuthor(), p.LanguageCode)
}

// NormalizedPublisherForMatching returns the publisher under matching
// normalization.
func (p *Publication) NormalizedPublisherForMatching() string {
	return textnorm.NormalizeForMatching(p.Publisher(), p.LanguageCode)
}

// NormalizedTitleTokens returns the tokens of the title under
// language-aware matching normalization, filtered to length >= 2 as the
// indexer requires for title-word keys.
func (p *Publication) NormalizedTitleTokens() []string {
	return filterShortTokens(textnorm.Tokenize(textnorm.NormalizeForMatching(p.Title(), p.LanguageCode)))
}

// NormalizedAuthorTokens returns matching-normalized author tokens
// (statement-of-responsibility form), length-filtered as above.
func (p *Publication) NormalizedAuthorTokens() []string {
	return filterShortTokens(textnorm.Tokenize(textnorm.NormalizeForMatching(p.Author(), p.LanguageCode)))
}

// NormalizedPublisherTokens returns matching-normalized publisher tokens.
func (p *Publication) NormalizedPublisherTokens() []string {
	return filterShortTokens(textnorm.Tokenize(textnorm.NormalizeForMatching(p.Publisher(), p.LanguageCode)))
}

func filterShortTokens(tokens []string) []string {
	out := tokens[:0:0]
	for _, t := range tokens {
		if len(t) >= 2 {
			out = append(out, t)
		}
	}
	return out
}

// IdentifierKey returns the normalized authority-identifier key used for
// identifier-based candidate lookup, or "" when none is set.
func (p *Publication) IdentifierKey() string {
	return p.NormalizedLCCN
}

// String implements fmt.Stringer for debugging/logging.
func (p *Publication) String() string {
	var b strings.Builder
	b.WriteString(p.OriginalTitle)
	if p.HasYear {
		b.WriteString(" (")
		b.WriteString(strconv.Itoa(p.Year))
		b.WriteString(")")
	}
	return b.String()
}
