package matcher

import (
	"testing"

	"github.com/pulibrary/marc-copyright/internal/domain"
	"github.com/pulibrary/marc-copyright/internal/generictitle"
	"github.com/pulibrary/marc-copyright/internal/indexer"
)

func pub(title, author, publisher string, year int) *domain.Publication {
	p := domain.NewPublication(title)
	p.OriginalAuthor = author
	p.OriginalMainAuthor = author
	p.OriginalPublisher = publisher
	if year != 0 {
		p.Year, p.HasYear = year, true
	}
	return p
}

func buildIndex(refs ...*domain.Publication) *indexer.Index {
	idx := indexer.New()
	for _, r := range refs {
		idx.Add(r)
	}
	idx.Build()
	return idx
}

func TestFindBestMatchReturnsNilForEmptyCandidates(t *testing.T) {
	idx := buildIndex(pub("Completely Unrelated", "Nobody", "NoPub", 1800))
	query := pub("Some Other Title Entirely", "Someone Else", "OtherPub", 1999)
	e := NewEngine(DefaultConfig(), nil)
	if got := e.FindBestMatch(query, idx); got != nil {
		t.Errorf("expected nil match, got %+v", got)
	}
}

func TestFindBestMatchReturnsStrongCandidate(t *testing.T) {
	idx := buildIndex(pub("Test Book About Things", "Smith", "Acme", 1950))
	query := pub("Test Book About Things", "Smith", "Acme", 1950)
	e := NewEngine(DefaultConfig(), nil)
	got := e.FindBestMatch(query, idx)
	if got == nil {
		t.Fatal("expected a match")
	}
	if got.CombinedScore < 70 {
		t.Errorf("expected a high combined score for near-identical fields, got %v", got.CombinedScore)
	}
	if got.MatchType != domain.MatchTypeSimilarity {
		t.Errorf("expected similarity match type, got %v", got.MatchType)
	}
}

func TestIdentifierMatchDominatesRegardlessOfFieldScores(t *testing.T) {
	ref := pub("Minimal", "", "", 1950)
	ref.SetLCCN("25-12345")
	idx := buildIndex(ref)

	query := pub("Something Entirely Different", "", "", 1950)
	query.SetLCCN("25012345")

	e := NewEngine(DefaultConfig(), nil)
	got := e.FindBestMatch(query, idx)
	if got == nil {
		t.Fatal("expected identifier-based match")
	}
	if got.MatchType != domain.MatchTypeIdentifier {
		t.Errorf("expected identifier match type, got %v", got.MatchType)
	}
	if got.TitleScore != domain.ScoreNotComputed {
		t.Errorf("expected strict-mode identifier match to record scores as not-computed, got %v", got.TitleScore)
	}
}

func TestYearToleranceRejectsOutOfWindowCandidate(t *testing.T) {
	idx := buildIndex(pub("Test Book About Things", "Smith", "Acme", 1900))
	query := pub("Test Book About Things", "Smith", "Acme", 1950)
	cfg := DefaultConfig()
	cfg.YearTolerance = 1
	e := NewEngine(cfg, nil)
	if got := e.FindBestMatch(query, idx); got != nil {
		t.Errorf("expected year-tolerance rejection, got %+v", got)
	}
}

func TestGenericTitleRequiresHigherAuthorBar(t *testing.T) {
	ref := pub("Report", "US Navy", "GPO", 1960)
	idx := buildIndex(ref)
	query := pub("Report", "Different Author Entirely", "GPO", 1960)

	detector := generictitle.New(generictitle.DefaultGenericPatterns(), 0)
	cfg := DefaultConfig()
	cfg.YearTolerance = 1
	e := NewEngine(cfg, detector)

	got := e.FindBestMatch(query, idx)
	if got != nil {
		t.Errorf("expected generic-title bar to reject a weak author match, got %+v", got)
	}
}

func TestMissingYearQueryRejectedWithoutBruteForce(t *testing.T) {
	idx := buildIndex(pub("Test Book About Things", "Smith", "Acme", 1950))
	query := pub("Test Book About Things", "Smith", "Acme", 0)
	e := NewEngine(DefaultConfig(), nil)
	if got := e.FindBestMatch(query, idx); got != nil {
		t.Errorf("expected a missing-year query to be rejected with BruteForceMissingYear disabled, got %+v", got)
	}
}

func TestMissingYearQueryMatchesWithBruteForceEnabled(t *testing.T) {
	idx := buildIndex(pub("Test Book About Things", "Smith", "Acme", 1950))
	query := pub("Test Book About Things", "Smith", "Acme", 0)
	cfg := DefaultConfig()
	cfg.BruteForceMissingYear = true
	e := NewEngine(cfg, nil)
	got := e.FindBestMatch(query, idx)
	if got == nil {
		t.Fatal("expected a missing-year query to match with BruteForceMissingYear enabled")
	}
	if got.MatchType != domain.MatchTypeBruteForceWithoutYear {
		t.Errorf("expected brute-force-without-year match type, got %v", got.MatchType)
	}
}

func TestScoreEverythingHonorsMinimumCombinedScore(t *testing.T) {
	idx := buildIndex(pub("Test Book About Things", "Nobody Similar", "OtherPub", 1950))
	query := pub("Test Book About Things", "Nobody Similar", "OtherPub", 1950)

	cfg := DefaultConfig()
	cfg.ScoreEverything = true
	cfg.HasMinCombinedScore = true
	cfg.MinimumCombinedScore = 99
	e := NewEngine(cfg, nil)

	got := e.FindBestMatch(query, idx)
	if got == nil {
		t.Fatal("expected an exact-field match to clear a 99 minimum combined score")
	}

	cfg.MinimumCombinedScore = 101
	e2 := NewEngine(cfg, nil)
	if got := e2.FindBestMatch(query, idx); got != nil {
		t.Errorf("expected an unreachable minimum combined score to reject every candidate, got %+v", got)
	}
}
