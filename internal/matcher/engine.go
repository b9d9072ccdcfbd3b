// Package matcher implements the Matching Engine: per-query candidate
// selection over a Candidate Index, with threshold gating, early-exit
// optimization, year-tolerance filtering, and generic-title handling.
// Strict mode gates each candidate on per-field title/author/publisher
// thresholds; score-everything mode gates only on the optional minimum
// combined score.
package matcher

import (
	"github.com/pulibrary/marc-copyright/internal/domain"
	"github.com/pulibrary/marc-copyright/internal/generictitle"
	"github.com/pulibrary/marc-copyright/internal/indexer"
	"github.com/pulibrary/marc-copyright/internal/scoring"
)

// Engine selects, for a query Publication and a Candidate Index, the
// single best-matching reference entry under the configured
// thresholds.
type Engine struct {
	Config  Config
	Generic *generictitle.Detector
}

// NewEngine returns a Matching Engine. A nil generic detector disables
// generic-title handling (step 5 becomes a no-op).
func NewEngine(cfg Config, generic *generictitle.Detector) *Engine {
	return &Engine{Config: cfg, Generic: generic}
}

type candidateScore struct {
	position       int
	titleScore     float64
	authorScore    float64
	publisherScore float64
	combinedScore  float64
	matchType      domain.MatchType
	yearDiff       int
}

// FindBestMatch runs the full candidate-selection procedure and
// returns the resulting Match, or nil when no candidate survives.
func (e *Engine) FindBestMatch(query *domain.Publication, idx *indexer.Index) *domain.Match {
	positions := idx.FindCandidates(query, e.Config.YearTolerance, e.Config.BruteForceMissingYear)
	if len(positions) == 0 {
		return nil
	}

	queryGeneric, queryReason := e.classifyGeneric(query)

	var best *candidateScore
	var bestRef *domain.Publication

	for _, pos := range positions {
		ref := idx.At(pos)
		cs, ok := e.evaluateCandidate(query, ref, pos, queryGeneric)
		if !ok {
			continue
		}
		if e.isEarlyExit(cs) {
			return e.buildMatch(query, ref, cs, queryGeneric, queryReason)
		}
		if best == nil || cs.combinedScore > best.combinedScore {
			best = cs
			bestRef = ref
		}
	}

	if best == nil {
		return nil
	}
	return e.buildMatch(query, bestRef, best, queryGeneric, queryReason)
}

func (e *Engine) classifyGeneric(p *domain.Publication) (bool, string) {
	if e.Generic == nil {
		return false, ""
	}
	return e.Generic.IsGeneric(p.NormalizedTitleForMatching())
}

// evaluateCandidate computes scores and applies every gate except
// early-exit (handled by the caller, which needs the raw score to
// decide whether to short-circuit).
func (e *Engine) evaluateCandidate(query, ref *domain.Publication, pos int, queryGeneric bool) (*candidateScore, bool) {
	yearDiff, yearOK := e.checkYearTolerance(query, ref)

	identifierMatch := query.IdentifierKey() != "" && query.IdentifierKey() == ref.IdentifierKey()
	bruteForce := !query.HasYear && e.Config.BruteForceMissingYear

	if !yearOK && !bruteForce {
		return nil, false
	}

	matchType := domain.MatchTypeSimilarity
	switch {
	case identifierMatch:
		matchType = domain.MatchTypeIdentifier
	case bruteForce:
		matchType = domain.MatchTypeBruteForceWithoutYear
	}

	if matchType == domain.MatchTypeIdentifier && !e.Config.ScoreEverything {
		return &candidateScore{
			position:       pos,
			titleScore:     domain.ScoreNotComputed,
			authorScore:    domain.ScoreNotComputed,
			publisherScore: domain.ScoreNotComputed,
			combinedScore:  domain.ScoreNotComputed,
			matchType:     matchType,
			yearDiff:      yearDiff,
		}, true
	}

	refGeneric, _ := e.classifyGeneric(ref)
	generic := queryGeneric || refGeneric

	titleScore := scoring.TitleScore(query.NormalizedTitleForMatching(), ref.NormalizedTitleForMatching())
	authorScore := scoring.AuthorScore(query.NormalizedAuthorForMatching(), query.NormalizedMainAuthorForMatching(), ref.NormalizedAuthorForMatching())
	hasPublisher := query.Publisher() != "" && ref.Publisher() != ""
	publisherScore := scoring.PublisherScore(query.NormalizedPublisherForMatching(), ref.NormalizedPublisherForMatching())
	combined := scoring.Combine(titleScore, authorScore, publisherScore, hasPublisher, e.Config.Weights)

	if matchType != domain.MatchTypeIdentifier {
		authorBar := e.Config.AuthorThreshold
		publisherBar := e.Config.PublisherThreshold
		if generic {
			authorBar = e.Config.GenericTitleAuthorBar
			publisherBar = e.Config.GenericTitlePublisherBar
		}
		if !e.passesThresholds(titleScore, authorScore, publisherScore, hasPublisher, authorBar, publisherBar) {
			return nil, false
		}
	}

	return &candidateScore{
		position:       pos,
		titleScore:     titleScore,
		authorScore:    authorScore,
		publisherScore: publisherScore,
		combinedScore:  combined,
		matchType:      matchType,
		yearDiff:       yearDiff,
	}, true
}

func (e *Engine) checkYearTolerance(query, ref *domain.Publication) (int, bool) {
	if !query.HasYear {
		return 0, e.Config.BruteForceMissingYear
	}
	if !ref.HasYear {
		return 0, true
	}
	diff := query.Year - ref.Year
	if diff < 0 {
		diff = -diff
	}
	return diff, diff <= e.Config.YearTolerance
}

func (e *Engine) passesThresholds(title, author, publisher float64, hasPublisher bool, authorBar, publisherBar float64) bool {
	if e.Config.ScoreEverything {
		if !e.Config.HasMinCombinedScore {
			return true
		}
		combined := scoring.Combine(title, author, publisher, hasPublisher, e.Config.Weights)
		return combined >= e.Config.MinimumCombinedScore
	}
	if title < e.Config.TitleThreshold || author < authorBar {
		return false
	}
	if hasPublisher && publisher < publisherBar {
		return false
	}
	return true
}

func (e *Engine) isEarlyExit(cs *candidateScore) bool {
	if cs.matchType == domain.MatchTypeIdentifier {
		return false
	}
	return cs.titleScore >= e.Config.EarlyExitTitle && cs.authorScore >= e.Config.EarlyExitAuthor
}

func (e *Engine) buildMatch(query, ref *domain.Publication, cs *candidateScore, queryGeneric bool, queryReason string) *domain.Match {
	query.GenericTitleDetected = queryGeneric
	if queryGeneric {
		query.GenericDetectionReason = queryReason
	}
	return &domain.Match{
		MatchedTitle:     ref.OriginalTitle,
		MatchedAuthor:    ref.OriginalAuthor,
		MatchedPublisher: ref.OriginalPublisher,
		MatchedDate:      ref.PubDate,
		SourceID:         ref.SourceID,
		TitleScore:       cs.titleScore,
		AuthorScore:      cs.authorScore,
		PublisherScore:   cs.publisherScore,
		CombinedScore:    cs.combinedScore,
		YearDifference:   cs.yearDiff,
		MatchType:        cs.matchType,
	}
}
