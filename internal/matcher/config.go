package matcher

import "github.com/pulibrary/marc-copyright/internal/scoring"

// Config is the configuration surface of the Matching Engine.
// Threshold and early-exit fields are percentages in [0, 100],
// matching the similarity scorer's output range.
type Config struct {
	TitleThreshold     float64
	AuthorThreshold    float64
	PublisherThreshold float64

	EarlyExitTitle     float64
	EarlyExitAuthor    float64
	EarlyExitPublisher float64

	YearTolerance int

	ScoreEverything      bool
	HasMinCombinedScore  bool
	MinimumCombinedScore float64

	BruteForceMissingYear bool

	// GenericTitleAuthorBar/GenericTitlePublisherBar raise the bar for
	// author/publisher scores when either side's title is classified
	// generic.
	GenericTitleAuthorBar    float64
	GenericTitlePublisherBar float64

	// GenericTitleFrequencyThreshold is the reference-corpus title
	// frequency above which a title is classified generic even without
	// matching a pattern. <= 0 disables frequency-based classification.
	GenericTitleFrequencyThreshold int

	Weights scoring.Weights
}

// DefaultConfig returns reasonable defaults grounded in the thresholds
// worked scenarios imply (e.g. a 55/55/50 weak
// candidate must fail strict gating for a generic title).
func DefaultConfig() Config {
	return Config{
		TitleThreshold:                 70,
		AuthorThreshold:                70,
		PublisherThreshold:             60,
		EarlyExitTitle:                 95,
		EarlyExitAuthor:                90,
		EarlyExitPublisher:             85,
		YearTolerance:                  1,
		GenericTitleAuthorBar:          85,
		GenericTitlePublisherBar:       75,
		GenericTitleFrequencyThreshold: 3,
		Weights:                        scoring.DefaultWeights(),
	}
}
