// Package config loads and validates the job-wide configuration
// surface: a YAML file with defaults seeded from matcher.DefaultConfig
// and fail-fast validation on load.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pulibrary/marc-copyright/internal/matcher"
)

// Config is the full recognized configuration surface.
type Config struct {
	TitleThreshold     float64 `yaml:"title_threshold"`
	AuthorThreshold    float64 `yaml:"author_threshold"`
	PublisherThreshold float64 `yaml:"publisher_threshold"`

	EarlyExitTitle     float64 `yaml:"early_exit_title"`
	EarlyExitAuthor    float64 `yaml:"early_exit_author"`
	EarlyExitPublisher float64 `yaml:"early_exit_publisher"`

	YearTolerance int  `yaml:"year_tolerance"`
	MinYear       *int `yaml:"min_year"`
	MaxYear       *int `yaml:"max_year"`
	USOnly        bool `yaml:"us_only"`

	BatchSize    int `yaml:"batch_size"`
	NumProcesses int `yaml:"num_processes"`

	ScoreEverything       bool     `yaml:"score_everything"`
	MinimumCombinedScore  *float64 `yaml:"minimum_combined_score"`
	BruteForceMissingYear bool     `yaml:"brute_force_missing_year"`

	GenericTitleFrequencyThreshold *int `yaml:"generic_title_frequency_threshold"`

	CopyrightExpirationYear *int `yaml:"copyright_expiration_year"`
	MaxDataYear             *int `yaml:"max_data_year"`
}

// Default returns a Config with the module's documented defaults
// applied (matcher.DefaultConfig's thresholds, a single-batch-worker
// baseline left for the caller to raise via num_processes).
func Default() Config {
	d := matcher.DefaultConfig()
	threshold := d.GenericTitleFrequencyThreshold
	return Config{
		TitleThreshold:                 d.TitleThreshold,
		AuthorThreshold:                d.AuthorThreshold,
		PublisherThreshold:             d.PublisherThreshold,
		EarlyExitTitle:                 d.EarlyExitTitle,
		EarlyExitAuthor:                d.EarlyExitAuthor,
		EarlyExitPublisher:             d.EarlyExitPublisher,
		YearTolerance:                  d.YearTolerance,
		USOnly:                         false,
		BatchSize:                      100,
		NumProcesses:                   1,
		ScoreEverything:                d.ScoreEverything,
		BruteForceMissingYear:          d.BruteForceMissingYear,
		GenericTitleFrequencyThreshold: &threshold,
	}
}

// Load reads and validates a YAML configuration file at path, starting
// from Default() so any field the file omits keeps its default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate fails fast on nonsensical configuration, following the
// "Configuration errors... fail fast at job start".
func (c Config) Validate() error {
	for name, v := range map[string]float64{
		"title_threshold":      c.TitleThreshold,
		"author_threshold":     c.AuthorThreshold,
		"publisher_threshold":  c.PublisherThreshold,
		"early_exit_title":     c.EarlyExitTitle,
		"early_exit_author":    c.EarlyExitAuthor,
		"early_exit_publisher": c.EarlyExitPublisher,
	} {
		if v < 0 || v > 100 {
			return fmt.Errorf("%s must be within [0, 100], got %v", name, v)
		}
	}
	if c.YearTolerance < 0 {
		return fmt.Errorf("year_tolerance must be >= 0, got %d", c.YearTolerance)
	}
	if c.MinYear != nil && c.MaxYear != nil && *c.MinYear > *c.MaxYear {
		return fmt.Errorf("min_year (%d) must not exceed max_year (%d)", *c.MinYear, *c.MaxYear)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batch_size must be >= 1, got %d", c.BatchSize)
	}
	if c.NumProcesses < 1 {
		return fmt.Errorf("num_processes must be >= 1, got %d", c.NumProcesses)
	}
	if c.MinimumCombinedScore != nil && !c.ScoreEverything {
		return fmt.Errorf("minimum_combined_score is only valid with score_everything")
	}
	if c.MinimumCombinedScore != nil && (*c.MinimumCombinedScore < 0 || *c.MinimumCombinedScore > 100) {
		return fmt.Errorf("minimum_combined_score must be within [0, 100], got %v", *c.MinimumCombinedScore)
	}
	return nil
}

// MatcherConfig translates the loaded Config into matcher.Config.
func (c Config) MatcherConfig() matcher.Config {
	defaults := matcher.DefaultConfig()
	mc := matcher.Config{
		TitleThreshold:                 c.TitleThreshold,
		AuthorThreshold:                c.AuthorThreshold,
		PublisherThreshold:             c.PublisherThreshold,
		EarlyExitTitle:                 c.EarlyExitTitle,
		EarlyExitAuthor:                c.EarlyExitAuthor,
		EarlyExitPublisher:             c.EarlyExitPublisher,
		YearTolerance:                  c.YearTolerance,
		ScoreEverything:                c.ScoreEverything,
		BruteForceMissingYear:          c.BruteForceMissingYear,
		Weights:                        defaults.Weights,
		GenericTitleAuthorBar:          defaults.GenericTitleAuthorBar,
		GenericTitlePublisherBar:       defaults.GenericTitlePublisherBar,
		GenericTitleFrequencyThreshold: defaults.GenericTitleFrequencyThreshold,
	}
	if c.GenericTitleFrequencyThreshold != nil {
		mc.GenericTitleFrequencyThreshold = *c.GenericTitleFrequencyThreshold
	}
	if c.MinimumCombinedScore != nil {
		mc.HasMinCombinedScore = true
		mc.MinimumCombinedScore = *c.MinimumCombinedScore
	}
	return mc
}
