// Package generictitle implements the generic-title detector: a
// sub-component of the Matching Engine that classifies a title as
// generic when it matches a configured pattern list or its frequency
// in the reference corpus exceeds a configured threshold. It lives in
// its own package (rather than internal/matcher) so a detector can be
// filled from a built Candidate Index's entries (the CLI's
// buildGenericDetector does this) independently of the matcher; the
// indexer itself neither builds nor observes one.
package generictitle

import "strings"

// Detector classifies titles as generic. It is built once at
// index-build time and shared read-only thereafter, matching the
// Candidate Index's own build-then-freeze lifecycle.
type Detector struct {
	patterns  []string
	frequency map[string]int
	threshold int
}

// New returns a detector seeded with a configured list of
// generic-title substrings (matched case-insensitively against the
// normalized title) and a frequency threshold. Threshold <= 0 disables
// frequency-based classification.
func New(patterns []string, frequencyThreshold int) *Detector {
	lowered := make([]string, len(patterns))
	for i, p := range patterns {
		lowered[i] = strings.ToLower(p)
	}
	return &Detector{
		patterns:  lowered,
		frequency: make(map[string]int),
		threshold: frequencyThreshold,
	}
}

// Observe records one occurrence of a normalized title in the
// reference corpus, used to build the frequency table during index
// construction.
func (d *Detector) Observe(normalizedTitle string) {
	if normalizedTitle == "" {
		return
	}
	d.frequency[normalizedTitle]++
}

// IsGeneric reports whether a normalized title is classified generic,
// along with a human-readable reason.
func (d *Detector) IsGeneric(normalizedTitle string) (bool, string) {
	for _, pattern := range d.patterns {
		if strings.Contains(normalizedTitle, pattern) {
			return true, "matches generic-title pattern: " + pattern
		}
	}
	if d.threshold > 0 && d.frequency[normalizedTitle] > d.threshold {
		return true, "title frequency exceeds configured threshold"
	}
	return false, ""
}

// DefaultGenericPatterns mirrors commonly seen generic-title phrasings.
func DefaultGenericPatterns() []string {
	return []string{"report", "proceedings", "bulletin", "annual report", "yearbook", "transactions", "journal", "newsletter"}
}
