package scoring

// Weights holds the configured per-field contribution to the combined
// score. Defaults: title 0.5, author 0.3, publisher 0.2.
type Weights struct {
	Title     float64
	Author    float64
	Publisher float64
}

// DefaultWeights returns the documented default weighting.
func DefaultWeights() Weights {
	return Weights{Title: 0.5, Author: 0.3, Publisher: 0.2}
}

// Combine computes the weighted mean of the three field scores. When
// hasPublisher is false (either side lacks publisher data), the
// publisher weight is redistributed proportionally across title and
// author rather than zeroing the publisher term outright.
func Combine(titleScore, authorScore, publisherScore float64, hasPublisher bool, w Weights) float64 {
	if !hasPublisher {
		total := w.Title + w.Author
		if total == 0 {
			return 0
		}
		titleWeight := w.Title / total
		authorWeight := w.Author / total
		return titleScore*titleWeight + authorScore*authorWeight
	}
	total := w.Title + w.Author + w.Publisher
	if total == 0 {
		return 0
	}
	return (titleScore*w.Title + authorScore*w.Author + publisherScore*w.Publisher) / total
}
