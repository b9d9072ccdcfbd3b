package aggregate

import (
	"context"
	"iter"

	"github.com/pulibrary/marc-copyright/internal/domain"
)

// Exporter renders an aggregated job's publications and statistics to
// an external format. Concrete spreadsheet/HTML renderers are out of
// scope; this module ships the interface plus a reference JSON
// exporter.
type Exporter interface {
	Export(ctx context.Context, pubs iter.Seq[*domain.Publication], stats Stats) error
}

// All returns an iter.Seq over the aggregator's collected
// publications, for passing to an Exporter without copying the slice.
func (a *Aggregator) All() iter.Seq[*domain.Publication] {
	return func(yield func(*domain.Publication) bool) {
		for _, p := range a.Publications {
			if !yield(p) {
				return
			}
		}
	}
}
