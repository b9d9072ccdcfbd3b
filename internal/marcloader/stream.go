// Package marcloader implements the MARC Streaming Loader:
// an event-driven XML parser that turns potentially multi-gigabyte
// library-catalog exports into batches of Publications in bounded
// memory, spilling each batch to an opaque on-disk file. Grounded on
// original_source's marc_loader.py, whose ET.iterparse start/end event
// loop with elem.clear() is reimplemented here with
// encoding/xml.Decoder's streaming Token() loop — Go's closest
// equivalent to incremental, bounded-memory XML parsing.
package marcloader

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pulibrary/marc-copyright/internal/domain"
)

// Config is the MARC Streaming Loader's configuration surface, per
// downstream consumers.
type Config struct {
	BatchSize  int
	MinYear    int
	MaxYear    int
	HasMinYear bool
	HasMaxYear bool
	USOnly     bool
}

// Stats reports record counts for one loading run.
type Stats struct {
	TotalRecords int
	FilteredOut  int
	FilesFailed  int
}

// Loader streams MARC XML into batches of Publications.
type Loader struct {
	Config Config
	Logger logrus.FieldLogger
}

// New returns a Loader. A nil logger falls back to logrus's standard
// logger.
func New(cfg Config, logger logrus.FieldLogger) *Loader {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Loader{Config: cfg, Logger: logger}
}

// BatchFunc is invoked once per completed batch (including the final,
// possibly short, batch at end of input). Returning an error aborts
// the run.
type BatchFunc func(batch []*domain.Publication) error

// LoadPath streams every MARC record found at path (a single XML file
// or a directory of them) through onBatch, accumulating records into
// fixed-size batches across file boundaries. Malformed files are
// logged and skipped; the run continues. Returns aggregate Stats.
func (l *Loader) LoadPath(path string, onBatch BatchFunc) (Stats, error) {
	files, err := resolveFiles(path)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	var current []*domain.Publication
	batchSize := l.Config.BatchSize
	if batchSize <= 0 {
		batchSize = 1000
	}

	var batchErr error
	flush := func() error {
		if len(current) == 0 {
			return nil
		}
		if err := onBatch(current); err != nil {
			batchErr = err
			return err
		}
		current = nil
		return nil
	}

	for _, file := range files {
		l.Logger.WithField("file", file).Info("marcloader: processing file")
		if err := l.streamFile(file, func(p *domain.Publication) error {
			stats.TotalRecords++
			if !l.shouldInclude(p) {
				stats.FilteredOut++
				return nil
			}
			current = append(current, p)
			if len(current) >= batchSize {
				return flush()
			}
			return nil
		}); err != nil {
			if batchErr != nil {
				return stats, batchErr
			}
			l.Logger.WithError(err).WithField("file", file).Error("marcloader: failed to parse file, skipping")
			stats.FilesFailed++
			continue
		}
	}

	if err := flush(); err != nil {
		return stats, err
	}
	return stats, nil
}

func (l *Loader) shouldInclude(p *domain.Publication) bool {
	if l.Config.USOnly && p.CountryClassification != domain.CountryUS {
		return false
	}
	if !p.HasYear {
		return true
	}
	if l.Config.HasMinYear && p.Year < l.Config.MinYear {
		return false
	}
	if l.Config.HasMaxYear && p.Year > l.Config.MaxYear {
		return false
	}
	return true
}

// recordFunc receives one successfully extracted Publication at a time.
type recordFunc func(*domain.Publication) error

// streamFile walks the XML token stream of a single file, decoding and
// releasing each <record> element before advancing, so memory use stays
// O(batch size) rather than O(file size).
func (l *Loader) streamFile(path string, onRecord recordFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	decoder := xml.NewDecoder(f)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "record" {
			continue
		}

		var rec record
		if err := decoder.DecodeElement(&rec, &se); err != nil {
			l.Logger.WithError(err).Warn("marcloader: skipping malformed record")
			continue
		}

		pub, ok := rec.toPublication()
		if !ok {
			continue
		}
		if err := onRecord(pub); err != nil {
			return err
		}
	}
}
