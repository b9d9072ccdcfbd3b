package refloader

import (
	"encoding/gob"
	"os"

	"github.com/pkg/errors"

	"github.com/pulibrary/marc-copyright/internal/domain"
)

// fileEnvelope is the on-disk shape written by WriteFile/read by
// FileLoader: a pre-parsed reference corpus plus the max data year a
// concrete parser (out of scope for this module) would have computed
// from it.
type fileEnvelope struct {
	Publications []*domain.Publication
	MaxDataYear  int
}

// WriteFile gob-encodes a reference corpus to path, in the same
// opaque-binary spirit as the MARC batch/result files, so a corpus
// parsed once (by tooling outside this module's scope) can be reused
// across runs without reparsing.
func WriteFile(path string, pubs []*domain.Publication, maxDataYear int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "refloader: create reference file %s", path)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(fileEnvelope{Publications: pubs, MaxDataYear: maxDataYear}); err != nil {
		return errors.Wrapf(err, "refloader: encode reference file %s", path)
	}
	return nil
}

// FileLoader is a Loader backed by a file written with WriteFile.
type FileLoader struct {
	Path string

	maxDataYear int
}

// Load reads and decodes the reference corpus, resetting each
// Publication's memoized fields per the module's standard gob
// round-trip contract.
func (l *FileLoader) Load() ([]*domain.Publication, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "refloader: open reference file %s", l.Path)
	}
	defer f.Close()

	var env fileEnvelope
	if err := gob.NewDecoder(f).Decode(&env); err != nil {
		return nil, errors.Wrapf(err, "refloader: decode reference file %s", l.Path)
	}
	for _, p := range env.Publications {
		p.Reset()
	}
	l.maxDataYear = env.MaxDataYear
	return env.Publications, nil
}

// MaxDataYear returns the max data year recorded in the file. Valid
// only after Load has been called.
func (l *FileLoader) MaxDataYear() int { return l.maxDataYear }
