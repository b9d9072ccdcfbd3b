package marcloader

import (
	"encoding/gob"
	"os"

	"github.com/pkg/errors"
	"github.com/pulibrary/marc-copyright/internal/domain"
)

// WriteBatchFile serializes a batch of Publications to path using gob,
// the opaque binary encoding left to the implementation.
// gob only encodes exported struct fields, so Publication's memoized
// cache pointers are never written — round-trip equality (not
// byte-for-byte stability) is the only contract.
func WriteBatchFile(path string, batch []*domain.Publication) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "marcloader: create batch file %s", path)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(batch); err != nil {
		return errors.Wrapf(err, "marcloader: encode batch file %s", path)
	}
	return nil
}

// ReadBatchFile deserializes a batch file previously written by
// WriteBatchFile, resetting each Publication's memoized normalized
// fields since they cannot be assumed valid across a process boundary
// on deserialization.
func ReadBatchFile(path string) ([]*domain.Publication, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "marcloader: open batch file %s", path)
	}
	defer f.Close()

	var batch []*domain.Publication
	if err := gob.NewDecoder(f).Decode(&batch); err != nil {
		return nil, errors.Wrapf(err, "marcloader: decode batch file %s", path)
	}
	for _, p := range batch {
		p.Reset()
	}
	return batch, nil
}
