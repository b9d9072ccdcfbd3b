package batch

import (
	"encoding/gob"
	"os"

	"github.com/pkg/errors"
	"github.com/pulibrary/marc-copyright/internal/domain"
)

// Result is the opaque binary-serialized payload written as
// "the processed batch plus a small per-batch statistics structure."
type Result struct {
	Stats        RecordStats
	Publications []*domain.Publication
}

// WriteResultFile serializes a completed batch's Result to path.
func WriteResultFile(path string, result Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "batch: create result file %s", path)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(result); err != nil {
		return errors.Wrapf(err, "batch: encode result file %s", path)
	}
	return nil
}

// ReadResultFile deserializes a result file written by WriteResultFile.
func ReadResultFile(path string) (Result, error) {
	var result Result
	f, err := os.Open(path)
	if err != nil {
		return result, errors.Wrapf(err, "batch: open result file %s", path)
	}
	defer f.Close()
	if err := gob.NewDecoder(f).Decode(&result); err != nil {
		return result, errors.Wrapf(err, "batch: decode result file %s", path)
	}
	for _, p := range result.Publications {
		p.Reset()
	}
	return result, nil
}
