package refloader

import (
	"path/filepath"
	"testing"

	"github.com/pulibrary/marc-copyright/internal/domain"
)

func TestFileLoaderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registration.gob")
	pub := domain.NewPublication("Reference Entry")
	pub.SetLCCN("25-00001")
	_ = pub.Title()

	if err := WriteFile(path, []*domain.Publication{pub}, 1991); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	loader := &FileLoader{Path: path}
	pubs, err := loader.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(pubs) != 1 || pubs[0].Title() != "Reference Entry" {
		t.Fatalf("unexpected publications: %+v", pubs)
	}
	if loader.MaxDataYear() != 1991 {
		t.Errorf("MaxDataYear = %d, want 1991", loader.MaxDataYear())
	}
}

func TestFileLoaderMissingFileReturnsError(t *testing.T) {
	loader := &FileLoader{Path: filepath.Join(t.TempDir(), "missing.gob")}
	if _, err := loader.Load(); err == nil {
		t.Errorf("expected error for missing reference file")
	}
}
