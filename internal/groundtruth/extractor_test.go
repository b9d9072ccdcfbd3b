package groundtruth

import (
	"path/filepath"
	"testing"

	"github.com/pulibrary/marc-copyright/internal/domain"
	"github.com/pulibrary/marc-copyright/internal/marcloader"
)

func refPub(lccn, title string) *domain.Publication {
	p := domain.NewPublication(title)
	p.SetLCCN(lccn)
	return p
}

func TestExtractPairsByIdentifier(t *testing.T) {
	dir := t.TempDir()

	withID := domain.NewPublication("A Matched Book")
	withID.SetLCCN("25-12345")
	noID := domain.NewPublication("An Unmatched Book")

	batchPath := filepath.Join(dir, "batch0.gob")
	if err := marcloader.WriteBatchFile(batchPath, []*domain.Publication{withID, noID}); err != nil {
		t.Fatalf("WriteBatchFile error: %v", err)
	}

	registration := []*domain.Publication{refPub("25-12345", "A Matched Book (reg)")}
	renewal := []*domain.Publication{refPub("25-12345", "A Matched Book (ren)")}

	pairs, stats, err := Extract([]string{batchPath}, registration, renewal)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}

	if stats.MARCTotal != 2 {
		t.Errorf("MARCTotal = %d, want 2", stats.MARCTotal)
	}
	if stats.MARCWithIdentifier != 1 {
		t.Errorf("MARCWithIdentifier = %d, want 1", stats.MARCWithIdentifier)
	}
	if stats.RegistrationMatches != 1 || stats.RenewalMatches != 1 {
		t.Errorf("unexpected match counts: %+v", stats)
	}
	if stats.UniqueIdentifiersHit != 1 {
		t.Errorf("UniqueIdentifiersHit = %d, want 1", stats.UniqueIdentifiersHit)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs (one registration, one renewal), got %d", len(pairs))
	}
}

func TestExtractNoPairsWithoutIdentifierOverlap(t *testing.T) {
	dir := t.TempDir()
	marc := domain.NewPublication("No Overlap")
	marc.SetLCCN("30-00001")

	batchPath := filepath.Join(dir, "batch0.gob")
	if err := marcloader.WriteBatchFile(batchPath, []*domain.Publication{marc}); err != nil {
		t.Fatalf("WriteBatchFile error: %v", err)
	}

	registration := []*domain.Publication{refPub("99-99999", "Different identifier")}

	pairs, stats, err := Extract([]string{batchPath}, registration, nil)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if len(pairs) != 0 {
		t.Errorf("expected no pairs, got %d", len(pairs))
	}
	if stats.RegistrationMatches != 0 || stats.UniqueIdentifiersHit != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestExtractUniqueIdentifiersCountsDistinctKeysNotPairs(t *testing.T) {
	dir := t.TempDir()
	marc1 := domain.NewPublication("Book One")
	marc1.SetLCCN("40-00001")
	marc2 := domain.NewPublication("Book One Duplicate Record")
	marc2.SetLCCN("40-00001")

	batchPath := filepath.Join(dir, "batch0.gob")
	if err := marcloader.WriteBatchFile(batchPath, []*domain.Publication{marc1, marc2}); err != nil {
		t.Fatalf("WriteBatchFile error: %v", err)
	}

	registration := []*domain.Publication{refPub("40-00001", "Book One (reg)")}

	_, stats, err := Extract([]string{batchPath}, registration, nil)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if stats.RegistrationMatches != 2 {
		t.Errorf("RegistrationMatches = %d, want 2 (one per MARC record)", stats.RegistrationMatches)
	}
	if stats.UniqueIdentifiersHit != 1 {
		t.Errorf("UniqueIdentifiersHit = %d, want 1 (one distinct identifier)", stats.UniqueIdentifiersHit)
	}
}
