package aggregate

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/pulibrary/marc-copyright/internal/batch"
	"github.com/pulibrary/marc-copyright/internal/domain"
	"github.com/pulibrary/marc-copyright/internal/status"
)

func classifiedPub(title string, year int, hasRegistration bool) *domain.Publication {
	p := domain.NewPublication(title)
	p.Year, p.HasYear = year, true
	p.CountryClassification = domain.CountryUS
	if hasRegistration {
		p.SetRegistrationMatch(&domain.Match{CombinedScore: 88})
	}
	status.Apply(p, 1929, 2010)
	return p
}

func TestAddResultAccumulatesStatsAndPublications(t *testing.T) {
	a := New()
	a.AddResult(batch.Result{
		Stats:        batch.RecordStats{BatchID: "batch-0000", MarcCount: 2},
		Publications: []*domain.Publication{classifiedPub("Book A", 1950, true), classifiedPub("Book B", 1960, false)},
	})

	if a.Stats.TotalRecords != 2 {
		t.Errorf("TotalRecords = %d, want 2", a.Stats.TotalRecords)
	}
	if a.Stats.USRecords != 2 {
		t.Errorf("USRecords = %d, want 2", a.Stats.USRecords)
	}
	if a.Stats.RegistrationMatches != 1 {
		t.Errorf("RegistrationMatches = %d, want 1", a.Stats.RegistrationMatches)
	}
	if a.Stats.NoMatches != 1 {
		t.Errorf("NoMatches = %d, want 1", a.Stats.NoMatches)
	}
	if len(a.Publications) != 2 {
		t.Fatalf("expected 2 accumulated publications, got %d", len(a.Publications))
	}
}

func TestAddResultCountsFailedBatch(t *testing.T) {
	a := New()
	a.AddResult(batch.Result{Stats: batch.RecordStats{BatchID: "batch-0001", Failed: true}})

	if a.Stats.BatchesFailed != 1 {
		t.Errorf("BatchesFailed = %d, want 1", a.Stats.BatchesFailed)
	}
	if len(a.Publications) != 0 {
		t.Errorf("expected no publications from a failed batch, got %d", len(a.Publications))
	}
}

func TestJSONExporterProducesExpectedShape(t *testing.T) {
	a := New()
	a.AddResult(batch.Result{
		Stats:        batch.RecordStats{BatchID: "batch-0000"},
		Publications: []*domain.Publication{classifiedPub("Exported Book", 1950, true)},
	})

	var buf bytes.Buffer
	exporter := JSONExporter{Writer: &buf}
	if err := exporter.Export(context.Background(), a.All(), a.FinalStats()); err != nil {
		t.Fatalf("Export error: %v", err)
	}

	var decoded struct {
		Count        int `json:"count"`
		Publications []struct {
			Title  string `json:"title"`
			Status string `json:"status"`
		} `json:"publications"`
		Stats Stats `json:"stats"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v\n%s", err, buf.String())
	}
	if decoded.Count != 1 {
		t.Errorf("Count = %d, want 1", decoded.Count)
	}
	if len(decoded.Publications) != 1 || decoded.Publications[0].Title != "Exported Book" {
		t.Fatalf("unexpected publications: %+v", decoded.Publications)
	}
	if decoded.Stats.TotalRecords != 1 {
		t.Errorf("exported stats.totalRecords = %d, want 1", decoded.Stats.TotalRecords)
	}
}
