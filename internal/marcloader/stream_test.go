package marcloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pulibrary/marc-copyright/internal/domain"
)

const sampleMarcXML = `<?xml version="1.0" encoding="UTF-8"?>
<collection xmlns="http://www.loc.gov/MARC21/slim">
  <record>
    <controlfield tag="001">rec001</controlfield>
    <controlfield tag="008">800101s1950    nyu           000 0 eng d</controlfield>
    <datafield tag="245" ind1="1" ind2="0">
      <subfield code="a">Test Book About Things</subfield>
      <subfield code="b">a novel</subfield>
      <subfield code="c">by John Smith</subfield>
    </datafield>
    <datafield tag="100" ind1="1" ind2=" ">
      <subfield code="a">Smith, John, 1900-1980</subfield>
    </datafield>
    <datafield tag="260" ind1=" " ind2=" ">
      <subfield code="a">New York</subfield>
      <subfield code="b">Acme Press</subfield>
      <subfield code="c">1950</subfield>
    </datafield>
    <datafield tag="010" ind1=" " ind2=" ">
      <subfield code="a">  25-12345</subfield>
    </datafield>
  </record>
  <record>
    <controlfield tag="001">rec002</controlfield>
    <controlfield tag="008">800101s1996    fr            000 0 fre d</controlfield>
    <datafield tag="245" ind1="0" ind2="0">
      <subfield code="a">Une Histoire [microform]</subfield>
    </datafield>
  </record>
</collection>`

func writeTempMarc(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.xml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestStreamFileExtractsFieldsPerMapping(t *testing.T) {
	path := writeTempMarc(t, sampleMarcXML)
	l := New(Config{BatchSize: 10}, nil)

	var got []*domain.Publication
	if err := l.streamFile(path, func(p *domain.Publication) error {
		got = append(got, p)
		return nil
	}); err != nil {
		t.Fatalf("streamFile error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}

	first := got[0]
	if first.OriginalTitle != "Test Book About Things a novel" {
		t.Errorf("title = %q", first.OriginalTitle)
	}
	if first.OriginalAuthor != "by John Smith" {
		t.Errorf("author = %q", first.OriginalAuthor)
	}
	if first.OriginalMainAuthor != "Smith, John" {
		t.Errorf("main author = %q, want trailing dates stripped", first.OriginalMainAuthor)
	}
	if first.OriginalPublisher != "Acme Press" {
		t.Errorf("publisher = %q", first.OriginalPublisher)
	}
	if !first.HasYear || first.Year != 1950 {
		t.Errorf("year = %d (hasYear=%v)", first.Year, first.HasYear)
	}
	if first.CountryClassification != domain.CountryUS {
		t.Errorf("expected US classification, got %v", first.CountryClassification)
	}
	if first.NormalizedLCCN != "25012345" {
		t.Errorf("normalized LCCN = %q, want 25012345", first.NormalizedLCCN)
	}
	if first.SourceID != "rec001" {
		t.Errorf("source id = %q", first.SourceID)
	}

	second := got[1]
	if second.OriginalTitle != "Une Histoire" {
		t.Errorf("expected bracketed annotation stripped, got %q", second.OriginalTitle)
	}
	if second.CountryClassification != domain.CountryNonUS {
		t.Errorf("expected non-US classification, got %v", second.CountryClassification)
	}
}

func TestLoadPathSplitsRecordsIntoBatchSizeBatches(t *testing.T) {
	path := writeTempMarc(t, sampleMarcXML)
	l := New(Config{BatchSize: 1}, nil)

	var batches [][]*domain.Publication
	stats, err := l.LoadPath(path, func(batch []*domain.Publication) error {
		dup := append([]*domain.Publication(nil), batch...)
		batches = append(batches, dup)
		return nil
	})
	if err != nil {
		t.Fatalf("LoadPath error: %v", err)
	}
	if stats.TotalRecords != 2 {
		t.Errorf("total records = %d, want 2", stats.TotalRecords)
	}
	if len(batches) != 2 {
		t.Fatalf("expected 2 single-record batches, got %d", len(batches))
	}
}

func TestLoadPathFiltersUSOnly(t *testing.T) {
	path := writeTempMarc(t, sampleMarcXML)
	l := New(Config{BatchSize: 10, USOnly: true}, nil)

	var all []*domain.Publication
	_, err := l.LoadPath(path, func(batch []*domain.Publication) error {
		all = append(all, batch...)
		return nil
	})
	if err != nil {
		t.Fatalf("LoadPath error: %v", err)
	}
	if len(all) != 1 || all[0].CountryClassification != domain.CountryUS {
		t.Errorf("expected only the US record to survive us_only filtering, got %d records", len(all))
	}
}

func TestLoadPathIncludesRecordsWithNoYearByDefault(t *testing.T) {
	xmlNoYear := `<?xml version="1.0"?>
<collection>
  <record>
    <controlfield tag="001">r1</controlfield>
    <datafield tag="245"><subfield code="a">No Date Here</subfield></datafield>
  </record>
</collection>`
	path := writeTempMarc(t, xmlNoYear)
	l := New(Config{BatchSize: 10, HasMinYear: true, MinYear: 1950}, nil)

	var all []*domain.Publication
	_, err := l.LoadPath(path, func(batch []*domain.Publication) error {
		all = append(all, batch...)
		return nil
	})
	if err != nil {
		t.Fatalf("LoadPath error: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected year-absent record to pass through filtering, got %d records", len(all))
	}
}

func TestBatchFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch0.gob")

	original := []*domain.Publication{domain.NewPublication("Round Trip Title")}
	original[0].SetLCCN("12-345")
	original[0].SetPubDateAndExtractYear("1955")

	if err := WriteBatchFile(path, original); err != nil {
		t.Fatalf("WriteBatchFile error: %v", err)
	}
	readBack, err := ReadBatchFile(path)
	if err != nil {
		t.Fatalf("ReadBatchFile error: %v", err)
	}
	if len(readBack) != 1 {
		t.Fatalf("expected 1 publication, got %d", len(readBack))
	}
	if readBack[0].OriginalTitle != "Round Trip Title" {
		t.Errorf("title = %q", readBack[0].OriginalTitle)
	}
	if readBack[0].Year != 1955 || !readBack[0].HasYear {
		t.Errorf("year not round-tripped correctly: %d, %v", readBack[0].Year, readBack[0].HasYear)
	}
}
