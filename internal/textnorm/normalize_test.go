package textnorm

import "testing"

func TestNormalizeStandardIdempotent(t *testing.T) {
	inputs := []string{
		"The Adventures of Huckleberry Finn [microform]",
		"Café Rotation: Étude no. 2",
		"U. S. A. History",
		"  Multiple   spaces   here  ",
	}
	for _, in := range inputs {
		once := NormalizeStandard(in)
		twice := NormalizeStandard(once)
		if once != twice {
			t.Errorf("NormalizeStandard not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestNormalizeStandardFoldsDiacritics(t *testing.T) {
	got := NormalizeStandard("Café")
	if got != "cafe" {
		t.Errorf("expected diacritic folding, got %q", got)
	}
}

func TestRemoveBracketedContent(t *testing.T) {
	got := RemoveBracketedContent("Main title [microform] : subtitle (electronic resource)")
	if got != "Main title : subtitle" {
		t.Errorf("unexpected result: %q", got)
	}
}

func TestCollapseSingleLetterRuns(t *testing.T) {
	got := NormalizeStandard("U S A")
	if got != "usa" {
		t.Errorf("expected single-letter run collapse, got %q", got)
	}
}

func TestNormalizeForMatchingIdempotent(t *testing.T) {
	s := "The Incorporated Company of Saint Louis"
	once := NormalizeForMatching(s, English)
	twice := NormalizeForMatching(once, English)
	if once != twice {
		t.Errorf("NormalizeForMatching not idempotent: once=%q twice=%q", once, twice)
	}
}

func TestNormalizeForMatchingExpandsAbbreviationsAndDropsStopwords(t *testing.T) {
	got := NormalizeForMatching("The Smith Co.", English)
	if got != "smith company" {
		t.Errorf("expected abbreviation expansion and stopword removal, got %q", got)
	}
}
