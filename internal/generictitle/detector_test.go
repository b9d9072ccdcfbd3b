package generictitle

import "testing"

func TestIsGenericMatchesConfiguredPattern(t *testing.T) {
	d := New(DefaultGenericPatterns(), 0)
	generic, reason := d.IsGeneric("annual report")
	if !generic {
		t.Fatal("expected pattern match to classify as generic")
	}
	if reason == "" {
		t.Error("expected a non-empty reason")
	}
}

func TestIsGenericNotMatchedByDefault(t *testing.T) {
	d := New(DefaultGenericPatterns(), 0)
	if generic, _ := d.IsGeneric("a distinctive novel title"); generic {
		t.Error("expected a non-matching, unobserved title to not be generic")
	}
}

func TestIsGenericFrequencyThresholdExceeded(t *testing.T) {
	d := New(nil, 2)
	for i := 0; i < 3; i++ {
		d.Observe("common title")
	}
	if generic, _ := d.IsGeneric("common title"); !generic {
		t.Error("expected frequency above threshold to classify as generic")
	}
}

func TestIsGenericFrequencyThresholdNotExceeded(t *testing.T) {
	d := New(nil, 2)
	d.Observe("rare title")
	if generic, _ := d.IsGeneric("rare title"); generic {
		t.Error("expected frequency at/below threshold to not classify as generic")
	}
}

func TestIsGenericFrequencyDisabledWhenThresholdIsZero(t *testing.T) {
	d := New(nil, 0)
	for i := 0; i < 100; i++ {
		d.Observe("very common title")
	}
	if generic, _ := d.IsGeneric("very common title"); generic {
		t.Error("expected threshold <= 0 to disable frequency-based classification")
	}
}
