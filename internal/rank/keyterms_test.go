package rank

import (
	"reflect"
	"testing"
)

func TestExtractKeyTerms_FrequencyOrder(t *testing.T) {
	got := ExtractKeyTerms("nursing nursing pain pain pain care", 2)
	want := []string{"pain", "nursing"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractKeyTerms = %v, want %v", got, want)
	}
}

func TestExtractKeyTerms_TiesByFirstOccurrence(t *testing.T) {
	got := ExtractKeyTerms("wound care wound dressing care triage", 4)
	want := []string{"wound", "care", "dressing", "triage"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractKeyTerms = %v, want %v", got, want)
	}
}

func TestExtractKeyTerms_StopwordsRemoved(t *testing.T) {
	got := ExtractKeyTerms("the pain of the patient", 10)
	want := []string{"pain", "patient"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractKeyTerms = %v, want %v", got, want)
	}
}

func TestExtractKeyTerms_DefaultLimit(t *testing.T) {
	text := "a1 a2 a3 a4 a5 a6 a7 a8 a9 a10 a11 a12"
	got := ExtractKeyTerms(text, 0)
	if len(got) != DefaultKeyTermLimit {
		t.Fatalf("expected default limit of %d, got %d", DefaultKeyTermLimit, len(got))
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Pain-Management: a CASE study (2021)")
	want := []string{"pain", "management", "case", "study", "2021"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
}
