package normalize

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/carmitra/carmitra/internal/model"
)

func fullCandidate(i int) model.CandidateRecord {
	return model.CandidateRecord{
		Model:       fmt.Sprintf("Model %d", i),
		Brand:       fmt.Sprintf("Brand %d", i),
		Price:       "₹6L - ₹9L",
		WhySuitable: "Fits the stated requirements well.",
		KeyFeatures: []string{"Feature A", "Feature B"},
	}
}

func TestNormalize_JSONArrayCappedInOrder(t *testing.T) {
	candidates := make([]model.CandidateRecord, 7)
	for i := range candidates {
		candidates[i] = fullCandidate(i)
	}
	body, err := json.Marshal(candidates)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	payload := "Here are my recommendations:\n" + string(body) + "\nLet me know if you need more detail."

	got := New(5).Normalize(payload)
	if len(got) != 5 {
		t.Fatalf("expected exactly 5 records, got %d", len(got))
	}
	for i, rec := range got {
		if rec.Model != fmt.Sprintf("Model %d", i) {
			t.Errorf("record %d out of order: got %q", i, rec.Model)
		}
	}
}

func TestNormalize_InvalidRecordsDropped(t *testing.T) {
	payload := `[
		{"model": "Swift", "brand": "Maruti Suzuki", "price": "₹6L - ₹9L", "why_suitable": "Easy to drive."},
		{"model": "", "brand": "Honda", "price": "₹11L - ₹16L", "why_suitable": "Comfortable."},
		{"model": "City", "brand": "Honda", "price": "", "why_suitable": "Refined."},
		{"model": "Creta", "brand": "Hyundai", "price": "₹11L - ₹18L", "why_suitable": "High seating."}
	]`

	got := New(5).Normalize(payload)
	if len(got) != 2 {
		t.Fatalf("expected 2 valid records, got %d", len(got))
	}
	if got[0].Model != "Swift" || got[1].Model != "Creta" {
		t.Errorf("unexpected records: %q, %q", got[0].Model, got[1].Model)
	}
}

func TestNormalize_MalformedJSONFallsThroughToLines(t *testing.T) {
	payload := "Recommendations [not json at all\n" +
		"1. Maruti Suzuki Swift - a solid small car\n" +
		"Some filler commentary.\n" +
		"2. HONDA City for comfort\n"

	got := New(5).Normalize(payload)
	if len(got) != 2 {
		t.Fatalf("expected 2 line-parsed records, got %d", len(got))
	}

	first := got[0]
	if !strings.Contains(strings.ToUpper(first.Model), "MARUTI") {
		t.Errorf("unexpected model line: %q", first.Model)
	}
	if first.Price != "Contact dealer for pricing" {
		t.Errorf("expected placeholder price, got %q", first.Price)
	}
	if first.SeniorFriendlyRating != 8 {
		t.Errorf("expected placeholder rating 8, got %d", first.SeniorFriendlyRating)
	}
	if !first.Valid() {
		t.Error("line-parsed records must satisfy the validity invariant")
	}
}

func TestNormalize_NoBracketsNoBrandsYieldsNothing(t *testing.T) {
	payload := "I could not find anything matching those requirements.\nPlease adjust the budget."

	got := New(5).Normalize(payload)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d records", len(got))
	}
}

func TestNormalize_ValidJSONWithZeroValidEntriesShortCircuits(t *testing.T) {
	// The array decodes, so the line scan must not run even though the text
	// mentions a known brand.
	payload := `HONDA recommendations follow: [{"model": "", "brand": "", "price": "", "why_suitable": ""}]`

	got := New(5).Normalize(payload)
	if len(got) != 0 {
		t.Fatalf("expected empty result from JSON path, got %d records", len(got))
	}
}

func TestFallbackCandidates_ValidAndFiltered(t *testing.T) {
	all := FallbackCandidates(0)
	if len(all) < 5 {
		t.Fatalf("expected at least 5 fallback candidates, got %d", len(all))
	}
	for _, c := range all {
		if !c.Valid() {
			t.Errorf("fallback candidate %q violates the validity invariant", c.DisplayName())
		}
	}

	// Ceiling below every candidate's lower bound: nothing survives.
	if got := FallbackCandidates(100); len(got) != 0 {
		t.Errorf("expected empty list for ceiling below all lower bounds, got %d", len(got))
	}

	// A 10 lakh ceiling keeps the budget cars and drops the premium ones.
	mid := FallbackCandidates(1_000_000)
	if len(mid) == 0 || len(mid) >= len(all) {
		t.Errorf("expected a strict subset for a mid budget, got %d of %d", len(mid), len(all))
	}
	for _, c := range mid {
		if strings.Contains(c.Model, "Innova") {
			t.Errorf("%q should have been filtered out by a 10 lakh ceiling", c.DisplayName())
		}
	}
}
