// Package normalize turns free-form upstream payloads into validated
// candidate records. Parsing is an ordered ladder of strategies: an embedded
// JSON array first, then a line-oriented brand scan. The built-in dataset in
// fallback.go is the final rung, taken by callers when the upstream source is
// unavailable or both parsing strategies come up empty.
package normalize

import (
	"encoding/json"
	"strings"

	"github.com/carmitra/carmitra/internal/model"
)

// DefaultMaxResults caps the number of candidates a normalization returns.
const DefaultMaxResults = 5

// Strategy is one rung of the parsing ladder. Parse returns the candidates
// it recovered and whether it claims the payload; ok=false means the next
// rung should be tried.
type Strategy interface {
	Name() string
	Parse(payload string) ([]model.CandidateRecord, bool)
}

// Normalizer applies the parsing ladder and enforces the validity invariant
// and result cap. It is a pure function of its inputs: no side effects, and
// the result is never absent — worst case an empty slice.
type Normalizer struct {
	strategies []Strategy
	maxResults int
}

// New creates a normalizer with the standard ladder: JSON array, then
// line-oriented brand scan.
func New(maxResults int) *Normalizer {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Normalizer{
		strategies: []Strategy{
			&jsonStrategy{},
			&lineStrategy{brands: defaultBrandTokens},
		},
		maxResults: maxResults,
	}
}

// Normalize parses the payload with the first strategy that claims it and
// returns at most maxResults valid candidates in payload order. An empty
// result means "no recommendations", not an error.
func (n *Normalizer) Normalize(payload string) []model.CandidateRecord {
	for _, s := range n.strategies {
		if records, ok := s.Parse(payload); ok {
			if len(records) > n.maxResults {
				records = records[:n.maxResults]
			}
			return records
		}
	}
	return nil
}

// jsonStrategy parses a JSON array embedded in surrounding prose: the
// substring between the first '[' and the last ']'. Objects missing a
// required field are dropped, not repaired.
type jsonStrategy struct{}

func (s *jsonStrategy) Name() string { return "json" }

func (s *jsonStrategy) Parse(payload string) ([]model.CandidateRecord, bool) {
	start := strings.Index(payload, "[")
	end := strings.LastIndex(payload, "]")
	if start == -1 || end == -1 || end <= start {
		return nil, false
	}

	var records []model.CandidateRecord
	if err := json.Unmarshal([]byte(payload[start:end+1]), &records); err != nil {
		return nil, false
	}

	valid := records[:0]
	for _, r := range records {
		if r.Valid() {
			valid = append(valid, r)
		}
	}

	// A decoded array claims the payload even when every entry was dropped;
	// the caller decides whether an empty result warrants the fallback table.
	return valid, true
}

// defaultBrandTokens is the closed set of brand names the line parser uses
// to detect candidate boundaries. Text mentioning brands outside this list
// will mis-segment; broadening it is a deliberate, separate change.
var defaultBrandTokens = []string{"MARUTI", "HYUNDAI", "TATA", "HONDA", "TOYOTA"}

// lineStrategy recovers candidates from non-JSON prose by scanning lines for
// known brand tokens. It guarantees structural completeness, not factual
// accuracy: every non-identity field is a fixed placeholder, and callers
// should treat its output as lower confidence than the JSON path.
type lineStrategy struct {
	brands []string
}

func (s *lineStrategy) Name() string { return "lines" }

func (s *lineStrategy) Parse(payload string) ([]model.CandidateRecord, bool) {
	var records []model.CandidateRecord
	var current *model.CandidateRecord

	for _, line := range strings.Split(payload, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		upper := strings.ToUpper(line)
		matched := false
		for _, brand := range s.brands {
			if strings.Contains(upper, brand) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		if current != nil && current.Model != "" {
			records = append(records, *current)
		}
		current = placeholderCandidate(line)
	}

	if current != nil && current.Model != "" {
		records = append(records, *current)
	}

	return records, len(records) > 0
}

func placeholderCandidate(line string) *model.CandidateRecord {
	brand := "Unknown"
	if fields := strings.Fields(line); len(fields) > 0 {
		brand = fields[0]
	}
	return &model.CandidateRecord{
		Model:                line,
		Brand:                brand,
		Price:                "Contact dealer for pricing",
		WhySuitable:          "Recommended based on your preferences",
		KeyFeatures:          []string{"Feature information pending"},
		Pros:                 []string{"Professional recommendation"},
		Cons:                 []string{"Please verify specifications"},
		SeniorFriendlyRating: 8,
		FuelEfficiency:       "15-20 kmpl",
		SafetyRating:         "Good",
		MaintenanceCost:      "Medium",
	}
}
