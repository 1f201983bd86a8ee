package normalize

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/carmitra/carmitra/internal/extract"
	"github.com/carmitra/carmitra/internal/model"
)

//go:embed fallback.yaml
var fallbackYAML []byte

var (
	fallbackOnce sync.Once
	fallbackSet  []model.CandidateRecord
)

func loadFallback() []model.CandidateRecord {
	fallbackOnce.Do(func() {
		if err := yaml.Unmarshal(fallbackYAML, &fallbackSet); err != nil {
			// The dataset is compiled in; a decode failure is a build defect.
			panic(fmt.Sprintf("normalize: embedded fallback dataset is malformed: %v", err))
		}
	})
	return fallbackSet
}

// FallbackCandidates returns the built-in dataset filtered by a budget
// ceiling in rupees. A candidate is excluded only when its extracted lower
// price bound exceeds the ceiling; candidates whose price cannot be parsed
// are included rather than excluded, to avoid over-filtering on noisy data.
// A ceiling <= 0 disables filtering.
func FallbackCandidates(budgetCeiling float64) []model.CandidateRecord {
	source := loadFallback()
	records := make([]model.CandidateRecord, 0, len(source))
	for _, c := range source {
		if budgetCeiling > 0 {
			if low, _, ok := extract.PriceBounds(c.Price); ok && low*extract.RupeesPerLakh > budgetCeiling {
				continue
			}
		}
		records = append(records, c)
	}
	return records
}
