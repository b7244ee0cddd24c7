package filter

import "github.com/censusviz/censusviz/types"

// Apply returns a new table holding the records of t that satisfy every
// row-level constraint in c. The input table is never mutated; record
// order and values are preserved. An empty result is a valid table, not an
// error, and the caller must branch on it (skip the chart, show a notice).
func Apply(t *types.Table, c Constraints) *types.Table {
	levels := toSet(c.EducationLevels)
	incomes := toSet(c.IncomeLabels)

	out := make([]types.Record, 0, t.Len())
	for _, r := range t.Records() {
		if !c.EducationRange.Contains(r.EducationNum) {
			continue
		}
		if !levels[r.Education] {
			continue
		}
		if !incomes[r.IncomeLabel] {
			continue
		}
		out = append(out, r)
	}
	return types.NewTable(t.Schema(), out)
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
