// Package filter narrows the loaded census table to the subset a render
// pass visualizes.
package filter

import "github.com/censusviz/censusviz/types"

// Range is a closed interval; both bounds are inclusive.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Constraints is the immutable configuration of one filter pass. The three
// row-level constraints combine conjunctively; ThirdDimension only selects
// the column later used as the chart's z axis and color channel and never
// filters rows.
type Constraints struct {
	EducationRange  Range
	EducationLevels []string
	IncomeLabels    []string
	ThirdDimension  types.Dimension
}

// Defaults derives the identity constraint set from a table: the observed
// education.num bounds, the full distinct label sets, and the first
// selectable dimension. Applying the defaults reconstructs the table.
func Defaults(t *types.Table) Constraints {
	min, max := t.EducationNumBounds()
	return Constraints{
		EducationRange:  Range{Min: min, Max: max},
		EducationLevels: t.DistinctEducationLevels(),
		IncomeLabels:    t.DistinctIncomeLabels(),
		ThirdDimension:  types.Dimensions()[0],
	}
}
