// Package stats computes the preview and summary blocks shown under the
// chart.
package stats

import (
	"github.com/go-gota/gota/series"

	"github.com/censusviz/censusviz/types"
)

// NumericSummary describes one numeric column of a table.
type NumericSummary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// CategoricalSummary describes one categorical column of a table. Count
// excludes absent values; Top is the most frequent present value.
type CategoricalSummary struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
	Unique int    `json:"unique"`
	Top    string `json:"top"`
	Freq   int    `json:"freq"`
}

// Summary is the per-column description of a (usually filtered) table.
type Summary struct {
	Rows        int                  `json:"rows"`
	Numeric     []NumericSummary     `json:"numeric"`
	Categorical []CategoricalSummary `json:"categorical"`
}

// Preview returns the first n records of t.
func Preview(t *types.Table, n int) []types.Record {
	records := t.Records()
	if n > len(records) {
		n = len(records)
	}
	return records[:n]
}

// Describe summarizes every column of t. An empty table yields zeroed
// summaries rather than NaNs so the result stays JSON-encodable.
func Describe(t *types.Table) Summary {
	s := Summary{Rows: t.Len()}

	numeric := []struct {
		name string
		get  func(r *types.Record) int
	}{
		{types.ColAge, func(r *types.Record) int { return r.Age }},
		{types.ColFnlwgt, func(r *types.Record) int { return r.Fnlwgt }},
		{types.ColEducationNum, func(r *types.Record) int { return r.EducationNum }},
		{types.ColCapitalGain, func(r *types.Record) int { return r.CapitalGain }},
		{types.ColCapitalLoss, func(r *types.Record) int { return r.CapitalLoss }},
		{types.ColHoursPerWeek, func(r *types.Record) int { return r.HoursPerWeek }},
		{types.ColIncomeNumeric, func(r *types.Record) int { return r.IncomeNumeric }},
	}
	for _, col := range numeric {
		values := make([]int, t.Len())
		for i := range t.Records() {
			r := t.Record(i)
			values[i] = col.get(&r)
		}
		s.Numeric = append(s.Numeric, describeNumeric(col.name, values))
	}

	categorical := []struct {
		name string
		get  func(r *types.Record) (string, bool)
	}{
		{types.ColWorkclass, optGet(func(r *types.Record) *string { return r.Workclass })},
		{types.ColEducation, func(r *types.Record) (string, bool) { return r.Education, true }},
		{types.ColMaritalStatus, optGet(func(r *types.Record) *string { return r.MaritalStatus })},
		{types.ColOccupation, optGet(func(r *types.Record) *string { return r.Occupation })},
		{types.ColRelationship, optGet(func(r *types.Record) *string { return r.Relationship })},
		{types.ColRace, optGet(func(r *types.Record) *string { return r.Race })},
		{types.ColSex, optGet(func(r *types.Record) *string { return r.Sex })},
		{types.ColNativeCountry, optGet(func(r *types.Record) *string { return r.NativeCountry })},
		{types.ColIncome, func(r *types.Record) (string, bool) { return r.IncomeLabel, true }},
	}
	for _, col := range categorical {
		var values []string
		for i := range t.Records() {
			r := t.Record(i)
			if v, ok := col.get(&r); ok {
				values = append(values, v)
			}
		}
		s.Categorical = append(s.Categorical, describeCategorical(col.name, values))
	}

	return s
}

func describeNumeric(name string, values []int) NumericSummary {
	out := NumericSummary{Column: name, Count: len(values)}
	if len(values) == 0 {
		return out
	}
	sr := series.Ints(values)
	out.Mean = sr.Mean()
	out.Min = sr.Min()
	out.Median = sr.Median()
	out.Max = sr.Max()
	if len(values) > 1 {
		out.Std = sr.StdDev()
	}
	return out
}

func describeCategorical(name string, values []string) CategoricalSummary {
	out := CategoricalSummary{Column: name, Count: len(values)}
	freq := make(map[string]int, len(values))
	for _, v := range values {
		freq[v]++
	}
	out.Unique = len(freq)
	// first-seen order breaks frequency ties deterministically
	for _, v := range values {
		if freq[v] > out.Freq {
			out.Top = v
			out.Freq = freq[v]
		}
	}
	return out
}

func optGet(get func(r *types.Record) *string) func(r *types.Record) (string, bool) {
	return func(r *types.Record) (string, bool) {
		p := get(r)
		if p == nil {
			return "", false
		}
		return *p, true
	}
}
