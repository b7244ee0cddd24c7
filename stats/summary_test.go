package stats

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/censusviz/censusviz/types"
)

func strPtr(s string) *string { return &s }

func testTable() *types.Table {
	return types.NewTable(types.AdultSchema(), []types.Record{
		{Age: 20, EducationNum: 9, Education: "HS-grad", IncomeLabel: "<=50K", IncomeNumeric: 0, Sex: strPtr("Male"), HoursPerWeek: 40},
		{Age: 30, EducationNum: 13, Education: "Bachelors", IncomeLabel: ">50K", IncomeNumeric: 1, Sex: strPtr("Male"), HoursPerWeek: 50},
		{Age: 40, EducationNum: 13, Education: "Bachelors", IncomeLabel: ">50K", IncomeNumeric: 1, Sex: nil, HoursPerWeek: 60},
	})
}

func TestPreview(t *testing.T) {
	table := testTable()

	assert.Len(t, Preview(table, 2), 2)
	assert.Len(t, Preview(table, 5), 3)
	assert.Equal(t, table.Record(0), Preview(table, 2)[0])
	assert.Empty(t, Preview(types.NewTable(types.AdultSchema(), nil), 5))
}

func TestDescribeNumeric(t *testing.T) {
	s := Describe(testTable())
	require.Equal(t, 3, s.Rows)

	age := findNumeric(t, s, types.ColAge)
	assert.Equal(t, 3, age.Count)
	assert.InDelta(t, 30.0, age.Mean, 1e-9)
	assert.InDelta(t, 10.0, age.Std, 1e-9)
	assert.InDelta(t, 20.0, age.Min, 1e-9)
	assert.InDelta(t, 30.0, age.Median, 1e-9)
	assert.InDelta(t, 40.0, age.Max, 1e-9)

	income := findNumeric(t, s, types.ColIncomeNumeric)
	assert.InDelta(t, 2.0/3.0, income.Mean, 1e-9)
}

func TestDescribeCategorical(t *testing.T) {
	s := Describe(testTable())

	edu := findCategorical(t, s, types.ColEducation)
	assert.Equal(t, 3, edu.Count)
	assert.Equal(t, 2, edu.Unique)
	assert.Equal(t, "Bachelors", edu.Top)
	assert.Equal(t, 2, edu.Freq)

	// absent values are excluded from the count
	sex := findCategorical(t, s, types.ColSex)
	assert.Equal(t, 2, sex.Count)
	assert.Equal(t, 1, sex.Unique)
	assert.Equal(t, "Male", sex.Top)
}

func TestDescribeEmptyTableIsJSONSafe(t *testing.T) {
	s := Describe(types.NewTable(types.AdultSchema(), nil))
	assert.Equal(t, 0, s.Rows)

	for _, n := range s.Numeric {
		assert.Zero(t, n.Count)
		assert.Zero(t, n.Mean)
		assert.Zero(t, n.Std)
	}

	// NaNs would make this fail to encode
	_, err := json.Marshal(s)
	require.NoError(t, err)
}

func TestDescribeSingleRowHasZeroStd(t *testing.T) {
	table := types.NewTable(types.AdultSchema(), []types.Record{
		{Age: 33, EducationNum: 10, Education: "Some-college", IncomeLabel: "<=50K"},
	})
	s := Describe(table)

	age := findNumeric(t, s, types.ColAge)
	assert.Equal(t, 1, age.Count)
	assert.Zero(t, age.Std)

	_, err := json.Marshal(s)
	require.NoError(t, err)
}

func findNumeric(t *testing.T, s Summary, column string) NumericSummary {
	t.Helper()
	for _, n := range s.Numeric {
		if n.Column == column {
			return n
		}
	}
	t.Fatalf("numeric summary for %q not found", column)
	return NumericSummary{}
}

func findCategorical(t *testing.T, s Summary, column string) CategoricalSummary {
	t.Helper()
	for _, c := range s.Categorical {
		if c.Column == column {
			return c
		}
	}
	t.Fatalf("categorical summary for %q not found", column)
	return CategoricalSummary{}
}
