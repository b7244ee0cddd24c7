package dataset

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dserrors "github.com/censusviz/censusviz/dataset/errors"
	"github.com/censusviz/censusviz/types"
)

func loadSample(t *testing.T) *types.Table {
	t.Helper()

	loader := NewLoader(filepath.Join("testdata", "adult_sample.csv"))
	table, err := loader.Load(context.Background())
	require.NoError(t, err)
	return table
}

func TestLoaderLoad(t *testing.T) {
	table := loadSample(t)
	require.Equal(t, 8, table.Len())

	first := table.Record(0)
	assert.Equal(t, 39, first.Age)
	require.NotNil(t, first.Workclass)
	assert.Equal(t, "State-gov", *first.Workclass)
	assert.Equal(t, "Bachelors", first.Education)
	assert.Equal(t, 13, first.EducationNum)
	assert.Equal(t, "<=50K", first.IncomeLabel)
	assert.Equal(t, 0, first.IncomeNumeric)
	assert.Equal(t, 40, first.HoursPerWeek)
}

func TestLoaderNormalizesSentinel(t *testing.T) {
	table := loadSample(t)

	// row 4 carries the sentinel in workclass, occupation and native.country
	r := table.Record(3)
	assert.Nil(t, r.Workclass)
	assert.Nil(t, r.Occupation)
	assert.Nil(t, r.NativeCountry)

	// the literal token never survives into a loaded record
	for _, rec := range table.Records() {
		for _, p := range []*string{rec.Workclass, rec.Occupation, rec.NativeCountry,
			rec.MaritalStatus, rec.Relationship, rec.Race, rec.Sex} {
			if p != nil {
				assert.NotEqual(t, types.MissingSentinel, *p)
			}
		}
	}
}

func TestLoaderDerivesIncomeNumeric(t *testing.T) {
	table := loadSample(t)

	for _, r := range table.Records() {
		assert.Equal(t, types.IncomeNumericFromLabel(r.IncomeLabel), r.IncomeNumeric)
	}

	// row 5's label carries leading whitespace and still derives 1
	r := table.Record(4)
	assert.Equal(t, " >50K", r.IncomeLabel)
	assert.Equal(t, 1, r.IncomeNumeric)

	assert.Equal(t, 1, table.Record(1).IncomeNumeric)
	assert.Equal(t, 0, table.Record(2).IncomeNumeric)
}

func TestLoaderMemoizes(t *testing.T) {
	loader := NewLoader(filepath.Join("testdata", "adult_sample.csv"))

	first, err := loader.Load(context.Background())
	require.NoError(t, err)
	second, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, first.Len(), second.Len())
	assert.Equal(t, first.Records(), second.Records())
}

func TestLoaderResourceNotFound(t *testing.T) {
	loader := NewLoader(filepath.Join("testdata", "does_not_exist.csv"))

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.True(t, dserrors.IsResourceNotFound(err))
	assert.True(t, errors.Is(err, dserrors.ErrResourceNotFound))
	assert.Contains(t, err.Error(), "does_not_exist.csv")
}

func TestLoaderMissingColumn(t *testing.T) {
	loader := NewLoader(filepath.Join("testdata", "missing_column.csv"))

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.True(t, dserrors.IsLoadFailure(err))
	assert.Contains(t, err.Error(), "income")
}

func TestLoaderBadNumericColumn(t *testing.T) {
	loader := NewLoader(filepath.Join("testdata", "bad_types.csv"))

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.True(t, dserrors.IsLoadFailure(err))
}

func TestLoaderNullInRequiredColumn(t *testing.T) {
	loader := NewLoader(filepath.Join("testdata", "null_required.csv"))

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.True(t, dserrors.IsLoadFailure(err))
	assert.Contains(t, err.Error(), types.ColIncome)
}

func TestLoaderFailureIsMemoized(t *testing.T) {
	loader := NewLoader(filepath.Join("testdata", "does_not_exist.csv"))

	_, first := loader.Load(context.Background())
	_, second := loader.Load(context.Background())
	require.Error(t, first)
	assert.Equal(t, first, second)
}

func TestLoaderDefaultPath(t *testing.T) {
	loader := NewLoader("")
	assert.Equal(t, DefaultPath, loader.Path())
}
