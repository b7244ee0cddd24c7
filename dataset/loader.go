// Package dataset loads the census table from its CSV resource.
package dataset

import (
	"context"
	"os"
	"sync"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	dserrors "github.com/censusviz/censusviz/dataset/errors"
	"github.com/censusviz/censusviz/logger"
	"github.com/censusviz/censusviz/types"
)

// DefaultPath is where the loader looks for the dataset when no path is
// configured.
const DefaultPath = "adult.csv"

// Loader reads the census CSV once per process and memoizes the resulting
// table. The table is read-only after the first Load; every later call
// returns the same table without touching the file again. A failed load is
// memoized the same way: loading is not retried within the process.
type Loader struct {
	path   string
	schema types.Schema

	once  sync.Once
	table *types.Table
	err   error
}

// NewLoader creates a loader for the dataset at path. An empty path falls
// back to DefaultPath.
func NewLoader(path string) *Loader {
	if path == "" {
		path = DefaultPath
	}
	return &Loader{path: path, schema: types.AdultSchema()}
}

// Path returns the configured dataset location.
func (l *Loader) Path() string {
	return l.path
}

// Load parses the dataset on first call and returns the memoized table
// afterwards. Errors are either ErrResourceNotFound (file missing) or
// ErrLoadFailure (parse or schema failure); both are fatal for the caller.
func (l *Loader) Load(ctx context.Context) (*types.Table, error) {
	l.once.Do(func() {
		l.table, l.err = l.load(ctx)
	})
	return l.table, l.err
}

func (l *Loader) load(ctx context.Context) (*types.Table, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, dserrors.Wrap(err, "resource_not_found",
				"dataset %q not found; place the census file there or point --dataset at it", l.path)
		}
		return nil, dserrors.Wrap(err, "load_failure", "open dataset %q", l.path)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.NaNValues([]string{types.MissingSentinel}),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(columnTypes(l.schema)),
	)
	if df.Error() != nil {
		return nil, dserrors.Wrap(df.Error(), "load_failure", "parse dataset %q", l.path)
	}

	table, err := project(df, l.schema)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "dataset loaded", "path", l.path, "records", table.Len())
	return table, nil
}

func columnTypes(schema types.Schema) map[string]series.Type {
	m := make(map[string]series.Type, len(schema.Columns))
	for _, col := range schema.Columns {
		switch col.Type {
		case types.ColumnTypeInteger:
			m[col.Name] = series.Int
		default:
			m[col.Name] = series.String
		}
	}
	return m
}

// project validates the parsed frame against the schema and converts it
// into typed records. Column or type surprises fail here, at load time,
// instead of at filter time. The missing-value sentinel normalizes to an
// absent value only in nullable columns; in a non-nullable column (the
// filtered and numeric columns, where an absent value has no meaningful
// filter or axis behavior) it is rejected as a load failure.
func project(df dataframe.DataFrame, schema types.Schema) (*types.Table, error) {
	present := make(map[string]bool, len(df.Names()))
	for _, name := range df.Names() {
		present[name] = true
	}
	for _, col := range schema.Columns {
		if !present[col.Name] {
			return nil, dserrors.New("load_failure", "dataset is missing required column %q", col.Name)
		}
	}

	cols := make(map[string]series.Series, len(schema.Columns))
	for _, col := range schema.Columns {
		cols[col.Name] = df.Col(col.Name)
	}

	records := make([]types.Record, df.Nrow())
	for i := range records {
		rr := rowReader{cols: cols, row: i}
		r := &records[i]

		r.Age = rr.intCol(types.ColAge)
		r.Workclass = rr.optStrCol(types.ColWorkclass)
		r.Fnlwgt = rr.intCol(types.ColFnlwgt)
		r.Education = rr.strCol(types.ColEducation)
		r.EducationNum = rr.intCol(types.ColEducationNum)
		r.MaritalStatus = rr.optStrCol(types.ColMaritalStatus)
		r.Occupation = rr.optStrCol(types.ColOccupation)
		r.Relationship = rr.optStrCol(types.ColRelationship)
		r.Race = rr.optStrCol(types.ColRace)
		r.Sex = rr.optStrCol(types.ColSex)
		r.CapitalGain = rr.intCol(types.ColCapitalGain)
		r.CapitalLoss = rr.intCol(types.ColCapitalLoss)
		r.HoursPerWeek = rr.intCol(types.ColHoursPerWeek)
		r.NativeCountry = rr.optStrCol(types.ColNativeCountry)
		r.IncomeLabel = rr.strCol(types.ColIncome)

		if rr.err != nil {
			return nil, rr.err
		}
		r.IncomeNumeric = types.IncomeNumericFromLabel(r.IncomeLabel)
	}

	return types.NewTable(schema, records), nil
}

// rowReader reads one row's typed values, capturing the first error so the
// per-column calls stay linear.
type rowReader struct {
	cols map[string]series.Series
	row  int
	err  error
}

func (rr *rowReader) intCol(name string) int {
	if rr.err != nil {
		return 0
	}
	elem := rr.cols[name].Elem(rr.row)
	if elem.IsNA() {
		rr.err = dserrors.New("load_failure", "row %d: null value in non-nullable column %q", rr.row+1, name)
		return 0
	}
	v, err := elem.Int()
	if err != nil {
		rr.err = dserrors.Wrap(err, "load_failure", "row %d: column %q", rr.row+1, name)
		return 0
	}
	return v
}

func (rr *rowReader) strCol(name string) string {
	if rr.err != nil {
		return ""
	}
	elem := rr.cols[name].Elem(rr.row)
	if elem.IsNA() {
		rr.err = dserrors.New("load_failure", "row %d: null value in non-nullable column %q", rr.row+1, name)
		return ""
	}
	return elem.String()
}

func (rr *rowReader) optStrCol(name string) *string {
	if rr.err != nil {
		return nil
	}
	elem := rr.cols[name].Elem(rr.row)
	if elem.IsNA() {
		return nil
	}
	v := elem.String()
	return &v
}
