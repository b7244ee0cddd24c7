package types

// Column names as they appear in the adult.csv header.
const (
	ColAge           = "age"
	ColWorkclass     = "workclass"
	ColFnlwgt        = "fnlwgt"
	ColEducation     = "education"
	ColEducationNum  = "education.num"
	ColMaritalStatus = "marital.status"
	ColOccupation    = "occupation"
	ColRelationship  = "relationship"
	ColRace          = "race"
	ColSex           = "sex"
	ColCapitalGain   = "capital.gain"
	ColCapitalLoss   = "capital.loss"
	ColHoursPerWeek  = "hours.per.week"
	ColNativeCountry = "native.country"
	ColIncome        = "income"
)

// ColIncomeNumeric is the derived column added during load. It never
// appears in the source file.
const ColIncomeNumeric = "income_numeric"

// HigherBracketLabel is the income label that derives income_numeric = 1.
// Comparison is against the whitespace-trimmed label.
const HigherBracketLabel = ">50K"

// MissingSentinel is the literal token the source file uses for missing
// values. The loader normalizes it to an absent value; it must never
// survive into a Record.
const MissingSentinel = "?"

// Schema describes the fixed column set of the census dataset. The schema
// is validated once at load time so that downstream code can rely on typed
// field access instead of column-name lookups.
type Schema struct {
	Columns []ColumnDefinition `json:"columns"`
}

// AdultSchema returns the schema of the adult census dataset. Columns that
// carry the missing-value sentinel in the wild are nullable; the three
// columns the filter pipeline constrains on are not.
func AdultSchema() Schema {
	return Schema{Columns: []ColumnDefinition{
		{Name: ColAge, Type: ColumnTypeInteger},
		{Name: ColWorkclass, Type: ColumnTypeString, Nullable: true},
		{Name: ColFnlwgt, Type: ColumnTypeInteger},
		{Name: ColEducation, Type: ColumnTypeString},
		{Name: ColEducationNum, Type: ColumnTypeInteger},
		{Name: ColMaritalStatus, Type: ColumnTypeString, Nullable: true},
		{Name: ColOccupation, Type: ColumnTypeString, Nullable: true},
		{Name: ColRelationship, Type: ColumnTypeString, Nullable: true},
		{Name: ColRace, Type: ColumnTypeString, Nullable: true},
		{Name: ColSex, Type: ColumnTypeString, Nullable: true},
		{Name: ColCapitalGain, Type: ColumnTypeInteger},
		{Name: ColCapitalLoss, Type: ColumnTypeInteger},
		{Name: ColHoursPerWeek, Type: ColumnTypeInteger},
		{Name: ColNativeCountry, Type: ColumnTypeString, Nullable: true},
		{Name: ColIncome, Type: ColumnTypeString},
	}}
}

// Column returns the definition of the named column.
func (s Schema) Column(name string) (ColumnDefinition, bool) {
	for _, col := range s.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return ColumnDefinition{}, false
}

// ColumnNames returns the column names in schema order.
func (s Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		names[i] = col.Name
	}
	return names
}
