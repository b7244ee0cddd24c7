package types

import "strings"

// Record is one row of the census table. Nullable columns are pointers; a
// nil pointer is the absent value the loader produces for the missing-value
// sentinel. IncomeNumeric is derived from IncomeLabel at load time and is
// never read from the source file.
type Record struct {
	Age           int     `json:"age"`
	Workclass     *string `json:"workclass"`
	Fnlwgt        int     `json:"fnlwgt"`
	Education     string  `json:"education"`
	EducationNum  int     `json:"education.num"`
	MaritalStatus *string `json:"marital.status"`
	Occupation    *string `json:"occupation"`
	Relationship  *string `json:"relationship"`
	Race          *string `json:"race"`
	Sex           *string `json:"sex"`
	CapitalGain   int     `json:"capital.gain"`
	CapitalLoss   int     `json:"capital.loss"`
	HoursPerWeek  int     `json:"hours.per.week"`
	NativeCountry *string `json:"native.country"`
	IncomeLabel   string  `json:"income"`
	IncomeNumeric int     `json:"income_numeric"`
}

// IncomeNumericFromLabel derives the numeric income column from an income
// bracket label: the trimmed higher-bracket label maps to 1, everything
// else to 0. Labels outside the known bracket set degrade to 0 rather than
// erroring, matching the source data's behavior.
func IncomeNumericFromLabel(label string) int {
	if strings.TrimSpace(label) == HigherBracketLabel {
		return 1
	}
	return 0
}

// DimensionValue returns the record's value for the given third-dimension
// column. ok is false when the value is absent.
func (r *Record) DimensionValue(d Dimension) (value string, ok bool) {
	var p *string
	switch d {
	case DimensionRace:
		p = r.Race
	case DimensionSex:
		p = r.Sex
	case DimensionMaritalStatus:
		p = r.MaritalStatus
	case DimensionWorkclass:
		p = r.Workclass
	case DimensionOccupation:
		p = r.Occupation
	case DimensionRelationship:
		p = r.Relationship
	case DimensionNativeCountry:
		p = r.NativeCountry
	default:
		return "", false
	}
	if p == nil {
		return "", false
	}
	return *p, true
}
