package types

import "fmt"

// Dimension is a categorical column that can serve as the third axis and
// color channel of the 3D scatter view. It selects a column; it never
// filters rows.
type Dimension string

const (
	DimensionRace          Dimension = ColRace
	DimensionSex           Dimension = ColSex
	DimensionMaritalStatus Dimension = ColMaritalStatus
	DimensionWorkclass     Dimension = ColWorkclass
	DimensionOccupation    Dimension = ColOccupation
	DimensionRelationship  Dimension = ColRelationship
	DimensionNativeCountry Dimension = ColNativeCountry
)

// Dimensions returns the selectable third-dimension columns in display
// order. The first entry is the default selection.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionRace,
		DimensionSex,
		DimensionMaritalStatus,
		DimensionWorkclass,
		DimensionOccupation,
		DimensionRelationship,
		DimensionNativeCountry,
	}
}

// ParseDimension validates a column name as a third-dimension selection.
func ParseDimension(name string) (Dimension, error) {
	d := Dimension(name)
	if !d.Valid() {
		return "", fmt.Errorf("invalid dimension %q", name)
	}
	return d, nil
}

// Valid reports whether d is one of the selectable dimensions.
func (d Dimension) Valid() bool {
	for _, known := range Dimensions() {
		if d == known {
			return true
		}
	}
	return false
}

func (d Dimension) String() string {
	return string(d)
}
