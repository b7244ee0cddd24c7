package types

// ColumnType represents the data type of a dataset column
type ColumnType string

const (
	ColumnTypeInteger ColumnType = "integer"
	ColumnTypeString  ColumnType = "string"
)

// IsValidColumnType checks if a column type is valid
func IsValidColumnType(typ ColumnType) bool {
	switch typ {
	case ColumnTypeInteger, ColumnTypeString:
		return true
	default:
		return false
	}
}

// ColumnDefinition defines a dataset column
type ColumnDefinition struct {
	Name     string     `json:"name"`
	Type     ColumnType `json:"type"`
	Nullable bool       `json:"nullable"`
}
