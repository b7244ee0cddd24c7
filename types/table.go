package types

// Table is an ordered, immutable collection of Records together with the
// schema they were validated against. The loader is the only producer of a
// table from the source file; the filter pipeline produces derived tables
// and never mutates its input.
type Table struct {
	schema  Schema
	records []Record
}

// NewTable builds a table over the given records. The records slice is
// owned by the table after the call.
func NewTable(schema Schema, records []Record) *Table {
	return &Table{schema: schema, records: records}
}

// Schema returns the table's column schema.
func (t *Table) Schema() Schema {
	return t.schema
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns the table's records in load order. Callers must not
// modify the returned slice.
func (t *Table) Records() []Record {
	return t.records
}

// Record returns the i-th record.
func (t *Table) Record(i int) Record {
	return t.records[i]
}

// EducationNumBounds returns the observed min and max of education.num.
// An empty table yields (0, 0).
func (t *Table) EducationNumBounds() (min, max int) {
	if len(t.records) == 0 {
		return 0, 0
	}
	min, max = t.records[0].EducationNum, t.records[0].EducationNum
	for _, r := range t.records[1:] {
		if r.EducationNum < min {
			min = r.EducationNum
		}
		if r.EducationNum > max {
			max = r.EducationNum
		}
	}
	return min, max
}

// DistinctEducationLevels returns the distinct education labels in
// first-seen order.
func (t *Table) DistinctEducationLevels() []string {
	return distinct(t.records, func(r Record) string { return r.Education })
}

// DistinctIncomeLabels returns the distinct income labels in first-seen
// order.
func (t *Table) DistinctIncomeLabels() []string {
	return distinct(t.records, func(r Record) string { return r.IncomeLabel })
}

// DistinctDimensionValues returns the distinct, present values of the given
// dimension column in first-seen order. Absent values are skipped.
func (t *Table) DistinctDimensionValues(d Dimension) []string {
	seen := make(map[string]bool)
	var out []string
	for i := range t.records {
		v, ok := t.records[i].DimensionValue(d)
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func distinct(records []Record, key func(Record) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		k := key(r)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
