// Package types contains shared types used across multiple packages to avoid import cycles.
package types

// ParseError records a non-fatal anomaly found while splitting records.
// Kind is "quotes" for malformed quoting and "fields" for a row whose
// field count differs from the header. RowIndex is the 0-based index of
// the parsed record (the header is record 0).
type ParseError struct {
	Kind     string
	Message  string
	RowIndex int
}

// ParsedTable is the result of one parse pass over a source text.
// Rows are not guaranteed to match the header's field count; mismatches
// are annotated in ParseErrors and judged by the validator.
type ParsedTable struct {
	Headers     []string
	Rows        [][]string
	ParseErrors []ParseError
}

// RowCount reports the number of data rows.
func (t *ParsedTable) RowCount() int {
	return len(t.Rows)
}

// ValidationOutcome is the validator's verdict on a parsed table.
// Reason is empty when Valid is true.
type ValidationOutcome struct {
	Valid  bool
	Reason string
}

// LoadResult is the response shape of an initial load.
type LoadResult struct {
	Headers        []string
	Rows           [][]string
	TotalRows      int
	EstimatedTotal int
	Delimiter      string
	HasMore        bool
	ParseErrors    []ParseError
}

// MoreResult is the response shape of an incremental load. NewRows holds
// only the rows beyond the caller's current count.
type MoreResult struct {
	NewRows [][]string
	HasMore bool
}
