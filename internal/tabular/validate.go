package tabular

import "tabview/internal/types"

// inconsistencyThreshold is the tolerated share of rows whose field count
// differs from the header before the table is rejected outright.
const inconsistencyThreshold = 0.1

// Validate checks a parsed table for basic structural soundness. It is a
// pure read and never mutates the table.
func Validate(table *types.ParsedTable) types.ValidationOutcome {
	if len(table.Headers) == 0 {
		return invalid("no header row")
	}
	if len(table.Rows) == 0 {
		return invalid("no data rows")
	}

	mismatched := 0
	for _, row := range table.Rows {
		if len(row) != len(table.Headers) {
			mismatched++
		}
	}
	if float64(mismatched) > inconsistencyThreshold*float64(len(table.Rows)) {
		return invalid("inconsistent columns")
	}

	return types.ValidationOutcome{Valid: true}
}

func invalid(reason string) types.ValidationOutcome {
	return types.ValidationOutcome{Valid: false, Reason: reason}
}
