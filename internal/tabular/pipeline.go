package tabular

import (
	"errors"
	"strings"

	"tabview/internal/types"
)

const (
	// DefaultMaxRows is the initial-load row cap when the caller passes none.
	DefaultMaxRows = 10000
	// DefaultBatchSize is the load-more batch when the caller passes none.
	DefaultBatchSize = 5000

	// pipelineSampleLines is how many leading lines feed delimiter detection.
	pipelineSampleLines = 10
)

// ErrEmptyInput rejects empty or whitespace-only source text.
var ErrEmptyInput = errors.New("file is empty or contains only whitespace")

// ValidationError is the terminal failure for a structurally unusable
// table. Its message is the validator's reason, plain enough to display
// directly.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// InitialLoad runs the full pipeline over text: detect the delimiter from
// a leading sample (or honor the configured override), parse up to
// maxRows data rows, validate, and estimate the total row count. A
// validation failure returns the error and no table. Every call is a pure
// function of its arguments; nothing is cached between calls.
func InitialLoad(text, configuredDelimiter string, maxRows int) (*types.LoadResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}

	delim := Detect(firstLines(text, pipelineSampleLines), configuredDelimiter)
	table := Parse(text, delim, maxRows)
	if outcome := Validate(table); !outcome.Valid {
		return nil, &ValidationError{Reason: outcome.Reason}
	}

	return &types.LoadResult{
		Headers:        table.Headers,
		Rows:           table.Rows,
		TotalRows:      table.RowCount(),
		EstimatedTotal: Estimate(text),
		Delimiter:      delim.DisplayName(),
		HasMore:        table.RowCount() >= maxRows,
		ParseErrors:    table.ParseErrors,
	}, nil
}

// LoadMore re-parses text with cap currentRowCount+batchSize and returns
// only the newly exposed rows. The delimiter is re-detected on every call;
// recomputing from scratch keeps the contract stateless at the cost of
// re-scanning already delivered rows.
func LoadMore(text, configuredDelimiter string, currentRowCount, batchSize int) (*types.MoreResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	if currentRowCount < 0 {
		currentRowCount = 0
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	rowCap := currentRowCount + batchSize

	delim := Detect(firstLines(text, pipelineSampleLines), configuredDelimiter)
	table := Parse(text, delim, rowCap)

	newRows := [][]string{}
	if currentRowCount < table.RowCount() {
		newRows = table.Rows[currentRowCount:]
	}

	return &types.MoreResult{
		NewRows: newRows,
		HasMore: table.RowCount() >= rowCap,
	}, nil
}

// ParseAll detects, parses without a row cap, and validates. It backs the
// XLSX exporter, which needs every row rather than a capped window.
func ParseAll(text, configuredDelimiter string) (*types.ParsedTable, Delimiter, error) {
	if strings.TrimSpace(text) == "" {
		return nil, Comma, ErrEmptyInput
	}

	delim := Detect(firstLines(text, pipelineSampleLines), configuredDelimiter)
	table := Parse(text, delim, -1)
	if outcome := Validate(table); !outcome.Valid {
		return nil, delim, &ValidationError{Reason: outcome.Reason}
	}
	return table, delim, nil
}

// firstLines returns text up to and including its n-th line break, or all
// of text when it has fewer lines.
func firstLines(text string, n int) string {
	idx := 0
	for i := 0; i < n; i++ {
		j := strings.IndexByte(text[idx:], '\n')
		if j < 0 {
			return text
		}
		idx += j + 1
	}
	return text[:idx]
}
