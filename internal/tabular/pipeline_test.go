package tabular

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fiveRowText = "h1,h2\n1,a\n2,b\n3,c\n4,d\n5,e"

func TestInitialLoad(t *testing.T) {
	result, err := InitialLoad(fiveRowText, Auto, 100)
	require.NoError(t, err)

	assert.Equal(t, []string{"h1", "h2"}, result.Headers)
	assert.Equal(t, 5, result.TotalRows)
	assert.Len(t, result.Rows, 5)
	assert.Equal(t, "Comma", result.Delimiter)
	assert.False(t, result.HasMore)
	assert.GreaterOrEqual(t, result.EstimatedTotal, 1)
	assert.Empty(t, result.ParseErrors)
}

func TestInitialLoadHasMoreAtCap(t *testing.T) {
	result, err := InitialLoad(fiveRowText, Auto, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalRows)
	assert.True(t, result.HasMore, "row count reached the cap")
}

func TestInitialLoadEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\t\n"} {
		_, err := InitialLoad(text, Auto, 100)
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
}

func TestInitialLoadValidationFailure(t *testing.T) {
	_, err := InitialLoad("only,a,header", Auto, 100)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "no data rows", verr.Reason)
}

func TestInitialLoadIdempotent(t *testing.T) {
	first, err := InitialLoad(fiveRowText, Auto, 3)
	require.NoError(t, err)
	second, err := InitialLoad(fiveRowText, Auto, 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestInitialLoadHonorsOverride(t *testing.T) {
	// Semicolon override on comma-shaped data: every line becomes a
	// single field, which still validates as a one-column table.
	result, err := InitialLoad(fiveRowText, ";", 100)
	require.NoError(t, err)

	assert.Equal(t, "Semicolon", result.Delimiter)
	assert.Equal(t, []string{"h1,h2"}, result.Headers)
}

func TestLoadMore(t *testing.T) {
	result, err := LoadMore(fiveRowText, Auto, 2, 2)
	require.NoError(t, err)

	require.Len(t, result.NewRows, 2)
	assert.Equal(t, []string{"3", "c"}, result.NewRows[0])
	assert.Equal(t, []string{"4", "d"}, result.NewRows[1])
	assert.True(t, result.HasMore)
}

func TestLoadMoreExhausted(t *testing.T) {
	result, err := LoadMore(fiveRowText, Auto, 3, 10)
	require.NoError(t, err)

	require.Len(t, result.NewRows, 2)
	assert.False(t, result.HasMore)
}

func TestLoadMorePastEnd(t *testing.T) {
	result, err := LoadMore(fiveRowText, Auto, 5, 10)
	require.NoError(t, err)

	assert.Empty(t, result.NewRows)
	assert.False(t, result.HasMore)
}

func TestLoadMoreEmptyInput(t *testing.T) {
	_, err := LoadMore("  ", Auto, 0, 10)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestLoadMoreMatchesInitialLoad(t *testing.T) {
	// Rows delivered across initial load plus repeated load-more calls
	// reassemble the table exactly.
	initial, err := InitialLoad(fiveRowText, Auto, 2)
	require.NoError(t, err)

	rows := initial.Rows
	hasMore := initial.HasMore
	for hasMore {
		more, err := LoadMore(fiveRowText, Auto, len(rows), 2)
		require.NoError(t, err)
		rows = append(rows, more.NewRows...)
		hasMore = more.HasMore
	}

	full, err := InitialLoad(fiveRowText, Auto, 100)
	require.NoError(t, err)
	assert.Equal(t, full.Rows, rows)
}

func TestParseAll(t *testing.T) {
	table, delim, err := ParseAll(fiveRowText, Auto)
	require.NoError(t, err)

	assert.Equal(t, Comma, delim)
	assert.Equal(t, 5, table.RowCount())
}

func TestParseAllValidationFailure(t *testing.T) {
	_, _, err := ParseAll("h1;h2", Auto)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
}

func TestFirstLines(t *testing.T) {
	text := strings.Repeat("line\n", 20)

	assert.Equal(t, strings.Repeat("line\n", 10), firstLines(text, 10))
	assert.Equal(t, text, firstLines(text, 50))
	assert.Equal(t, "a\nb", firstLines("a\nb", 10))
}
