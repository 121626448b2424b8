// Package testutil provides common testing utilities shared by test files
// across the colfram library.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colfram/colfram/internal/dataframe"
	"github.com/colfram/colfram/internal/series"
)

// SampleRecords returns the canonical mixed-kind rows used throughout the
// test suite: a string column and two numeric columns.
func SampleRecords() []dataframe.Record {
	return []dataframe.Record{
		{"col0": "a", "col1": 5, "col2": 8.1},
		{"col0": "b", "col1": 6, "col2": 3.2},
	}
}

// SampleFrame builds a DataFrame from SampleRecords, failing the test on
// construction errors.
func SampleFrame(tb testing.TB) *dataframe.DataFrame {
	tb.Helper()

	df, err := dataframe.FromRecords(SampleRecords())
	require.NoError(tb, err)
	return df
}

// NumericFrame builds an aligned two-column float64 frame.
func NumericFrame(tb testing.TB, a, b []float64) *dataframe.DataFrame {
	tb.Helper()

	df, err := dataframe.New(
		series.New("a", a),
		series.New("b", b),
	)
	require.NoError(tb, err)
	return df
}

// AssertColumnValues checks that the named column holds exactly the given
// float64 values within delta.
func AssertColumnValues(tb testing.TB, df *dataframe.DataFrame, name string, expected []float64, delta float64) {
	tb.Helper()

	col, err := df.Column(name)
	require.NoError(tb, err)

	fs, ok := col.(*series.Series[float64])
	require.True(tb, ok, "column %s is not float64", name)

	values := fs.Values()
	require.Len(tb, values, len(expected))
	for i, want := range expected {
		assert.InDelta(tb, want, values[i], delta, "column %s row %d", name, i)
	}
}

// AssertColumnOrder checks the frame's column order.
func AssertColumnOrder(tb testing.TB, df *dataframe.DataFrame, expected ...string) {
	tb.Helper()
	assert.Equal(tb, expected, df.Columns())
}
