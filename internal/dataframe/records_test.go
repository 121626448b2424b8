package dataframe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	colerrors "github.com/colfram/colfram/internal/errors"
	"github.com/colfram/colfram/internal/series"
)

func TestFromRecords(t *testing.T) {
	df, err := FromRecords([]Record{
		{"col0": "a", "col1": 5, "col2": 8.1},
		{"col0": "b", "col1": 6, "col2": 3.2},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"col0", "col1", "col2"}, df.Columns())
	assert.Equal(t, 2, df.Len())

	col1, err := df.Column("col1")
	require.NoError(t, err)
	assert.Equal(t, "col1", col1.Name())
	assert.Equal(t, []float64{5, 6}, col1.(*series.Series[float64]).Values())

	assert.Equal(t, "col0, col1, col2\na, 5, 8.1\nb, 6, 3.2", df.String())
}

func TestFromRecordsEmpty(t *testing.T) {
	df, err := FromRecords(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, df.Width())
	assert.Equal(t, 0, df.Len())
}

func TestFromRecordsMissingColumn(t *testing.T) {
	df, err := FromRecords([]Record{
		{"col0": "a", "col1": 5, "col2": 8.1},
		{"col0": "b", "col1": 6},
	})
	require.NoError(t, err)

	col2, err := df.Column("col2")
	require.NoError(t, err)
	assert.Equal(t, 2, col2.Len())
	assert.False(t, col2.IsNull(0))
	assert.True(t, col2.IsNull(1))

	assert.Equal(t, "col0, col1, col2\na, 5, 8.1\nb, 6, null", df.String())
}

func TestFromRecordsLateColumnBackfill(t *testing.T) {
	// A column first seen in a later record is null for earlier rows.
	df, err := FromRecords([]Record{
		{"a": 1},
		{"a": 2, "b": "late"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, df.Columns())

	b, err := df.Column("b")
	require.NoError(t, err)
	assert.True(t, b.IsNull(0))
	assert.False(t, b.IsNull(1))
	assert.Equal(t, "late", b.GetAsString(1))
}

func TestFromRecordsNumericCoercion(t *testing.T) {
	// Mixed int and float input lands in one float64 column, so columns
	// built from records can always be combined arithmetically.
	df, err := FromRecords([]Record{
		{"v": 5},
		{"v": 2.5},
		{"v": int32(7)},
	})
	require.NoError(t, err)

	v, err := df.Column("v")
	require.NoError(t, err)
	assert.Equal(t, "float64", v.DataType().String())
	assert.Equal(t, []float64{5, 2.5, 7}, v.(*series.Series[float64]).Values())
}

func TestFromRecordsKinds(t *testing.T) {
	df, err := FromRecords([]Record{
		{"s": "x", "b": true, "n": 1.5},
	})
	require.NoError(t, err)

	tests := []struct {
		column   string
		dataType string
	}{
		{"s", "utf8"},
		{"b", "bool"},
		{"n", "float64"},
	}

	for _, tt := range tests {
		col, err := df.Column(tt.column)
		require.NoError(t, err)
		assert.Equal(t, tt.dataType, col.DataType().String())
	}
}

func TestFromRecordsNilValue(t *testing.T) {
	df, err := FromRecords([]Record{
		{"v": nil},
		{"v": 3.5},
	})
	require.NoError(t, err)

	v, err := df.Column("v")
	require.NoError(t, err)
	assert.True(t, v.IsNull(0))
	assert.False(t, v.IsNull(1))
}

func TestFromRecordsAllNullColumn(t *testing.T) {
	df, err := FromRecords([]Record{
		{"v": nil},
		{"v": nil},
	})
	require.NoError(t, err)

	v, err := df.Column("v")
	require.NoError(t, err)
	assert.Equal(t, 2, v.Len())
	assert.True(t, v.IsNull(0))
	assert.True(t, v.IsNull(1))
	assert.Equal(t, "v\nnull\nnull", df.String())
}

func TestFromRecordsIncompatibleValue(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
	}{
		{
			name: "string after numeric",
			records: []Record{
				{"v": 1.5},
				{"v": "oops"},
			},
		},
		{
			name: "unsupported value type",
			records: []Record{
				{"v": []int{1, 2}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			df, err := FromRecords(tt.records)
			assert.Nil(t, df)
			assert.True(t, errors.Is(err, colerrors.ErrUnsupportedOperation))
		})
	}
}
