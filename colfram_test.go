package colfram

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	colerrors "github.com/colfram/colfram/internal/errors"
)

func TestPublicSeriesRoundTrip(t *testing.T) {
	s := NewSeries("scores", []float64{85.5, 92.0, 78.3})

	assert.Equal(t, "scores", s.Name())
	assert.Equal(t, 3, s.Len())

	v, err := s.Get(1)
	require.NoError(t, err)
	assert.InDelta(t, 92.0, v, 0)

	require.NoError(t, s.Set(1, 93.0))
	s.Append(60.0)
	assert.Equal(t, 4, s.Len())

	assert.Equal(t, "(scores): 85.5, 93, 78.3, 60", s.String())
}

func TestPublicDataFrameWorkflow(t *testing.T) {
	df, err := FromRecords([]Record{
		{"col0": "a", "col1": 5, "col2": 8.1},
		{"col0": "b", "col1": 6, "col2": 3.2},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"col0", "col1", "col2"}, df.Columns())
	assert.Equal(t, "col0, col1, col2\na, 5, 8.1\nb, 6, 3.2", df.String())

	col1, err := df.Column("col1")
	require.NoError(t, err)
	col2, err := df.Column("col2")
	require.NoError(t, err)

	derived, err := col1.Add(col2)
	require.NoError(t, err)
	df.SetColumn("col3", derived)

	assert.Equal(t, "col0, col1, col2, col3\na, 5, 8.1, 13.1\nb, 6, 3.2, 9.2", df.String())

	col3, err := df.Column("col3")
	require.NoError(t, err)
	assert.Equal(t, "col1+col2", col3.Name())
}

func TestPublicErrorsSurface(t *testing.T) {
	df, err := NewDataFrame(
		NewSeries("a", []float64{1, 2}),
		NewSeries("b", []float64{3}),
	)
	require.NoError(t, err)

	_, err = df.Column("missing")
	assert.True(t, errors.Is(err, colerrors.ErrUnknownColumn))

	assert.True(t, errors.Is(df.Validate(), colerrors.ErrLengthMismatch))

	_, err = NewDataFrame(NewSeries("x", []int64{1}), NewSeries("x", []int64{2}))
	assert.True(t, errors.Is(err, colerrors.ErrDuplicateColumnName))
}

func TestPublicArithmeticOnStrings(t *testing.T) {
	df, err := FromRecords([]Record{{"col0": "a", "col1": 5}})
	require.NoError(t, err)

	col0, err := df.Column("col0")
	require.NoError(t, err)
	col1, err := df.Column("col1")
	require.NoError(t, err)

	_, err = col0.Add(col1)
	assert.True(t, errors.Is(err, colerrors.ErrUnsupportedOperation))
}

func TestPublicRecordExport(t *testing.T) {
	df, err := NewDataFrame(
		NewSeries("name", []string{"alice", "bob"}),
		NewSeries("age", []int64{30, 25}),
	)
	require.NoError(t, err)

	rec, err := df.Record(nil)
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(2), rec.NumRows())
	assert.Equal(t, int64(2), rec.NumCols())
}

func TestPublicEqualAndFingerprint(t *testing.T) {
	left, err := FromRecords([]Record{{"v": 1.5}})
	require.NoError(t, err)
	right, err := FromRecords([]Record{{"v": 1.5}})
	require.NoError(t, err)

	assert.True(t, left.Equal(right))
	assert.Equal(t, left.Fingerprint(), right.Fingerprint())

	right.SetColumn("w", NewSeries("w", []float64{2}))
	assert.False(t, left.Equal(right))
}

func TestPublicSelectDrop(t *testing.T) {
	df, err := NewDataFrame(
		NewSeries("a", []int64{1}),
		NewSeries("b", []int64{2}),
		NewSeries("c", []int64{3}),
	)
	require.NoError(t, err)

	sub, err := df.Select("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, sub.Columns())

	assert.Equal(t, []string{"a", "c"}, df.Drop("b").Columns())
}

func TestPublicConfig(t *testing.T) {
	original := GetConfig()
	defer SetConfig(original)

	cfg := GetConfig()
	cfg.NullText = "NA"
	SetConfig(cfg)

	df, err := FromRecords([]Record{
		{"a": 1.0, "b": 2.0},
		{"a": 3.0},
	})
	require.NoError(t, err)
	assert.Equal(t, "a, b\n1, 2\n3, NA", df.String())
}
