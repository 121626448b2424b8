// Package dataframe provides an ordered mapping from column name to Series.
// A DataFrame stores and retrieves named columns; all arithmetic lives on
// the Series themselves.
package dataframe

import (
	"fmt"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	xxhash "github.com/cespare/xxhash/v2"

	"github.com/colfram/colfram/internal/config"
	"github.com/colfram/colfram/internal/errors"
	"github.com/colfram/colfram/internal/series"
)

// ISeries is the type-erased column interface shared with the series
// package.
type ISeries = series.ISeries

// DataFrame represents a table of data with named columns. Column insertion
// order is preserved for display.
type DataFrame struct {
	columns map[string]ISeries
	order   []string
}

// New creates a new DataFrame from the given columns, keyed by each series'
// name in argument order. Repeated names fail with a duplicate column error.
// When ValidateOnBuild is configured, misaligned column lengths fail too.
func New(seriesList ...ISeries) (*DataFrame, error) {
	columns := make(map[string]ISeries, len(seriesList))
	order := make([]string, 0, len(seriesList))

	for _, s := range seriesList {
		name := s.Name()
		if _, exists := columns[name]; exists {
			return nil, errors.NewDuplicateColumnError("New", name)
		}
		columns[name] = s
		order = append(order, name)
	}

	df := &DataFrame{columns: columns, order: order}

	if config.GetGlobalConfig().ValidateOnBuild {
		if err := df.Validate(); err != nil {
			return nil, err
		}
	}

	return df, nil
}

// Columns returns the names of all columns in order.
func (df *DataFrame) Columns() []string {
	if len(df.order) == 0 {
		return []string{}
	}
	return append([]string(nil), df.order...)
}

// Len returns the number of rows: the maximum column length, which is what
// String iterates over when columns have diverged.
func (df *DataFrame) Len() int {
	maxLen := 0
	for _, name := range df.order {
		if l := df.columns[name].Len(); l > maxLen {
			maxLen = l
		}
	}
	return maxLen
}

// Width returns the number of columns.
func (df *DataFrame) Width() int {
	return len(df.columns)
}

// HasColumn checks if a column exists.
func (df *DataFrame) HasColumn(name string) bool {
	_, exists := df.columns[name]
	return exists
}

// Column returns the series stored under name.
func (df *DataFrame) Column(name string) (ISeries, error) {
	s, exists := df.columns[name]
	if !exists {
		return nil, errors.NewUnknownColumnError("Column", name)
	}
	return s, nil
}

// SetColumn inserts or replaces the series under name. Replacing keeps the
// column's original position; a new name is appended at the end. The key is
// the given name, which may differ from the series' own name (derived
// columns keep names like "a+b"). No length validation happens here; callers
// own row alignment and can check with Validate.
func (df *DataFrame) SetColumn(name string, s ISeries) {
	if _, exists := df.columns[name]; !exists {
		df.order = append(df.order, name)
	}
	df.columns[name] = s
}

// Select returns a new DataFrame with only the specified columns, in the
// given order. The underlying series are shared with the receiver.
func (df *DataFrame) Select(names ...string) (*DataFrame, error) {
	newColumns := make(map[string]ISeries, len(names))
	newOrder := make([]string, 0, len(names))

	for _, name := range names {
		s, exists := df.columns[name]
		if !exists {
			return nil, errors.NewUnknownColumnError("Select", name)
		}
		if _, dup := newColumns[name]; dup {
			return nil, errors.NewDuplicateColumnError("Select", name)
		}
		newColumns[name] = s
		newOrder = append(newOrder, name)
	}

	return &DataFrame{columns: newColumns, order: newOrder}, nil
}

// Drop returns a new DataFrame without the specified columns. Names that do
// not exist are ignored.
func (df *DataFrame) Drop(names ...string) *DataFrame {
	dropSet := make(map[string]bool, len(names))
	for _, name := range names {
		dropSet[name] = true
	}

	newColumns := make(map[string]ISeries, len(df.order))
	newOrder := make([]string, 0, len(df.order))

	for _, name := range df.order {
		if !dropSet[name] {
			newColumns[name] = df.columns[name]
			newOrder = append(newOrder, name)
		}
	}

	return &DataFrame{columns: newColumns, order: newOrder}
}

// Validate checks that every column has the same length and reports the
// first diverging column otherwise.
func (df *DataFrame) Validate() error {
	if len(df.order) == 0 {
		return nil
	}

	want := df.columns[df.order[0]].Len()
	for _, name := range df.order[1:] {
		if got := df.columns[name].Len(); got != want {
			return &errors.FrameError{
				Op:      "Validate",
				Column:  name,
				Message: fmt.Sprintf("column length %d does not match %d", got, want),
				Kind:    errors.ErrLengthMismatch,
			}
		}
	}
	return nil
}

// String renders the frame as a header of column names followed by one line
// per row, fields joined by ", ". Cells beyond a column's length render as
// the configured null text. Output is stable for an unchanged frame.
func (df *DataFrame) String() string {
	cfg := config.GetGlobalConfig()

	var sb strings.Builder
	sb.WriteString(strings.Join(df.order, ", "))

	rows := df.Len()
	shown := rows
	if cfg.MaxDisplayRows > 0 && rows > cfg.MaxDisplayRows {
		shown = cfg.MaxDisplayRows
	}

	for i := 0; i < shown; i++ {
		sb.WriteString("\n")
		for j, name := range df.order {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(df.columns[name].GetAsString(i))
		}
	}

	if shown < rows {
		sb.WriteString(fmt.Sprintf("\n... (%d more rows)", rows-shown))
	}

	return sb.String()
}

// Record materializes the frame as an Arrow record batch. All columns must
// be aligned. The caller owns the returned record and must Release it.
func (df *DataFrame) Record(mem memory.Allocator) (arrow.Record, error) {
	if err := df.Validate(); err != nil {
		return nil, err
	}
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	fields := make([]arrow.Field, 0, len(df.order))
	arrays := make([]arrow.Array, 0, len(df.order))
	defer func() {
		for _, arr := range arrays {
			arr.Release()
		}
	}()

	for _, name := range df.order {
		s := df.columns[name]
		fields = append(fields, arrow.Field{Name: name, Type: s.DataType(), Nullable: true})
		arrays = append(arrays, s.Array(mem))
	}

	schema := arrow.NewSchema(fields, nil)
	return array.NewRecord(schema, arrays, int64(df.Len())), nil
}

// Fingerprint returns a 64-bit content hash combining the column order and
// each column's fingerprint.
func (df *DataFrame) Fingerprint() uint64 {
	digest := xxhash.New()
	for _, name := range df.order {
		_, _ = digest.WriteString(name)
		_, _ = digest.WriteString("|")
		var buf [8]byte
		fp := df.columns[name].Fingerprint()
		for i := 0; i < 8; i++ {
			buf[i] = byte(fp >> (8 * i))
		}
		_, _ = digest.Write(buf[:])
	}
	return digest.Sum64()
}

// Equal reports whether two frames have the same columns, order and
// contents.
func (df *DataFrame) Equal(other *DataFrame) bool {
	if other == nil || len(df.order) != len(other.order) {
		return false
	}
	if df.Fingerprint() != other.Fingerprint() {
		return false
	}

	for i, name := range df.order {
		if other.order[i] != name {
			return false
		}
		if !df.columns[name].Equal(other.columns[name]) {
			return false
		}
	}
	return true
}
