package dataframe

import (
	"fmt"
	"slices"

	"github.com/colfram/colfram/internal/common"
	"github.com/colfram/colfram/internal/errors"
	"github.com/colfram/colfram/internal/series"
)

// Record is one row of input during FromRecords construction: a mapping
// from column name to value.
type Record = map[string]any

// FromRecords pivots an ordered sequence of row-records into a column-
// oriented DataFrame. The column set is the union of keys across all
// records, discovered record by record (keys within one record sort
// lexically, since Go maps carry no insertion order). Every column has
// exactly one slot per record; records lacking a column, or carrying a nil
// value, produce null slots. A column's element kind is inferred from its
// first present value: strings stay strings, bools stay bools, and every
// numeric input lands in a float64 column so cross-column arithmetic is
// well defined.
func FromRecords(records []Record) (*DataFrame, error) {
	names := discoverColumns(records)

	cols := make([]ISeries, 0, len(names))
	for _, name := range names {
		col, err := buildColumn(name, records)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}

	return New(cols...)
}

// discoverColumns returns the union of record keys in first-seen order.
func discoverColumns(records []Record) []string {
	var names []string
	seen := make(map[string]bool)

	for _, rec := range records {
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}
	return names
}

// buildColumn assembles one fully populated column of length len(records).
func buildColumn(name string, records []Record) (ISeries, error) {
	converter := common.NewTypeConverter()

	kind := common.KindUnknown
	for _, rec := range records {
		value, present := rec[name]
		if !present || value == nil {
			continue
		}
		kind = converter.KindOf(value)
		break
	}

	switch kind {
	case common.KindString:
		return buildTypedColumn(name, records, converter.ToString)
	case common.KindBool:
		return buildTypedColumn(name, records, converter.ToBool)
	case common.KindNumeric:
		return buildTypedColumn(name, records, converter.ToFloat64)
	default:
		for _, rec := range records {
			if value, present := rec[name]; present && value != nil {
				return nil, errors.NewUnsupportedOperationError("FromRecords",
					fmt.Sprintf("column %q holds unsupported value type %T", name, value))
			}
		}
		// Only nil or absent values were seen; keep the column as all-null
		// strings so it still renders.
		return buildTypedColumn(name, records, converter.ToString)
	}
}

func buildTypedColumn[T any](
	name string, records []Record, convert func(any) (T, error),
) (ISeries, error) {
	values := make([]T, len(records))
	valid := make([]bool, len(records))
	allValid := true

	for i, rec := range records {
		value, present := rec[name]
		if !present || value == nil {
			allValid = false
			continue
		}

		converted, err := convert(value)
		if err != nil {
			return nil, errors.NewUnsupportedOperationError("FromRecords",
				fmt.Sprintf("column %q: %v", name, err))
		}
		values[i] = converted
		valid[i] = true
	}

	if allValid {
		valid = nil
	}
	s, err := series.NewWithValidity(name, values, valid)
	if err != nil {
		return nil, err
	}
	return s, nil
}
