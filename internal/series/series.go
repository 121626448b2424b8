// Package series provides data structures for column operations
package series

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/colfram/colfram/internal/config"
	"github.com/colfram/colfram/internal/errors"
)

// ISeries provides a type-erased view of a Series of any element kind.
// Arithmetic methods are part of the contract so DataFrames can hand out
// columns without exposing the element type.
type ISeries interface {
	Name() string
	Len() int
	DataType() arrow.DataType
	IsNull(index int) bool
	String() string
	GetAsString(index int) string
	Array(mem memory.Allocator) arrow.Array
	Fingerprint() uint64
	Equal(other ISeries) bool
	Add(other ISeries) (ISeries, error)
	Subtract(other ISeries) (ISeries, error)
	Multiply(other ISeries) (ISeries, error)
	Divide(other ISeries) (ISeries, error)
}

// Series represents a named, typed data column. The backing slice is owned
// exclusively by the Series; valid is an Arrow-style validity mask where a
// nil mask means every slot holds a value.
type Series[T any] struct {
	name   string
	values []T
	valid  []bool
}

// New creates a new Series owning a copy of values under name.
// Supported element kinds: string, bool, int32, int64, float32, float64.
func New[T any](name string, values []T) *Series[T] {
	switch any(values).(type) {
	case []string, []bool, []int32, []int64, []float32, []float64:
	default:
		panic(fmt.Sprintf("series: unsupported element type %T", values))
	}

	vals := make([]T, len(values))
	copy(vals, values)

	return &Series[T]{name: name, values: vals}
}

// NewWithValidity creates a Series whose slots are present only where valid
// is true. A nil mask marks every slot present; otherwise the mask must
// match values in length.
func NewWithValidity[T any](name string, values []T, valid []bool) (*Series[T], error) {
	if valid != nil && len(valid) != len(values) {
		return nil, errors.NewLengthMismatchError("NewWithValidity", len(values), len(valid))
	}

	s := New(name, values)
	if valid != nil {
		mask := make([]bool, len(valid))
		copy(mask, valid)
		s.valid = mask
	}
	return s, nil
}

// Name returns the column name.
func (s *Series[T]) Name() string {
	return s.name
}

// Rename replaces the column name.
func (s *Series[T]) Rename(name string) {
	s.name = name
}

// Len returns the number of elements in the series.
func (s *Series[T]) Len() int {
	return len(s.values)
}

// Get returns the element at index.
func (s *Series[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(s.values) {
		var zero T
		return zero, errors.NewIndexOutOfRangeError("Get", index, len(s.values))
	}
	return s.values[index], nil
}

// Set replaces the element at index. Indices past the current length are an
// error; the series never grows implicitly, use Append instead.
func (s *Series[T]) Set(index int, value T) error {
	if index < 0 || index >= len(s.values) {
		return errors.NewIndexOutOfRangeError("Set", index, len(s.values))
	}
	s.values[index] = value
	if s.valid != nil {
		s.valid[index] = true
	}
	return nil
}

// Append adds one element at the end of the series.
func (s *Series[T]) Append(value T) {
	s.values = append(s.values, value)
	if s.valid != nil {
		s.valid = append(s.valid, true)
	}
}

// AppendNull adds one absent slot at the end of the series.
func (s *Series[T]) AppendNull() {
	var zero T
	if s.valid == nil {
		s.valid = make([]bool, len(s.values), len(s.values)+1)
		for i := range s.valid {
			s.valid[i] = true
		}
	}
	s.values = append(s.values, zero)
	s.valid = append(s.valid, false)
}

// Values returns the data as a Go slice. The result is a copy; mutating it
// does not affect the series. Absent slots hold the element zero value.
func (s *Series[T]) Values() []T {
	result := make([]T, len(s.values))
	copy(result, s.values)
	return result
}

// IsNull reports whether the slot at index is absent. Out-of-range indices
// report false.
func (s *Series[T]) IsNull(index int) bool {
	if index < 0 || index >= len(s.values) {
		return false
	}
	return s.valid != nil && !s.valid[index]
}

// All returns an iterator over index/value pairs in order. Absent slots
// yield the element zero value; check IsNull when that matters.
func (s *Series[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// DataType returns the Arrow data type of the element kind.
func (s *Series[T]) DataType() arrow.DataType {
	switch any(s.values).(type) {
	case []string:
		return arrow.BinaryTypes.String
	case []bool:
		return arrow.FixedWidthTypes.Boolean
	case []int32:
		return arrow.PrimitiveTypes.Int32
	case []int64:
		return arrow.PrimitiveTypes.Int64
	case []float32:
		return arrow.PrimitiveTypes.Float32
	case []float64:
		return arrow.PrimitiveTypes.Float64
	default:
		panic(fmt.Sprintf("series: unsupported element type %T", s.values))
	}
}

// GetAsString renders the element at index. Absent slots and out-of-range
// indices render as the configured null text.
func (s *Series[T]) GetAsString(index int) string {
	cfg := config.GetGlobalConfig()
	if index < 0 || index >= len(s.values) || s.IsNull(index) {
		return cfg.NullText
	}
	return formatValue(any(s.values[index]), cfg.FloatPrecision)
}

// String renders the series as "(name): v0, v1, ..., vn".
func (s *Series[T]) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(s.name)
	sb.WriteString("): ")
	for i := range s.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.GetAsString(i))
	}
	return sb.String()
}

// Array materializes the series as an Arrow array, honoring the validity
// mask. The caller owns the returned array and must Release it.
func (s *Series[T]) Array(mem memory.Allocator) arrow.Array {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	switch v := any(s.values).(type) {
	case []string:
		builder := array.NewStringBuilder(mem)
		defer builder.Release()
		appendAll(builder.Append, builder.AppendNull, v, s.valid)
		return builder.NewArray()
	case []bool:
		builder := array.NewBooleanBuilder(mem)
		defer builder.Release()
		appendAll(builder.Append, builder.AppendNull, v, s.valid)
		return builder.NewArray()
	case []int32:
		builder := array.NewInt32Builder(mem)
		defer builder.Release()
		appendAll(builder.Append, builder.AppendNull, v, s.valid)
		return builder.NewArray()
	case []int64:
		builder := array.NewInt64Builder(mem)
		defer builder.Release()
		appendAll(builder.Append, builder.AppendNull, v, s.valid)
		return builder.NewArray()
	case []float32:
		builder := array.NewFloat32Builder(mem)
		defer builder.Release()
		appendAll(builder.Append, builder.AppendNull, v, s.valid)
		return builder.NewArray()
	case []float64:
		builder := array.NewFloat64Builder(mem)
		defer builder.Release()
		appendAll(builder.Append, builder.AppendNull, v, s.valid)
		return builder.NewArray()
	default:
		panic(fmt.Sprintf("series: unsupported element type %T", s.values))
	}
}

func appendAll[T any](appendValue func(T), appendNull func(), values []T, valid []bool) {
	for i, v := range values {
		if valid != nil && !valid[i] {
			appendNull()
			continue
		}
		appendValue(v)
	}
}

// formatValue renders a single element. Floats use 'g' formatting so whole
// numbers print without a trailing fraction.
func formatValue(value any, floatPrecision int) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', floatPrecision, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', floatPrecision, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
