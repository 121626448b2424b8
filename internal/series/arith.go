package series

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/colfram/colfram/internal/errors"
)

// Operator symbols used to derive result names, e.g. "a" + "b" -> "a+b".
const (
	symAdd      = "+"
	symSubtract = "-"
	symMultiply = "*"
	symDivide   = "/"
)

// Add returns a new series with elementwise sums. Neither operand is
// mutated.
func (s *Series[T]) Add(other ISeries) (ISeries, error) {
	return s.elementwise("Add", symAdd, other)
}

// Subtract returns a new series with elementwise differences.
func (s *Series[T]) Subtract(other ISeries) (ISeries, error) {
	return s.elementwise("Subtract", symSubtract, other)
}

// Multiply returns a new series with elementwise products.
func (s *Series[T]) Multiply(other ISeries) (ISeries, error) {
	return s.elementwise("Multiply", symMultiply, other)
}

// Divide returns a new series with elementwise quotients. Integer division
// by zero fails without producing a partial result; float division follows
// IEEE-754 and may yield infinities or NaN.
func (s *Series[T]) Divide(other ISeries) (ISeries, error) {
	return s.elementwise("Divide", symDivide, other)
}

// elementwise dispatches a binary operation over the concrete element kind.
// Both operands must share the kind and length; slots where either operand
// is null come out null.
func (s *Series[T]) elementwise(op, sym string, other ISeries) (ISeries, error) {
	rhs, ok := other.(*Series[T])
	if !ok {
		return nil, errors.NewUnsupportedOperationError(op,
			fmt.Sprintf("operand element kinds differ: %s vs %s", s.DataType(), other.DataType()))
	}
	if len(s.values) != len(rhs.values) {
		return nil, errors.NewLengthMismatchError(op, len(s.values), len(rhs.values))
	}

	omit := unionNulls(s, rhs)
	name := s.name + sym + rhs.name

	var out []T
	switch a := any(s.values).(type) {
	case []int32:
		b := any(rhs.values).([]int32)
		result, err := integerKernel(op, sym, a, b, omit)
		if err != nil {
			return nil, err
		}
		out = any(result).([]T)
	case []int64:
		b := any(rhs.values).([]int64)
		result, err := integerKernel(op, sym, a, b, omit)
		if err != nil {
			return nil, err
		}
		out = any(result).([]T)
	case []float32:
		b := any(rhs.values).([]float32)
		out = any(floatKernel(sym, a, b, omit)).([]T)
	case []float64:
		b := any(rhs.values).([]float64)
		out = any(floatKernel(sym, a, b, omit)).([]T)
	default:
		return nil, errors.NewUnsupportedOperationError(op,
			fmt.Sprintf("arithmetic is not defined for %s series", s.DataType()))
	}

	result := &Series[T]{name: name, values: out}
	if omit != nil {
		valid := make([]bool, len(omit))
		for i, skip := range omit {
			valid[i] = !skip
		}
		result.valid = valid
	}
	return result, nil
}

// unionNulls returns a mask of slots that are null in either operand, or nil
// when both operands are fully populated.
func unionNulls[T any](a, b *Series[T]) []bool {
	if a.valid == nil && b.valid == nil {
		return nil
	}

	omit := make([]bool, len(a.values))
	for i := range omit {
		omit[i] = a.IsNull(i) || b.IsNull(i)
	}
	return omit
}

// integerKernel applies sym elementwise with checked division. Null slots
// are skipped, so a zero divisor under a null slot is not an error.
func integerKernel[T constraints.Integer](op, sym string, a, b []T, omit []bool) ([]T, error) {
	out := make([]T, len(a))
	for i := range a {
		if omit != nil && omit[i] {
			continue
		}
		switch sym {
		case symAdd:
			out[i] = a[i] + b[i]
		case symSubtract:
			out[i] = a[i] - b[i]
		case symMultiply:
			out[i] = a[i] * b[i]
		case symDivide:
			if b[i] == 0 {
				return nil, errors.NewDivisionByZeroError(op, i)
			}
			out[i] = a[i] / b[i]
		}
	}
	return out, nil
}

// floatKernel applies sym elementwise. Division by zero follows IEEE-754.
func floatKernel[T constraints.Float](sym string, a, b []T, omit []bool) []T {
	out := make([]T, len(a))
	for i := range a {
		if omit != nil && omit[i] {
			continue
		}
		switch sym {
		case symAdd:
			out[i] = a[i] + b[i]
		case symSubtract:
			out[i] = a[i] - b[i]
		case symMultiply:
			out[i] = a[i] * b[i]
		case symDivide:
			out[i] = a[i] / b[i]
		}
	}
	return out
}
