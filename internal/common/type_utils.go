// Package common holds shared type coercion utilities used when pivoting
// row-records into typed columns.
package common

import (
	"fmt"
	"math"
)

// ValueKind classifies a record value for column type inference.
type ValueKind int

const (
	KindUnknown ValueKind = iota
	KindString
	KindBool
	KindNumeric
)

// TypeConverter provides common type conversion utilities.
type TypeConverter struct{}

// NewTypeConverter creates a new TypeConverter instance.
func NewTypeConverter() *TypeConverter {
	return &TypeConverter{}
}

// KindOf classifies a record value. All numeric Go kinds collapse into
// KindNumeric so mixed int/float input lands in one float64 column.
func (tc *TypeConverter) KindOf(value any) ValueKind {
	switch value.(type) {
	case string:
		return KindString
	case bool:
		return KindBool
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return KindNumeric
	default:
		return KindUnknown
	}
}

// ToFloat64 converts any numeric value to float64.
func (tc *TypeConverter) ToFloat64(value any) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, fmt.Errorf("uint value %d overflows float64 conversion range", v)
		}
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("uint64 value %d overflows float64 conversion range", v)
		}
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", value)
	}
}

// ToString converts a value to its string form for string columns.
func (tc *TypeConverter) ToString(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("cannot convert %T to string", value)
}

// ToBool converts a value to bool for boolean columns.
func (tc *TypeConverter) ToBool(value any) (bool, error) {
	if b, ok := value.(bool); ok {
		return b, nil
	}
	return false, fmt.Errorf("cannot convert %T to bool", value)
}
