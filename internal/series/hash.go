package series

import (
	"strconv"

	xxhash "github.com/cespare/xxhash/v2"
)

// Fingerprint returns a 64-bit content hash covering name, element kind,
// values and validity. Two series with equal fingerprints are equal with
// overwhelming probability; Equal confirms elementwise.
func (s *Series[T]) Fingerprint() uint64 {
	digest := xxhash.New()
	_, _ = digest.WriteString(s.name)
	_, _ = digest.WriteString("|")
	_, _ = digest.WriteString(s.DataType().String())

	for i := range s.values {
		if s.IsNull(i) {
			_, _ = digest.WriteString("|?")
			continue
		}
		_, _ = digest.WriteString("|")
		_, _ = digest.WriteString(encodeValue(any(s.values[i])))
	}
	return digest.Sum64()
}

// Equal reports whether two series have the same name, element kind, length,
// values and validity.
func (s *Series[T]) Equal(other ISeries) bool {
	rhs, ok := other.(*Series[T])
	if !ok {
		return false
	}
	if len(s.values) != len(rhs.values) || s.name != rhs.name {
		return false
	}
	if s.Fingerprint() != rhs.Fingerprint() {
		return false
	}

	for i := range s.values {
		if s.IsNull(i) != rhs.IsNull(i) {
			return false
		}
		if !s.IsNull(i) && encodeValue(any(s.values[i])) != encodeValue(any(rhs.values[i])) {
			return false
		}
	}
	return true
}

// encodeValue is the canonical per-element encoding used for hashing and
// equality. Unlike GetAsString it ignores display configuration.
func encodeValue(value any) string {
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
		return strconv.FormatFloat(float64(v), 'b', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'b', -1, 64)
	default:
		return ""
	}
}
