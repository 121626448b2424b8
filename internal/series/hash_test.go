package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesFingerprint(t *testing.T) {
	a := New("vals", []float64{1, 2, 3})
	b := New("vals", []float64{1, 2, 3})

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	require.NoError(t, b.Set(2, 4))
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestSeriesFingerprintSensitivity(t *testing.T) {
	base := New("vals", []int64{1, 2})

	t.Run("name changes the fingerprint", func(t *testing.T) {
		renamed := New("other", []int64{1, 2})
		assert.NotEqual(t, base.Fingerprint(), renamed.Fingerprint())
	})

	t.Run("element kind changes the fingerprint", func(t *testing.T) {
		asFloat := New("vals", []float64{1, 2})
		assert.NotEqual(t, base.Fingerprint(), asFloat.Fingerprint())
	})

	t.Run("null slot changes the fingerprint", func(t *testing.T) {
		withNull, err := NewWithValidity("vals", []int64{1, 2}, []bool{true, false})
		require.NoError(t, err)
		assert.NotEqual(t, base.Fingerprint(), withNull.Fingerprint())
	})
}

func TestSeriesEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     ISeries
		expected bool
	}{
		{
			name:     "identical series",
			a:        New("v", []float64{1.5, 2.5}),
			b:        New("v", []float64{1.5, 2.5}),
			expected: true,
		},
		{
			name:     "different values",
			a:        New("v", []float64{1.5, 2.5}),
			b:        New("v", []float64{1.5, 3.5}),
			expected: false,
		},
		{
			name:     "different names",
			a:        New("v", []float64{1.5}),
			b:        New("w", []float64{1.5}),
			expected: false,
		},
		{
			name:     "different lengths",
			a:        New("v", []float64{1.5}),
			b:        New("v", []float64{1.5, 2.5}),
			expected: false,
		},
		{
			name:     "different element kinds",
			a:        New("v", []int64{1}),
			b:        New("v", []float64{1}),
			expected: false,
		},
		{
			name:     "string series equal",
			a:        New("s", []string{"x", "y"}),
			b:        New("s", []string{"x", "y"}),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
		})
	}
}

func TestSeriesEqualValidity(t *testing.T) {
	a, err := NewWithValidity("v", []float64{1, 0}, []bool{true, false})
	require.NoError(t, err)
	b, err := NewWithValidity("v", []float64{1, 0}, []bool{true, false})
	require.NoError(t, err)
	c := New("v", []float64{1, 0})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
