package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDateTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"space separator", "2025-01-01 09:00:00", "2025-01-01T09:00:00Z"},
		{"t separator no zone", "2025-01-01T09:00:00", "2025-01-01T09:00:00Z"},
		{"already utc", "2025-01-01T09:00:00Z", "2025-01-01T09:00:00Z"},
		{"positive offset kept", "2025-01-01T09:00:00+01:00", "2025-01-01T09:00:00+01:00"},
		{"negative offset kept", "2025-01-01T09:00:00-05:00", "2025-01-01T09:00:00-05:00"},
		{"minute precision", "2025-06-15 14:30", "2025-06-15T14:30Z"},
		{"date only passes through", "2025-06-15", "2025-06-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDateTime(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDateTime_Idempotent(t *testing.T) {
	inputs := []string{
		"2025-01-01 09:00:00",
		"2025-01-01T09:00:00+01:00",
		"2025-06-15",
	}

	for _, input := range inputs {
		once, err := NormalizeDateTime(input)
		require.NoError(t, err)

		twice, err := NormalizeDateTime(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "second pass changed %q", input)
	}
}

func TestNormalizeDateTime_Invalid(t *testing.T) {
	inputs := []string{
		"not-a-date",
		"",
		"2025-13-40T09:00:00",
		"09:00:00",
	}

	for _, input := range inputs {
		got, err := NormalizeDateTime(input)
		assert.Empty(t, got)

		var formatErr *InvalidFormatError
		require.ErrorAs(t, err, &formatErr, "input %q", input)
		assert.Equal(t, input, formatErr.Value)
		assert.Contains(t, formatErr.Error(), "invalid datetime format")
	}
}
