package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Numeric
	}{
		{name: "integer", input: `7`, want: 7},
		{name: "zero", input: `0`, want: 0},
		{name: "negative", input: `-3`, want: -3},
		{name: "float truncated", input: `4.9`, want: 4},
		{name: "numeric string", input: `"12"`, want: 12},
		{name: "float string", input: `"2.5"`, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Numeric
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestNumericUnmarshalNullKeepsValue(t *testing.T) {
	n := Numeric(5)
	require.NoError(t, json.Unmarshal([]byte(`null`), &n))
	assert.Equal(t, Numeric(5), n)
}

func TestNumericUnmarshalRejectsNonNumeric(t *testing.T) {
	var n Numeric
	assert.Error(t, json.Unmarshal([]byte(`"five"`), &n))
	assert.Error(t, json.Unmarshal([]byte(`true`), &n))
}
