package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	d := NewDate(2025, time.October, 25)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-10-25"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(d.Time))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "plain date", input: `"2025-10-20"`, expected: "2025-10-20"},
		{name: "timestamp", input: `"2025-10-20T15:04:05Z"`, expected: "2025-10-20"},
		{name: "null", input: `null`, expected: ""},
		{name: "empty", input: `""`, expected: ""},
		{name: "garbage", input: `"20/10/2025"`, wantErr: true},
		{name: "number", input: `20251020`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.String())
		})
	}
}

func TestDate_ZeroMarshalsNull(t *testing.T) {
	data, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2025, 10, 21, 13, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-10-21", d.String())

	require.NoError(t, d.Scan("2025-10-22 00:00:00+00:00"))
	assert.Equal(t, "2025-10-22", d.String())

	require.NoError(t, d.Scan([]byte("2025-10-23")))
	assert.Equal(t, "2025-10-23", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	require.Error(t, d.Scan(42))
}

func TestDate_Value(t *testing.T) {
	v, err := Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = NewDate(2025, time.October, 24).Value()
	require.NoError(t, err)
	assert.IsType(t, time.Time{}, v)
}
