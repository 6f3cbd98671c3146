package data

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(1949, time.June, 22)

	js, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1949-06-22"`, string(js))

	var got Date
	require.NoError(t, json.Unmarshal([]byte(`"2008-12-12"`), &got))
	assert.Equal(t, NewDate(2008, time.December, 12), got)
}

func TestDateUnmarshalRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"number", `19490622`},
		{"timestamp", `"1949-06-22T10:00:00Z"`},
		{"day first", `"22-06-1949"`},
		{"out of range", `"1949-13-40"`},
		{"empty", `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.UnmarshalJSON([]byte(tt.input))
			assert.ErrorIs(t, err, ErrInvalidDateFormat)
		})
	}
}

func TestDateUnmarshalNullKeepsZero(t *testing.T) {
	var input struct {
		DateOfBirth Date `json:"dateOfBirth"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"dateOfBirth": null}`), &input))
	assert.True(t, input.DateOfBirth.IsZero())
}

func TestDateScan(t *testing.T) {
	want := NewDate(1949, time.June, 22)

	var fromTime Date
	require.NoError(t, fromTime.Scan(time.Date(1949, time.June, 22, 0, 0, 0, 0, time.FixedZone("", 3600))))
	assert.Equal(t, want, fromTime)

	var fromString Date
	require.NoError(t, fromString.Scan("1949-06-22"))
	assert.Equal(t, want, fromString)

	var fromBytes Date
	require.NoError(t, fromBytes.Scan([]byte("1949-06-22T00:00:00Z")))
	assert.Equal(t, want, fromBytes)

	var bad Date
	assert.Error(t, bad.Scan(int64(42)))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2008, time.December, 12).Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2008, time.December, 12, 0, 0, 0, 0, time.UTC), v)
}
