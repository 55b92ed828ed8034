package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "calendar date", in: "2024-01-15", want: "2024-01-15"},
		{name: "surrounding spaces", in: " 2024-01-15 ", want: "2024-01-15"},
		{name: "rfc3339", in: "2024-01-15T23:10:00Z", want: "2024-01-15"},
		{name: "invalid month", in: "2024-13-01", wantErr: true},
		{name: "garbage", in: "yesterday", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "year one", in: "0001-01-01", wantErr: true},
		{name: "year one timestamp", in: "0001-01-01T00:00:00Z", wantErr: true},
		{name: "day after year one", in: "0001-01-02", want: "0001-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
			assert.Equal(t, time.UTC, d.Location())
		})
	}
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		D Date  `json:"d"`
		P *Date `json:"p"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"d":"2024-02-29","p":null}`), &payload))
	assert.Equal(t, NewDate(2024, time.February, 29), payload.D)
	assert.Nil(t, payload.P)

	out, err := json.Marshal(payload.D)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-29"`, string(out))

	out, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"d":20240229}`), &payload))
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-05", d.String())

	require.NoError(t, d.Scan("2024-03-06 00:00:00+00:00"))
	assert.Equal(t, "2024-03-06", d.String())

	require.NoError(t, d.Scan([]byte("2024-03-07")))
	assert.Equal(t, "2024-03-07", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDate_Value(t *testing.T) {
	v, err := NewDate(2024, 1, 15).Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
