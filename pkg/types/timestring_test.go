package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "morning", input: "09:00", want: "09:00"},
		{name: "evening", input: "21:30", want: "21:30"},
		{name: "end of day", input: "24:00", want: "24:00"},
		{name: "garbage", input: "nine", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.NoError(t, got.Validate())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	start := MustTimeString("20:30")

	got, err := start.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "21:00", got.String())

	_, err = start.AddMinutes(5 * 60)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	a := MustTimeString("09:00")
	b := MustTimeString("10:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeString_OnDate(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)

	date := time.Date(2025, 10, 15, 23, 30, 0, 0, time.UTC) // 02:30 16 октября по Москве

	got := MustTimeString("09:00").OnDate(date, loc)
	assert.Equal(t, time.Date(2025, 10, 16, 6, 0, 0, 0, time.UTC), got.UTC())

	endOfDay := MustTimeString("24:00").OnDate(date, loc)
	assert.Equal(t, time.Date(2025, 10, 16, 21, 0, 0, 0, time.UTC), endOfDay.UTC())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:15:00"))
	assert.Equal(t, "10:15", ts.String())

	require.NoError(t, ts.Scan([]byte("08:05")))
	assert.Equal(t, "08:05", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_UnmarshalText(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.UnmarshalText([]byte("18:45")))
	assert.Equal(t, 18*60+45, ts.Minutes())

	assert.Error(t, ts.UnmarshalText([]byte("18-45")))
}
