package timeenc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDisplayBoundaries(t *testing.T) {
	assert.Equal(t, Display{Hour12: 12, Minute: 0, Period: AM}, ToDisplay("00:00"))
	assert.Equal(t, Display{Hour12: 12, Minute: 30, Period: PM}, ToDisplay("12:30"))
	assert.Equal(t, Display{Hour12: 11, Minute: 59, Period: PM}, ToDisplay("23:59"))
	assert.Equal(t, Display{Hour12: 1, Minute: 0, Period: PM}, ToDisplay("13:00"))
	assert.Equal(t, Display{Hour12: 9, Minute: 15, Period: AM}, ToDisplay("09:15"))
}

func TestToDisplayMalformedFallsBackToNoon(t *testing.T) {
	for _, in := range []string{"", "12", "ab:cd", "24:00", "10:60", "-1:30"} {
		assert.Equal(t, Noon, ToDisplay(in), "input %q", in)
	}
}

func TestToStorageBoundaries(t *testing.T) {
	got, err := ToStorage(12, 0, AM)
	require.NoError(t, err)
	assert.Equal(t, "00:00", got)

	got, err = ToStorage(12, 0, PM)
	require.NoError(t, err)
	assert.Equal(t, "12:00", got)

	got, err = ToStorage(1, 5, PM)
	require.NoError(t, err)
	assert.Equal(t, "13:05", got)

	got, err = ToStorage(11, 59, PM)
	require.NoError(t, err)
	assert.Equal(t, "23:59", got)
}

func TestToStorageRejectsBadParts(t *testing.T) {
	_, err := ToStorage(0, 0, AM)
	assert.Error(t, err)

	_, err = ToStorage(13, 0, PM)
	assert.Error(t, err)

	_, err = ToStorage(10, 60, PM)
	assert.Error(t, err)

	_, err = ToStorage(10, 0, "pm")
	assert.Error(t, err)
}

func TestRoundTripAllClockValues(t *testing.T) {
	for _, period := range []string{AM, PM} {
		for hour := 1; hour <= 12; hour++ {
			for minute := 0; minute < 60; minute++ {
				stored, err := ToStorage(hour, minute, period)
				require.NoError(t, err)

				d := ToDisplay(stored)
				label := fmt.Sprintf("%d:%02d %s", hour, minute, period)
				assert.Equal(t, hour, d.Hour12, label)
				assert.Equal(t, minute, d.Minute, label)
				assert.Equal(t, period, d.Period, label)
			}
		}
	}
}
