package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, s := range []string{"", "9:30 AM", "25:00", "09:61", "noon"} {
		_, err := NewTimeStringFromString(s)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "value=%q", s)
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 11, 3, 14, 5, 0, 0, time.UTC))
	assert.Equal(t, "14:05", ts.String())
}

func TestMinutes(t *testing.T) {
	minutes, err := TimeString("01:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 90, minutes)

	minutes, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Zero(t, minutes)
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "10:15", ts.String())

	// Переход через полночь
	ts, err = TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "00:30", ts.String())
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.False(t, TimeString("17:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))

	// Некорректные значения не считаются ни раньше, ни позже
	assert.False(t, TimeString("bogus").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("bogus"))
}

func TestFormat12Hour(t *testing.T) {
	assert.Equal(t, "9:30 AM", TimeString("09:30").Format12Hour())
	assert.Equal(t, "5:00 PM", TimeString("17:00").Format12Hour())
	assert.Equal(t, "12:00 PM", TimeString("12:00").Format12Hour())
	assert.Equal(t, "12:15 AM", TimeString("00:15").Format12Hour())

	// Некорректное значение возвращается как есть
	assert.Equal(t, "bogus", TimeString("bogus").Format12Hour())
}

func TestIsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}
