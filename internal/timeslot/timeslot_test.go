package timeslot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	loc, err := time.LoadLocation(DefaultTimezone)
	require.NoError(t, err)

	t.Run("afternoon slot", func(t *testing.T) {
		got, err := Combine("2026-06-01", "2:00 PM")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 6, 1, 14, 0, 0, 0, loc), got)
	})

	t.Run("12 PM is noon", func(t *testing.T) {
		got, err := Combine("2026-06-01", "12:00 PM")
		require.NoError(t, err)
		assert.Equal(t, 12, got.Hour())
	})

	t.Run("12 AM is midnight", func(t *testing.T) {
		got, err := Combine("2026-06-01", "12:00 AM")
		require.NoError(t, err)
		assert.Equal(t, 0, got.Hour())
	})

	t.Run("rejects malformed inputs", func(t *testing.T) {
		for _, in := range [][2]string{
			{"06/01/2026", "2:00 PM"},
			{"2026-06-01", "14:00"},
			{"2026-06-01", "2 PM"},
			{"2026-13-01", "2:00 PM"},
			{"", ""},
		} {
			_, err := Combine(in[0], in[1])
			assert.Error(t, err, "date=%q slot=%q", in[0], in[1])
		}
	})

	t.Run("later slot sorts later", func(t *testing.T) {
		morning, err := Combine("2026-06-01", "9:00 AM")
		require.NoError(t, err)
		evening, err := Combine("2026-06-01", "6:00 PM")
		require.NoError(t, err)
		assert.True(t, morning.Before(evening))
	})
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2026-02-28"))
	assert.False(t, ValidDate("2026-02-30"))
	assert.False(t, ValidDate("28-02-2026"))
	assert.False(t, ValidDate(""))
}

func TestDaySlots(t *testing.T) {
	slots := DaySlots()
	require.Len(t, slots, 10)
	assert.Equal(t, "9:00 AM", slots[0])
	assert.Equal(t, "6:00 PM", slots[len(slots)-1])

	// Every grid label has to round-trip through Combine.
	for _, s := range slots {
		_, err := Combine("2026-06-01", s)
		assert.NoError(t, err, s)
	}
}
