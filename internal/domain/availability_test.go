package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayName(t *testing.T) {
	expected := map[int32]string{
		1: "Monday",
		2: "Tuesday",
		3: "Wednesday",
		4: "Thursday",
		5: "Friday",
		6: "Saturday",
		7: "Sunday",
	}

	for day, want := range expected {
		name, ok := WeekdayName(day)
		require.True(t, ok)
		assert.Equal(t, want, name)
	}

	for _, day := range []int32{0, 8, -1, 100} {
		_, ok := WeekdayName(day)
		assert.False(t, ok, "day %d should not map to a weekday", day)
	}
}

func TestIsWeekdayName(t *testing.T) {
	assert.True(t, IsWeekdayName("Monday"))
	assert.True(t, IsWeekdayName("Sunday"))
	assert.False(t, IsWeekdayName("monday"))
	assert.False(t, IsWeekdayName("Funday"))
	assert.False(t, IsWeekdayName(""))
}
