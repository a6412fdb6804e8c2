package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/domain"
)

func TestValidateAvailabilityWindow(t *testing.T) {
	tests := []struct {
		name    string
		start   float64
		end     float64
		wantErr bool
	}{
		{name: "regular working day", start: 9.0, end: 17.0, wantErr: false},
		{name: "half hour granularity", start: 9.5, end: 13.5, wantErr: false},
		{name: "start equals end", start: 9.0, end: 9.0, wantErr: true},
		{name: "start after end", start: 17.0, end: 9.0, wantErr: true},
		{name: "negative start", start: -1.0, end: 9.0, wantErr: true},
		{name: "end past midnight", start: 20.0, end: 25.0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAvailabilityWindow(tt.start, tt.end)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFitsAvailability(t *testing.T) {
	window := &domain.Availability{
		EmployeeSIN: "zhangwei42",
		Weekday:     "Monday",
		Start:       9.0,
		End:         17.0,
	}

	// 9 + 8 = 17，恰好贴住窗口终点，允许
	assert.True(t, FitsAvailability(window, 8))
	// 9 + 10 = 19 > 17，超出
	assert.False(t, FitsAvailability(window, 10))
	assert.True(t, FitsAvailability(window, 0.5))
}

func TestFitsAvailabilityFractionalWindow(t *testing.T) {
	window := &domain.Availability{Start: 8.5, End: 12.25}

	require.True(t, FitsAvailability(window, 3.75))
	require.False(t, FitsAvailability(window, 4))
}
