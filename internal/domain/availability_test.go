package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResourceOccupancy_Rate(t *testing.T) {
	assert.Equal(t, 87.5, NewResourceOccupancy(7, 8).Rate)
	assert.Equal(t, 75.0, NewResourceOccupancy(6, 8).Rate)
	assert.Equal(t, 33.3, NewResourceOccupancy(1, 3).Rate, "rate rounds to one decimal")
	assert.Equal(t, 0.0, NewResourceOccupancy(0, 8).Rate)
	assert.Equal(t, 0.0, NewResourceOccupancy(3, 0).Rate, "zero capacity never divides")
}

func TestClassifyOccupancy(t *testing.T) {
	low := NewResourceOccupancy(1, 8)

	// Thresholds are strict: exactly 75% is still moderate
	assert.Equal(t, OccupancyBusy, ClassifyOccupancy(NewResourceOccupancy(7, 8), low))
	assert.Equal(t, OccupancyModerate, ClassifyOccupancy(NewResourceOccupancy(6, 8), low))
	assert.Equal(t, OccupancyModerate, ClassifyOccupancy(low, NewResourceOccupancy(3, 4)))
	assert.Equal(t, OccupancyAvailable, ClassifyOccupancy(low, NewResourceOccupancy(2, 4)))

	// Either axis alone is enough to raise the status
	assert.Equal(t, OccupancyBusy, ClassifyOccupancy(low, NewResourceOccupancy(4, 4)))
}
