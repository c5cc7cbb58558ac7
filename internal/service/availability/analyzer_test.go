package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
)

type fakeBookingRepo struct {
	locationCount  int
	celebrantCount int
}

func (f *fakeBookingRepo) CountActive(_ context.Context, _ time.Time, locationID, celebrantID *int64) (int, error) {
	if locationID != nil {
		return f.locationCount, nil
	}
	if celebrantID != nil {
		return f.celebrantCount, nil
	}
	return 0, nil
}

func TestAnalyze_BusyDay(t *testing.T) {
	// 7 of 8 location slots used is 87.5%, above the busy threshold
	repo := &fakeBookingRepo{locationCount: 7, celebrantCount: 1}
	analyzer := NewAnalyzer(repo)

	result, err := analyzer.Analyze(context.Background(), time.Now(), 10, 20, domain.DefaultEngineConfig())
	require.NoError(t, err)

	assert.Equal(t, 7, result.Location.Bookings)
	assert.Equal(t, 8, result.Location.Capacity)
	assert.Equal(t, 87.5, result.Location.Rate)
	assert.Equal(t, domain.OccupancyBusy, result.Status)
	assert.Equal(t, "Alta demanda - considere datas alternativas", result.Recommendation)
}

func TestAnalyze_ModerateByCelebrantAxis(t *testing.T) {
	// The location is quiet but 3 of 4 celebrant slots cross the
	// moderate threshold; either axis is enough.
	repo := &fakeBookingRepo{locationCount: 1, celebrantCount: 3}
	analyzer := NewAnalyzer(repo)

	result, err := analyzer.Analyze(context.Background(), time.Now(), 10, 20, domain.DefaultEngineConfig())
	require.NoError(t, err)

	assert.Equal(t, 12.5, result.Location.Rate)
	assert.Equal(t, 75.0, result.Celebrant.Rate)
	assert.Equal(t, domain.OccupancyModerate, result.Status)
	assert.Equal(t, "Demanda moderada - reserve com antecedência", result.Recommendation)
}

func TestAnalyze_ThresholdsAreStrict(t *testing.T) {
	// Exactly 75% is still moderate, exactly 50% is still available
	t.Run("exactly busy threshold", func(t *testing.T) {
		repo := &fakeBookingRepo{locationCount: 6, celebrantCount: 0}
		analyzer := NewAnalyzer(repo)

		result, err := analyzer.Analyze(context.Background(), time.Now(), 10, 20, domain.DefaultEngineConfig())
		require.NoError(t, err)

		assert.Equal(t, 75.0, result.Location.Rate)
		assert.Equal(t, domain.OccupancyModerate, result.Status)
	})

	t.Run("exactly moderate threshold", func(t *testing.T) {
		repo := &fakeBookingRepo{locationCount: 4, celebrantCount: 2}
		analyzer := NewAnalyzer(repo)

		result, err := analyzer.Analyze(context.Background(), time.Now(), 10, 20, domain.DefaultEngineConfig())
		require.NoError(t, err)

		assert.Equal(t, 50.0, result.Location.Rate)
		assert.Equal(t, 50.0, result.Celebrant.Rate)
		assert.Equal(t, domain.OccupancyAvailable, result.Status)
	})
}

func TestAnalyze_EmptyDay(t *testing.T) {
	repo := &fakeBookingRepo{}
	analyzer := NewAnalyzer(repo)

	result, err := analyzer.Analyze(context.Background(), time.Now(), 10, 20, domain.DefaultEngineConfig())
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Location.Rate)
	assert.Equal(t, domain.OccupancyAvailable, result.Status)
	assert.Equal(t, "Boa disponibilidade", result.Recommendation)
}
