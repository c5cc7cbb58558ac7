package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("16:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 990, minutes)

	_, err = TimeString("24:00").Minutes()
	assert.Error(t, err)

	_, err = TimeString("garbage").Minutes()
	assert.Error(t, err)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(990)
	require.NoError(t, err)
	assert.Equal(t, "16:30", ts.String())

	ts, err = NewTimeStringFromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, "00:00", ts.String())

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.Error(t, err)

	_, err = NewTimeStringFromMinutes(-30)
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("16:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "17:30", ts.String())

	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err, "results past midnight are rejected")
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("20:00"))
	assert.True(t, TimeString("20:30").IsAfter("20:00"))
	assert.False(t, TimeString("16:00").IsBefore("16:00"))

	diff, err := TimeString("13:30").DiffMinutes("16:00")
	require.NoError(t, err)
	assert.Equal(t, 150, diff)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME columns come back with seconds
	require.NoError(t, ts.Scan("16:00:00"))
	assert.Equal(t, "16:00", ts.String())

	require.NoError(t, ts.Scan([]byte("09:30:00")))
	assert.Equal(t, "09:30", ts.String())
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 12, 19, 16, 0, 0, 0, time.UTC))
	assert.Equal(t, "16:00", ts.String())
}
