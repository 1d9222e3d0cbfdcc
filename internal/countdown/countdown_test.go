package countdown

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDecomposeBounds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	samples := []int64{1, 59, 60, 61, 3599, 3600, 86399, 86400, 86401, 172800 + 3661}
	for i := 0; i < 500; i++ {
		samples = append(samples, rng.Int63n(200*365*86400)+1)
	}

	for _, s := range samples {
		b := Decompose(s)
		require.Equal(t, s/86400, b.Days, "days for %d", s)
		require.Equal(t, (s%86400)/3600, b.Hours, "hours for %d", s)
		require.Equal(t, (s%3600)/60, b.Minutes, "minutes for %d", s)
		require.Equal(t, s%60, b.Seconds, "seconds for %d", s)

		require.GreaterOrEqual(t, b.Hours, int64(0))
		require.Less(t, b.Hours, int64(24))
		require.GreaterOrEqual(t, b.Minutes, int64(0))
		require.Less(t, b.Minutes, int64(60))
		require.GreaterOrEqual(t, b.Seconds, int64(0))
		require.Less(t, b.Seconds, int64(60))
	}
}

func TestDecomposeNegativeIsZero(t *testing.T) {
	t.Parallel()

	require.Equal(t, Breakdown{}, Decompose(-5))
}

func TestTenSecondsBeforeTarget(t *testing.T) {
	t.Parallel()

	target := time.Date(2031, time.March, 31, 0, 0, 0, 0, time.Local)
	now := time.Date(2031, time.March, 30, 23, 59, 50, 0, time.Local)

	remaining := Remaining(target, now)
	require.Equal(t, 10*time.Second, remaining)
	require.False(t, Reached(remaining))
	require.Equal(t, "0d Days 00:00:10", FromDuration(remaining).String())
}

func TestFromDurationFloorsFractions(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0d Days 00:00:00", FromDuration(900*time.Millisecond).String())
	require.Equal(t, "1d Days 01:01:01", FromDuration(90061*time.Second+999*time.Millisecond).String())
}

func TestReached(t *testing.T) {
	t.Parallel()

	require.True(t, Reached(0))
	require.True(t, Reached(-time.Nanosecond))
	require.False(t, Reached(time.Nanosecond))
}
