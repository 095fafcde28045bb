package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) Sweep(ctx context.Context) error {
	s.calls.Add(1)
	return nil
}

func TestScheduler_UntilNextRun(t *testing.T) {
	s := New(&countingSweeper{}, 6, 0)

	t.Run("before the firing time, same day", func(t *testing.T) {
		s.now = func() time.Time {
			return time.Date(2024, 5, 2, 4, 30, 0, 0, time.UTC)
		}
		assert.Equal(t, 90*time.Minute, s.untilNextRun())
	})

	t.Run("after the firing time, next day", func(t *testing.T) {
		s.now = func() time.Time {
			return time.Date(2024, 5, 2, 7, 0, 0, 0, time.UTC)
		}
		assert.Equal(t, 23*time.Hour, s.untilNextRun())
	})

	t.Run("exactly at the firing time, next day", func(t *testing.T) {
		s.now = func() time.Time {
			return time.Date(2024, 5, 2, 6, 0, 0, 0, time.UTC)
		}
		assert.Equal(t, 24*time.Hour, s.untilNextRun())
	})
}

func TestScheduler_FiresAndStops(t *testing.T) {
	sweeper := &countingSweeper{}
	s := New(sweeper, 0, 0)
	// make the next firing land a few milliseconds out
	s.now = func() time.Time {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return next.Add(24*time.Hour - 20*time.Millisecond)
	}

	s.Start()
	require.Eventually(t, func() bool {
		return sweeper.calls.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	s.Stop()
}

func TestScheduler_StopBeforeFiring(t *testing.T) {
	sweeper := &countingSweeper{}
	s := New(sweeper, 6, 0)

	s.Start()
	s.Stop()
	assert.Equal(t, int32(0), sweeper.calls.Load())
}
