package poller_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"boothdesk/shared/poller"
)

func TestPoller_RunsImmediatelyAndOnInterval(t *testing.T) {
	var runs atomic.Int32

	p := poller.New(20*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
	})

	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool {
		return runs.Load() >= 3
	}, time.Second, 5*time.Millisecond, "expected immediate run plus interval ticks")
}

func TestPoller_StopCancelsTicks(t *testing.T) {
	var runs atomic.Int32

	p := poller.New(10*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
	})

	p.Start(context.Background())

	assert.Eventually(t, func() bool {
		return runs.Load() >= 1
	}, time.Second, time.Millisecond)

	p.Stop()

	settled := runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, runs.Load(), settled+1, "no new runs after Stop beyond one already scheduled")

	// Stop twice is fine.
	p.Stop()
}

func TestPoller_OverlappingRuns(t *testing.T) {
	var mu sync.Mutex
	inFlight := 0
	maxInFlight := 0

	p := poller.New(10*time.Millisecond, func(ctx context.Context) {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()

		time.Sleep(60 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
	})

	p.Start(context.Background())
	defer p.Stop()

	// A run outlives several ticks, so runs must overlap rather than queue.
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return maxInFlight >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestPoller_StartTwiceIsNoop(t *testing.T) {
	var runs atomic.Int32

	p := poller.New(time.Hour, func(ctx context.Context) {
		runs.Add(1)
	})

	p.Start(context.Background())
	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool {
		return runs.Load() == 1
	}, time.Second, time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}
