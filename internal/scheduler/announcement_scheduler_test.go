package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"fgblog/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type countingWarmer struct {
	calls atomic.Int32
	err   error
}

func (w *countingWarmer) Warm(context.Context) (int, error) {
	w.calls.Add(1)
	return 3, w.err
}

func TestSchedulerWarmsOnStart(t *testing.T) {
	warmer := &countingWarmer{}
	s, err := NewAnnouncementScheduler(warmer, "@every 1h", logger.NewNop())
	require.NoError(t, err)

	s.Start()
	assert.Eventually(t, func() bool { return warmer.calls.Load() >= 1 }, time.Second, 10*time.Millisecond)
	s.Stop()
}

func TestSchedulerSurvivesWarmError(t *testing.T) {
	warmer := &countingWarmer{err: errors.New("db down")}
	s, err := NewAnnouncementScheduler(warmer, "@every 1h", logger.NewNop())
	require.NoError(t, err)

	s.warm()
	s.warm()
	assert.Equal(t, int32(2), warmer.calls.Load())
}

func TestSchedulerRejectsBadSpec(t *testing.T) {
	_, err := NewAnnouncementScheduler(&countingWarmer{}, "not a spec", logger.NewNop())
	assert.Error(t, err)
}

type blockingWarmer struct {
	started chan struct{}
	release chan struct{}
}

func (w *blockingWarmer) Warm(context.Context) (int, error) {
	close(w.started)
	<-w.release
	return 0, nil
}

func TestStopWaitsForInitialWarm(t *testing.T) {
	defer goleak.VerifyNone(t)

	warmer := &blockingWarmer{started: make(chan struct{}), release: make(chan struct{})}
	s, err := NewAnnouncementScheduler(warmer, "@every 1h", logger.NewNop())
	require.NoError(t, err)

	s.Start()
	<-warmer.started

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	assert.Never(t, func() bool {
		select {
		case <-stopped:
			return true
		default:
			return false
		}
	}, 100*time.Millisecond, 10*time.Millisecond)

	close(warmer.release)
	assert.Eventually(t, func() bool {
		select {
		case <-stopped:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}
