package async

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

func TestWorkerRunsTasks(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := NewWorker(10, logger.NewNop())
	w.Start(2)

	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		require.NoError(t, w.AddTask(func() { ran.Add(1) }))
	}
	w.Stop()

	assert.Equal(t, int32(5), ran.Load())
}

func TestWorkerRetries(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := NewWorker(1, logger.NewNop())
	w.backoff = time.Millisecond
	w.Start(1)

	var calls atomic.Int32
	require.NoError(t, w.Submit(Task{
		ID:       "flaky",
		RetryMax: 2,
		Handler: func(ctx context.Context) error {
			if calls.Add(1) < 3 {
				return errors.New("not yet")
			}
			return nil
		},
	}))
	w.Stop()

	result, ok := w.GetResult("flaky")
	require.True(t, ok)
	assert.True(t, result.Completed)
	assert.Equal(t, 3, result.Attempts)
}

func TestWorkerRecordsFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := NewWorker(1, logger.NewNop())
	w.Start(1)

	boom := errors.New("boom")
	require.NoError(t, w.Submit(Task{ID: "bad", Handler: func(ctx context.Context) error { return boom }}))
	w.Stop()

	result, ok := w.GetResult("bad")
	require.True(t, ok)
	assert.False(t, result.Completed)
	assert.ErrorIs(t, result.Error, boom)
}

func TestWorkerSubmitAfterStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := NewWorker(1, logger.NewNop())
	w.Start(1)
	w.Stop()
	w.Stop()

	assert.ErrorIs(t, w.AddTask(func() {}), ErrStopped)
}

func TestWorkerQueueFull(t *testing.T) {
	w := NewWorker(1, logger.NewNop())

	require.NoError(t, w.AddTask(func() {}))
	assert.ErrorIs(t, w.AddTask(func() {}), ErrQueueFull)

	w.Start(1)
	w.Stop()
}
