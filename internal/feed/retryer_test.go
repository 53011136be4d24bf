package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/simplesurance/ghactivity/internal/apierr"
)

func TestRetryerReturnsNonRetryableErrors(t *testing.T) {
	t.Cleanup(zap.ReplaceGlobals(zaptest.NewLogger(t).Named(t.Name())))

	r := NewRetryer()
	t.Cleanup(r.Stop)

	wantErr := errors.New("fatal")
	var calls int

	err := r.Run(context.Background(), func(context.Context) error {
		calls++
		return wantErr
	}, nil)

	require.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, calls)
}

func TestRetryerRetriesUntilTimeout(t *testing.T) {
	t.Cleanup(zap.ReplaceGlobals(zaptest.NewLogger(t).Named(t.Name())))

	r := NewRetryer()
	t.Cleanup(r.Stop)

	r.defTimeout = 300 * time.Millisecond
	r.backoffInitialInterval = 20 * time.Millisecond

	var calls int

	err := r.Run(context.Background(), func(context.Context) error {
		calls++
		return apierr.NewRetryableAnytimeError(errors.New("err"))
	}, nil)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, calls, 2)
}

func TestRetryerRetriesUntilSuccess(t *testing.T) {
	t.Cleanup(zap.ReplaceGlobals(zaptest.NewLogger(t).Named(t.Name())))

	r := NewRetryer()
	t.Cleanup(r.Stop)

	r.backoffInitialInterval = 10 * time.Millisecond

	var calls int

	err := r.Run(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return apierr.NewRetryableError(errors.New("err"), time.Now().Add(10*time.Millisecond))
		}

		return nil
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryerStopAbortsRun(t *testing.T) {
	t.Cleanup(zap.ReplaceGlobals(zaptest.NewLogger(t).Named(t.Name())))

	r := NewRetryer()
	r.backoffInitialInterval = time.Hour

	runResult := make(chan error, 1)

	go func() {
		runResult <- r.Run(context.Background(), func(context.Context) error {
			return apierr.NewRetryableAnytimeError(errors.New("err"))
		}, nil)
	}()

	// wait until the first try failed and the retry is scheduled
	time.Sleep(100 * time.Millisecond)
	r.Stop()

	select {
	case err := <-runResult:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}
