package feed

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"

	"github.com/simplesurance/ghactivity/internal/apierr"
	"github.com/simplesurance/ghactivity/internal/logfields"
)

const defRetryTimeout = 2 * time.Hour
const defBackoffInitialInterval = 5 * time.Second

// Retryer executes a function repeatedly until it was successful or a
// cancel condition happened.
type Retryer struct {
	logger                 *zap.Logger
	defTimeout             time.Duration
	backoffInitialInterval time.Duration
	shutdownChan           chan struct{}
}

func NewRetryer() *Retryer {
	return &Retryer{
		logger:                 zap.L().Named("retryer"),
		defTimeout:             defRetryTimeout,
		backoffInitialInterval: defBackoffInitialInterval,
		shutdownChan:           make(chan struct{}),
	}
}

// Run executes fn until it was successful, it returned an error that
// does not wrap apierr.RetryableError, the retry timeout expired or
// the execution was aborted via the context.
func (r *Retryer) Run(ctx context.Context, fn func(context.Context) error, logF []zap.Field) error {
	var tryCnt uint

	ctx, cancel := context.WithTimeout(ctx, r.defTimeout)
	defer cancel()

	retryTimer := time.NewTimer(0)
	defer retryTimer.Stop()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.backoffInitialInterval
	// the context deadline terminates retrying, NextBackOff() must
	// not return backoff.Stop before that
	bo.MaxElapsedTime = 0

	for {
		tryCnt++
		logger := r.logger.With(logF...).With(zap.Uint("try_count", tryCnt))

		select {
		case <-ctx.Done():
			logger.Info(
				"fetch cancelled",
				logfields.Event("fetch_cancelled"),
			)

			return ctx.Err()

		case <-r.shutdownChan:
			logger.Info(
				"retryer terminating, fetch not executed",
				logfields.Event("fetch_cancelled_retryer_terminated"),
			)

			return nil

		case <-retryTimer.C:
			err := fn(ctx)
			if err == nil {
				return nil
			}

			logger = logger.With(zap.Error(err))

			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				logger.Info(
					"fetch cancelled",
					logfields.Event("fetch_cancelled"),
				)

				return err
			}

			var retryError *apierr.RetryableError
			if !errors.As(err, &retryError) {
				logger.Error(
					"fetch failed, not retryable",
					logfields.Event("fetch_failed"),
				)

				return err
			}

			var retryIn time.Duration

			if retryError.After.IsZero() {
				retryIn = bo.NextBackOff()
			} else {
				retryIn = time.Until(retryError.After)
			}

			if retryIn < 0 {
				retryIn = 0
			}

			retryTimer.Reset(retryIn)
			logger.Warn(
				"fetch failed, retry scheduled",
				logfields.Event("fetch_retry_scheduled"),
				zap.Duration("retry_in", retryIn),
				zap.Duration("age", bo.GetElapsedTime()),
			)
		}
	}
}

// Stop notifies all Run() methods to terminate.
// It does not wait for their termination.
func (r *Retryer) Stop() {
	r.logger.Debug("retryer terminating", logfields.Event("retryer_terminating"))

	select {
	case <-r.shutdownChan:
		return // already closed
	default:
		close(r.shutdownChan)
	}
}
