package feed

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/simplesurance/ghactivity/internal/activity"
	"github.com/simplesurance/ghactivity/internal/logfields"
)

const DefEventChannelBufferSize = 512
const DefPollInterval = time.Minute

const pollerLoggerName = "poller"

// Poller periodically fetches the activity feed and forwards new
// events to its channel, newest event last.
//
// The feed is polled with conditional requests, honoring the poll
// interval the server advertises. Events that were already delivered
// in an earlier poll are filtered out by their id.
type Poller struct {
	clt      *Client
	ch       chan *activity.Event
	logger   *zap.Logger
	interval time.Duration
	perPage  int
	filter   *Filter
	retryer  *Retryer

	// seen contains the ids of the events of the last successful
	// poll, it is only accessed by the poll-loop goroutine.
	seen map[string]struct{}
	etag string

	wg           sync.WaitGroup
	stopOnce     sync.Once
	shutdownChan chan struct{}
}

type PollerOption func(*Poller)

// WithPollInterval sets the fallback poll interval that is used when
// the server does not advertise one.
func WithPollInterval(interval time.Duration) PollerOption {
	return func(p *Poller) {
		p.interval = interval
	}
}

// WithPerPage sets the page size requested from the feed endpoint.
func WithPerPage(perPage int) PollerOption {
	return func(p *Poller) {
		p.perPage = perPage
	}
}

// WithFilter only forwards events whose raw mapping matches the
// filter.
func WithFilter(filter *Filter) PollerOption {
	return func(p *Poller) {
		p.filter = filter
	}
}

func NewPoller(clt *Client, opts ...PollerOption) *Poller {
	p := Poller{
		clt:          clt,
		ch:           make(chan *activity.Event, DefEventChannelBufferSize),
		interval:     DefPollInterval,
		retryer:      NewRetryer(),
		seen:         map[string]struct{}{},
		shutdownChan: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(&p)
	}

	if p.logger == nil {
		p.logger = zap.L().Named(pollerLoggerName)
	}

	return &p
}

// C returns the channel to that decoded events are forwarded.
// The channel is closed when the Poller terminates.
func (p *Poller) C() <-chan *activity.Event {
	return p.ch
}

// Start launches the poll loop in a goroutine, it polls the feed
// until Stop() is called.
func (p *Poller) Start() {
	ctx, cancel := context.WithCancel(context.Background())

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		<-p.shutdownChan
		cancel()
	}()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer close(p.ch)

		p.loop(ctx)
	}()
}

func (p *Poller) loop(ctx context.Context) {
	p.logger.Info("poller started", logfields.Event("poller_started"))

	pollTimer := time.NewTimer(0)
	defer pollTimer.Stop()

	for {
		select {
		case <-p.shutdownChan:
			p.logger.Info("poller terminated", logfields.Event("poller_terminated"))
			return

		case <-pollTimer.C:
			interval, err := p.poll(ctx)
			if err != nil {
				metrics.PollErrorsInc()
				p.logger.Error(
					"polling the feed failed",
					logfields.Event("feed_poll_failed"),
					zap.Error(err),
				)
			}

			if interval <= 0 {
				interval = p.interval
			}

			pollTimer.Reset(interval)
		}
	}
}

// poll fetches the current feed page and forwards unseen events.
// It returns the poll interval advertised by the server, 0 when none
// was advertised.
func (p *Poller) poll(ctx context.Context) (time.Duration, error) {
	var rawEvents []map[string]any
	var listResp *ListResponse

	err := p.retryer.Run(ctx, func(ctx context.Context) error {
		var err error

		metrics.PollsInc()
		rawEvents, listResp, err = p.clt.ListEvents(ctx, &ListOptions{
			PerPage: p.perPage,
			ETag:    p.etag,
		})

		return err
	}, nil)
	if err != nil {
		return 0, err
	}

	// the retryer returns nil without running fn when it was stopped
	if listResp == nil {
		return 0, nil
	}

	p.etag = listResp.ETag

	if listResp.NotModified {
		p.logger.Debug("feed unchanged", logfields.Event("feed_not_modified"))
		return listResp.PollInterval, nil
	}

	seen := make(map[string]struct{}, len(rawEvents))

	// the feed is ordered newest first, deliver oldest first
	for i := len(rawEvents) - 1; i >= 0; i-- {
		raw := rawEvents[i]

		if p.filter != nil {
			match, err := p.filter.Match(ctx, raw)
			if err != nil {
				p.logger.Error(
					"matching event filter failed, event skipped",
					logfields.Event("event_filter_matching_failed"),
					zap.Error(err),
				)
				continue
			}

			if !match {
				continue
			}
		}

		event := activity.Decode(raw)

		seen[event.ID] = struct{}{}

		if _, delivered := p.seen[event.ID]; delivered {
			continue
		}

		metrics.ReceivedEventsInc(event.Type)

		select {
		case p.ch <- event:
			p.logger.Debug(
				"event forwarded to channel",
				append(event.LogFields(), logfields.Event("feed_event_forwarded"))...,
			)

		case <-p.shutdownChan:
			return 0, nil
		}
	}

	p.seen = seen

	return listResp.PollInterval, nil
}

// Stop terminates the Poller and waits until its goroutines finished.
// The event channel is closed on termination.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		p.logger.Debug("poller terminating", logfields.Event("poller_terminating"))
		close(p.shutdownChan)
		p.retryer.Stop()
	})

	p.wg.Wait()
}
