package feed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/simplesurance/ghactivity/internal/logfields"
)

const metricNamespace = "ghactivity"

const (
	receivedEventsMetricName = "feed_events_received_total"
	pollsMetricName          = "feed_polls_total"
	pollErrorsMetricName     = "feed_poll_errors_total"
)

const eventTypeLabel = "event_type"

type metricCollector struct {
	logger         *zap.Logger
	receivedEvents *prometheus.CounterVec
	polls          prometheus.Counter
	pollErrors     prometheus.Counter
}

var metrics = newMetricCollector()

func newMetricCollector() *metricCollector {
	return &metricCollector{
		logger: zap.L().Named(pollerLoggerName).Named("metrics"),
		receivedEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricNamespace,
				Name:      receivedEventsMetricName,
				Help:      "count of received activity-feed events",
			},
			[]string{eventTypeLabel},
		),
		polls: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricNamespace,
				Name:      pollsMetricName,
				Help:      "count of activity-feed poll requests",
			},
		),
		pollErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricNamespace,
				Name:      pollErrorsMetricName,
				Help:      "count of failed activity-feed polls",
			},
		),
	}
}

func (m *metricCollector) logGetMetricFailed(metricName string, err error) {
	m.logger.Warn(
		"could not record metric",
		zap.String("metric", metricName),
		logfields.Event("recording_metric_failed"),
		zap.Error(err),
	)
}

func (m *metricCollector) ReceivedEventsInc(eventType string) {
	cnt, err := m.receivedEvents.GetMetricWith(prometheus.Labels{eventTypeLabel: eventType})
	if err != nil {
		m.logGetMetricFailed(receivedEventsMetricName, err)
		return
	}

	cnt.Inc()
}

func (m *metricCollector) PollsInc() {
	m.polls.Inc()
}

func (m *metricCollector) PollErrorsInc() {
	m.pollErrors.Inc()
}
