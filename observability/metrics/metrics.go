// Package metrics defines the counters kept by the response extractors.
package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	prom "github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "imapclient"
	subsystem = "extract"
)

const (
	LabelEvent     = "event"
	LabelExtractor = "extractor"
)

type Metrics struct {
	// RecordsRerouted counts records delivered as unsolicited events, by event.
	RecordsRerouted metrics.Counter

	// UndeliveredEvents counts unsolicited events the sink did not accept, by event.
	UndeliveredEvents metrics.Counter

	// UnexpectedResponses counts records no extractor could place, by extractor.
	UnexpectedResponses metrics.Counter

	InvariantViolations metrics.Counter
}

// NewDiscard returns metrics that are not recorded anywhere.
func NewDiscard() *Metrics {
	return &Metrics{
		RecordsRerouted:     discard.NewCounter(),
		UndeliveredEvents:   discard.NewCounter(),
		UnexpectedResponses: discard.NewCounter(),
		InvariantViolations: discard.NewCounter(),
	}
}

// NewPrometheus returns metrics backed by prometheus counters registered with reg.
func NewPrometheus(reg prom.Registerer) (*Metrics, error) {
	rerouted := newCounterVec("records_rerouted_total", "Number of records delivered as unsolicited events.", LabelEvent)
	undelivered := newCounterVec("events_undelivered_total", "Number of unsolicited events that could not be delivered.", LabelEvent)
	unexpected := newCounterVec("unexpected_responses_total", "Number of unexpected responses.", LabelExtractor)
	violations := newCounterVec("invariant_violations_total", "Number of responses breaking a decoder guarantee.")

	for _, c := range []prom.Collector{rerouted, undelivered, unexpected, violations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return &Metrics{
		RecordsRerouted:     kitprometheus.NewCounter(rerouted),
		UndeliveredEvents:   kitprometheus.NewCounter(undelivered),
		UnexpectedResponses: kitprometheus.NewCounter(unexpected),
		InvariantViolations: kitprometheus.NewCounter(violations),
	}, nil
}

func newCounterVec(name, help string, labelNames ...string) *prom.CounterVec {
	return prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labelNames)
}
