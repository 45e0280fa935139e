package tracing

import (
	"github.com/CNR-Engineering/Crue10-tools-sub001/logging"
	"github.com/go-kit/kit/log"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Names for our metrics
const (
	TracedFailures = "traced_failures_total"
)

const tracedFailuresHelpMsg = "Count of traced calls that returned an error or panicked, by operation"

// NewFailureCounterVec creates the prometheus vector backing a Tracer's failure counter and
// registers it with r.  If an identical collector is already registered, that one is returned.
func NewFailureCounterVec(r prometheus.Registerer) (*prometheus.CounterVec, error) {
	cv := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: TracedFailures,
		Help: tracedFailuresHelpMsg,
	}, []string{OperationKey})

	if err := r.Register(cv); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}

		return nil, err
	}

	return cv, nil
}

// ProvideMetrics provides the metrics relevant to this package as uber/fx options.
// A prometheus.Registerer must be available in the enclosing application.
func ProvideMetrics() fx.Option {
	return fx.Provide(
		fx.Annotated{
			Name:   TracedFailures,
			Target: NewFailureCounterVec,
		},
	)
}

// TracerIn is the set of uber/fx dependencies used to build a Tracer.
type TracerIn struct {
	fx.In

	Logger   log.Logger             `optional:"true"`
	Failures *prometheus.CounterVec `name:"traced_failures_total"`
}

// ProvideTracer provides a *Tracer wired to the traced failures metric and, if present, the
// application's go-kit logger.
func ProvideTracer() fx.Option {
	return fx.Provide(
		func(in TracerIn) *Tracer {
			return NewTracer(
				WithLogger(logging.OrDefault(in.Logger)),
				WithFailureCounter(gokitprometheus.NewCounter(in.Failures)),
			)
		},
	)
}
