package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the instruments recorded by the HTTP middleware and the age
// service.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter

	// SubmissionTotal counts form submits by result.
	SubmissionTotal metric.Int64Counter
	// ValidationFailureTotal counts rejected fields by field name.
	ValidationFailureTotal metric.Int64Counter
}

// NewMetrics registers every instrument on the meter named scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	meter := mp.Meter(scope)
	m := &Metrics{}

	var err error
	if m.ServerRequestDuration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, instrumentErr("http.server.request.duration", err)
	}

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
		unit string
	}{
		{&m.ServerRequestTotal, "http.server.request.total", "Incoming HTTP requests", "{request}"},
		{&m.SubmissionTotal, "age.submission.total", "Age form submits", "{submission}"},
		{&m.ValidationFailureTotal, "age.validation.failure.total", "Fields rejected by validation", "{field}"},
	}
	for _, c := range counters {
		if *c.dst, err = meter.Int64Counter(c.name,
			metric.WithDescription(c.desc),
			metric.WithUnit(c.unit),
		); err != nil {
			return nil, instrumentErr(c.name, err)
		}
	}

	return m, nil
}

func instrumentErr(name string, err error) error {
	return fmt.Errorf("creating %s: %w", name, err)
}
