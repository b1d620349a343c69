package metrics

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	Calculations *prometheus.CounterVec
	Duration     prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "estimator_calculations_total",
			Help: "Calculations by tab and status.",
		}, []string{"tab", "status"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "estimator_calculation_seconds",
			Help:    "Calculation duration.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.Calculations, m.Duration)
	return m
}
