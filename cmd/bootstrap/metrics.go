package bootstrap

import (
	"gamestore/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		func() prometheus.Registerer {
			return prometheus.DefaultRegisterer
		},
		fx.Annotate(
			metrics.NewPrometheusRecorder,
			fx.As(new(metrics.Recorder)),
		),
	),
)
