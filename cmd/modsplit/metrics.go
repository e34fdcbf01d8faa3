// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/modularity/community"
)

// runMetrics collects one partition run for the node_exporter textfile
// collector (--metrics-file).
type runMetrics struct {
	registry *prometheus.Registry

	Splits      prometheus.Counter
	SplitGain   prometheus.Histogram
	SplitLevel  prometheus.Gauge
	Modularity  prometheus.Gauge
	Groups      prometheus.Gauge
	Nodes       prometheus.Gauge
	DurationSec prometheus.Gauge
}

func newRunMetrics() *runMetrics {
	r := &runMetrics{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)

	r.Splits = f.NewCounter(prometheus.CounterOpts{
		Name: "modsplit_splits_total",
		Help: "Accepted bisections",
	})
	r.SplitGain = f.NewHistogram(prometheus.HistogramOpts{
		Name:    "modsplit_split_delta_q",
		Help:    "Modularity gain of accepted bisections",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.2, 0.4},
	})
	r.SplitLevel = f.NewGauge(prometheus.GaugeOpts{
		Name: "modsplit_deepest_split_level",
		Help: "Level of the deepest accepted bisection",
	})
	r.Modularity = f.NewGauge(prometheus.GaugeOpts{
		Name: "modsplit_modularity",
		Help: "Final modularity Q",
	})
	r.Groups = f.NewGauge(prometheus.GaugeOpts{
		Name: "modsplit_groups",
		Help: "Number of communities found",
	})
	r.Nodes = f.NewGauge(prometheus.GaugeOpts{
		Name: "modsplit_nodes",
		Help: "Number of nodes in the input graph",
	})
	r.DurationSec = f.NewGauge(prometheus.GaugeOpts{
		Name: "modsplit_run_duration_seconds",
		Help: "Wall time of the partition run",
	})

	return r
}

// observe is a community.ProgressFunc.
func (r *runMetrics) observe(s community.Split) {
	r.Splits.Inc()
	r.SplitGain.Observe(s.DeltaQ)
	r.SplitLevel.Set(float64(s.Level))
}

func (r *runMetrics) finish(res *community.Result, elapsed time.Duration) {
	var nodes int
	for _, grp := range res.Groups {
		nodes += len(grp)
	}
	r.Modularity.Set(res.Q)
	r.Groups.Set(float64(len(res.Groups)))
	r.Nodes.Set(float64(nodes))
	r.DurationSec.Set(elapsed.Seconds())
}

func (r *runMetrics) writeFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	return nil
}
