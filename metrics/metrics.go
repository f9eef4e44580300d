// This file is part of Perfmark.
//
// Perfmark is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Perfmark is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Perfmark.  If not, see <https://www.gnu.org/licenses/>.

// Package metrics exports the statistics of a perf.Perf instance as Prometheus
// metrics. Statistics are calculated when the metrics are collected, so the
// values are always current.
package metrics

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/jetsetilly/perfmark/logger"
	"github.com/jetsetilly/perfmark/perf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shirou/gopsutil/v3/cpu"
)

// Namespace of all metrics.
const Namespace = "perfmark"

// Quantiles reported for each measure.
var Quantiles = []float64{0.5, 0.9, 0.99}

// Collector implements the prometheus.Collector interface.
type Collector struct {
	perf *perf.Perf

	// names of measures to collect. if empty, all measures are collected
	names []string

	// include host CPU usage
	hostCPU bool

	// most recent value from ObserveFPS(). stored as math.Float64bits()
	fps atomic.Uint64

	count    *prometheus.Desc
	last     *prometheus.Desc
	mean     *prometheus.Desc
	sdev     *prometheus.Desc
	quantile *prometheus.Desc
	fpsDesc  *prometheus.Desc
	cpuDesc  *prometheus.Desc
}

// NewCollector is the preferred method of initialisation for the Collector
// type. The hostCPU argument adds a metric for the CPU usage of the host
// machine.
func NewCollector(p *perf.Perf, names []string, hostCPU bool) *Collector {
	c := &Collector{
		perf:    p,
		names:   names,
		hostCPU: hostCPU,
		count: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "measure", "count"),
			"Number of recorded measures",
			[]string{"name"}, nil),
		last: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "measure", "last_milliseconds"),
			"Duration of the most recent measure",
			[]string{"name"}, nil),
		mean: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "measure", "mean_milliseconds"),
			"Mean duration of all recorded measures",
			[]string{"name"}, nil),
		sdev: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "measure", "sdev_milliseconds"),
			"Population standard deviation of all recorded measures",
			[]string{"name"}, nil),
		quantile: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "measure", "quantile_milliseconds"),
			"Duration at quantile of all recorded measures",
			[]string{"name", "quantile"}, nil),
		fpsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "", "frames_per_second"),
			"Most recently sampled frame rate",
			nil, nil),
		cpuDesc: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "host", "cpu_percent"),
			"CPU usage of the host machine",
			nil, nil),
	}
	c.fps.Store(math.Float64bits(0))
	return c
}

// ObserveFPS records the frame rate. It has the signature of a
// perf.FPSCallback and can be passed directly to perf.OnFPS().
func (c *Collector) ObserveFPS(fps float64, _ float64) {
	c.fps.Store(math.Float64bits(fps))
}

// Describe implements the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.count
	ch <- c.last
	ch <- c.mean
	ch <- c.sdev
	ch <- c.quantile
	ch <- c.fpsDesc
	if c.hostCPU {
		ch <- c.cpuDesc
	}
}

// measureMetrics creates the metrics for a single measure. an error means the
// name cannot be used as a label value
func (c *Collector) measureMetrics(name string) ([]prometheus.Metric, error) {
	s := c.perf.Summary(name, Quantiles...)

	gauges := []struct {
		desc  *prometheus.Desc
		value float64
	}{
		{c.count, float64(s.Count)},
		{c.last, s.Last},
		{c.mean, s.Mean},
		{c.sdev, s.Sdev},
	}

	mets := make([]prometheus.Metric, 0, len(gauges)+len(s.Percentiles))
	for _, g := range gauges {
		m, err := prometheus.NewConstMetric(g.desc, prometheus.GaugeValue, g.value, name)
		if err != nil {
			return nil, err
		}
		mets = append(mets, m)
	}

	for i, q := range s.Percentiles {
		m, err := prometheus.NewConstMetric(c.quantile, prometheus.GaugeValue, s.Values[i],
			name, strconv.FormatFloat(q, 'g', -1, 64))
		if err != nil {
			return nil, err
		}
		mets = append(mets, m)
	}

	return mets, nil
}

// Collect implements the prometheus.Collector interface. Measures with names
// that are not valid label values are logged and left out.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	names := c.names
	if len(names) == 0 {
		names = c.perf.Names()
	}

	for _, n := range names {
		mets, err := c.measureMetrics(n)
		if err != nil {
			logger.Logf(logger.Allow, "metrics", "measure %q: %v", n, err)
			continue
		}
		for _, m := range mets {
			ch <- m
		}
	}

	ch <- prometheus.MustNewConstMetric(c.fpsDesc, prometheus.GaugeValue, math.Float64frombits(c.fps.Load()))

	if c.hostCPU {
		pc, err := cpu.Percent(0, false)
		if err != nil || len(pc) == 0 {
			logger.Logf(logger.Allow, "metrics", "host cpu: %v", err)
			return
		}
		ch <- prometheus.MustNewConstMetric(c.cpuDesc, prometheus.GaugeValue, pc[0])
	}
}

// NewRegistry creates a registry containing the collector.
func NewRegistry(c *Collector) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	err := reg.Register(c)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	return reg, nil
}

// Handler returns an http.Handler that serves the metrics in the registry.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
