// Copyright © 2026 The Gomon Project.

package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/zosmac/gocore"
	"github.com/zosmac/logsift/logs"
)

type (
	// prometheusCollector complies with the Prometheus Collector interface.
	prometheusCollector struct {
		stats   logs.Stats
		grouped logs.Grouped
	}
)

var (
	// descs maps metric names to descriptions.
	descs = map[string]*prometheus.Desc{
		"lines": prometheus.NewDesc(
			"logsift_lines_total",
			"Lines read from the log file.",
			nil, nil,
		),
		"matched": prometheus.NewDesc(
			"logsift_matched_total",
			"Log records matching a severity.",
			[]string{"severity"}, nil,
		),
		"rejected": prometheus.NewDesc(
			"logsift_rejected_total",
			"Messages dropped by a filter.",
			[]string{"filter"}, nil,
		),
		"duplicates": prometheus.NewDesc(
			"logsift_duplicates_total",
			"Repeated messages collapsed into one.",
			[]string{"severity"}, nil,
		),
		"messages": prometheus.NewDesc(
			"logsift_messages",
			"Unique messages reported.",
			[]string{"severity"}, nil,
		),
	}
)

// Describe returns metric descriptions for prometheusCollector.
func (c *prometheusCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, desc := range descs {
		ch <- desc
	}
}

// Collect returns the scan statistics as Prometheus metrics.
func (c *prometheusCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(descs["lines"], prometheus.CounterValue, float64(c.stats.Lines))
	for severity, n := range c.stats.Matched {
		ch <- prometheus.MustNewConstMetric(descs["matched"], prometheus.CounterValue, float64(n), severity)
	}
	ch <- prometheus.MustNewConstMetric(descs["rejected"], prometheus.CounterValue, float64(c.stats.Whitelisted), "whitelist")
	ch <- prometheus.MustNewConstMetric(descs["rejected"], prometheus.CounterValue, float64(c.stats.Blacklisted), "blacklist")
	for severity, n := range c.stats.Duplicates {
		ch <- prometheus.MustNewConstMetric(descs["duplicates"], prometheus.CounterValue, float64(n), severity)
	}
	for _, severity := range c.grouped.Severities() {
		ch <- prometheus.MustNewConstMetric(descs["messages"], prometheus.GaugeValue, float64(len(c.grouped[severity])), severity)
	}
}

// writeMetrics writes the scan statistics to path in the Prometheus text format.
func writeMetrics(path string, stats logs.Stats, g logs.Grouped) error {
	registry := prometheus.NewRegistry()
	if err := registry.Register(&prometheusCollector{stats: stats, grouped: g}); err != nil {
		return gocore.Error("prometheus Register", err)
	}
	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return gocore.Error("prometheus WriteToTextfile", err)
	}
	return nil
}
