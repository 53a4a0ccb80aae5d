// Package metrics exports hashmap stats to prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	hashmap "github.com/amgfrthsp/HSE.HashMap"
)

const namespace = "hashmap"

type statsCollector struct {
	stats func() hashmap.Stats

	length      *prometheus.Desc
	capacity    *prometheus.Desc
	usedBuckets *prometheus.Desc
	longestRun  *prometheus.Desc
	rehashes    *prometheus.Desc
}

// NewStatsCollector creates a collector reading stats on every scrape.
// The stats function must do its own locking if the map is mutated concurrently.
func NewStatsCollector(name string, stats func() hashmap.Stats) prometheus.Collector {
	labels := prometheus.Labels{"map": name}
	return &statsCollector{
		stats: stats,
		length: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "elements"),
			"Number of elements in the map.",
			nil, labels,
		),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "buckets"),
			"Number of buckets in the map.",
			nil, labels,
		),
		usedBuckets: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "used_buckets"),
			"Number of non-empty buckets.",
			nil, labels,
		),
		longestRun: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "longest_bucket_run"),
			"Element count of the largest bucket.",
			nil, labels,
		),
		rehashes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "rehashes_total"),
			"Number of times the map doubled its buckets.",
			nil, labels,
		),
	}
}

func (c *statsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.length
	ch <- c.capacity
	ch <- c.usedBuckets
	ch <- c.longestRun
	ch <- c.rehashes
}

func (c *statsCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.stats()
	ch <- prometheus.MustNewConstMetric(c.length, prometheus.GaugeValue, float64(stats.Len))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(stats.Capacity))
	ch <- prometheus.MustNewConstMetric(c.usedBuckets, prometheus.GaugeValue, float64(stats.UsedBuckets))
	ch <- prometheus.MustNewConstMetric(c.longestRun, prometheus.GaugeValue, float64(stats.LongestRun))
	ch <- prometheus.MustNewConstMetric(c.rehashes, prometheus.CounterValue, float64(stats.Rehashes))
}

var _ prometheus.Collector = new(statsCollector)
