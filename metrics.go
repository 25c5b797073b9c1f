package dbpool

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Parts of Prometheus metric names.
const (
	namespace = "komga"
	subsystem = "dbpool"
)

var (
	openDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "connections_open"),
		"The current number of established connections, both in use and idle.",
		[]string{"pool", "backend"}, nil,
	)
	inUseDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "connections_in_use"),
		"The current number of connections held by callers.",
		[]string{"pool", "backend"}, nil,
	)
	idleDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "connections_idle"),
		"The current number of idle connections.",
		[]string{"pool", "backend"}, nil,
	)
	maxDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "connections_max"),
		"The pool's connection bound.",
		[]string{"pool", "backend"}, nil,
	)
	waitDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "acquire_waits_total"),
		"The total number of acquisitions that had to wait for a connection.",
		[]string{"pool", "backend"}, nil,
	)
)

// Describe implements prometheus.Collector.
func (p *EmbeddedPool) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(p, ch)
}

// Collect implements prometheus.Collector.
func (p *EmbeddedPool) Collect(ch chan<- prometheus.Metric) {
	stats := p.db.Stats()
	labels := []string{p.name, EmbeddedFile.String()}

	ch <- prometheus.MustNewConstMetric(openDesc, prometheus.GaugeValue, float64(stats.OpenConnections), labels...)
	ch <- prometheus.MustNewConstMetric(inUseDesc, prometheus.GaugeValue, float64(stats.InUse), labels...)
	ch <- prometheus.MustNewConstMetric(idleDesc, prometheus.GaugeValue, float64(stats.Idle), labels...)
	ch <- prometheus.MustNewConstMetric(maxDesc, prometheus.GaugeValue, float64(stats.MaxOpenConnections), labels...)
	ch <- prometheus.MustNewConstMetric(waitDesc, prometheus.CounterValue, float64(stats.WaitCount), labels...)
}

// Describe implements prometheus.Collector.
func (p *ServerPool) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(p, ch)
}

// Collect implements prometheus.Collector.
func (p *ServerPool) Collect(ch chan<- prometheus.Metric) {
	stat := p.pool.Stat()
	labels := []string{PrimaryPoolName, Networked.String()}

	ch <- prometheus.MustNewConstMetric(openDesc, prometheus.GaugeValue, float64(stat.TotalConns()), labels...)
	ch <- prometheus.MustNewConstMetric(inUseDesc, prometheus.GaugeValue, float64(stat.AcquiredConns()), labels...)
	ch <- prometheus.MustNewConstMetric(idleDesc, prometheus.GaugeValue, float64(stat.IdleConns()), labels...)
	ch <- prometheus.MustNewConstMetric(maxDesc, prometheus.GaugeValue, float64(stat.MaxConns()), labels...)
	ch <- prometheus.MustNewConstMetric(waitDesc, prometheus.CounterValue, float64(stat.EmptyAcquireCount()), labels...)
}

// check interfaces
var (
	_ prometheus.Collector = (*EmbeddedPool)(nil)
	_ prometheus.Collector = (*ServerPool)(nil)
)
