package rbot

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/transairobot/rbot_go/messages"
)

// Metrics 按消息类型采集消息客户端的往返指标。
// 指标是可选的：未启用时所有采集方法都是空操作。
type Metrics struct {
	roundTrips *prometheus.CounterVec
	errors     *prometheus.CounterVec
	latency    *prometheus.HistogramVec
}

// NewMetrics 创建指标集并注册到给定的注册表。
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		roundTrips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rbot",
			Subsystem: "client",
			Name:      "round_trips_total",
			Help:      "完成的请求/响应往返总数",
		}, []string{"type"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rbot",
			Subsystem: "client",
			Name:      "round_trip_errors_total",
			Help:      "失败的请求/响应往返总数",
		}, []string{"type"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rbot",
			Subsystem: "client",
			Name:      "round_trip_duration_seconds",
			Help:      "单次往返耗时分布",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"type"}),
	}

	reg.MustRegister(m.roundTrips, m.errors, m.latency)
	return m
}

func (m *Metrics) observeRoundTrip(typ messages.MessageType, d time.Duration) {
	if m == nil {
		return
	}
	m.roundTrips.WithLabelValues(typ.String()).Inc()
	m.latency.WithLabelValues(typ.String()).Observe(d.Seconds())
}

func (m *Metrics) observeError(typ messages.MessageType) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(typ.String()).Inc()
}
