package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	AppointmentOpsTotal *prometheus.CounterVec
	NotificationsTotal  *prometheus.CounterVec
	GeneratedSlots      *prometheus.HistogramVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AppointmentOpsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "appointment_operations_total",
				Help:        "Appointment ledger operations by type and result",
				ConstLabels: constLabels,
			},
			[]string{"operation", "result"},
		),
		NotificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "notifications_total",
				Help:        "Notification sends by channel, kind and result",
				ConstLabels: constLabels,
			},
			[]string{"channel", "kind", "result"},
		),
		GeneratedSlots: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "generated_slots",
				Help:        "Number of time slots generated per date",
				ConstLabels: constLabels,
				Buckets:     []float64{0, 4, 8, 12, 16, 24, 32, 48},
			},
			[]string{"availability"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AppointmentOpsTotal,
		m.NotificationsTotal,
		m.GeneratedSlots,
	)

	return m
}

// Handler возвращает HTTP handler для экспорта метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry возвращает реестр метрик
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// IncAppointmentOp увеличивает счётчик операций с записями (nil-safe)
func (m *Metrics) IncAppointmentOp(operation string, err error) {
	if m == nil {
		return
	}
	m.AppointmentOpsTotal.WithLabelValues(operation, resultLabel(err == nil)).Inc()
}

// IncNotification увеличивает счётчик отправленных уведомлений (nil-safe)
func (m *Metrics) IncNotification(channel, kind string, ok bool) {
	if m == nil {
		return
	}
	m.NotificationsTotal.WithLabelValues(channel, kind, resultLabel(ok)).Inc()
}

// ObserveSlots записывает количество сгенерированных и доступных слотов (nil-safe)
func (m *Metrics) ObserveSlots(total, available int) {
	if m == nil {
		return
	}
	m.GeneratedSlots.WithLabelValues("total").Observe(float64(total))
	m.GeneratedSlots.WithLabelValues("available").Observe(float64(available))
}

func resultLabel(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
