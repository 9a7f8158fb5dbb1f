package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты проверки конфликтов для метки result
const (
	ConflictResultFree        = "free"
	ConflictResultConflict    = "conflict"
	ConflictResultInfeasible  = "infeasible" // конфликт без альтернатив
	ConflictResultUnavailable = "unavailable"
)

// Metrics набор prometheus-коллекторов сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках передается nil
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration    *prometheus.HistogramVec
	dbQueryErrorsTotal *prometheus.CounterVec
	dbConnections      *prometheus.GaugeVec

	conflictChecksTotal *prometheus.CounterVec
	suggestionsReturned *prometheus.HistogramVec
	writeConflictsTotal *prometheus.CounterVec
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"service", "operation"}),
		dbQueryErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),
		conflictChecksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "venue_conflict_checks_total",
			Help: "Total number of venue conflict checks by result",
		}, []string{"service", "result"}),
		suggestionsReturned: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "venue_suggested_slots",
			Help:    "Number of alternative slots returned per conflicting check",
			Buckets: []float64{0, 1, 2, 3, 5},
		}, []string{"service"}),
		writeConflictsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "venue_write_conflicts_total",
			Help: "Bookings rejected by the storage overlap constraint",
		}, []string{"service"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrorsTotal,
		m.dbConnections,
		m.conflictChecksTotal,
		m.suggestionsReturned,
		m.writeConflictsTotal,
	)

	return m
}

// ObserveHTTPRequest записывает результат HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery записывает длительность и результат запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrorsTotal.WithLabelValues(m.serviceName, operation).Inc()
	}
}

// SetDBConnections обновляет состояние пула соединений
func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(m.serviceName, "open").Set(float64(open))
	m.dbConnections.WithLabelValues(m.serviceName, "in_use").Set(float64(inUse))
	m.dbConnections.WithLabelValues(m.serviceName, "idle").Set(float64(idle))
}

// ObserveConflictCheck записывает результат проверки конфликтов
func (m *Metrics) ObserveConflictCheck(result string, suggestions int) {
	if m == nil {
		return
	}
	m.conflictChecksTotal.WithLabelValues(m.serviceName, result).Inc()
	if result == ConflictResultConflict || result == ConflictResultInfeasible {
		m.suggestionsReturned.WithLabelValues(m.serviceName).Observe(float64(suggestions))
	}
}

// IncWriteConflict учитывает бронирование, отклоненное ограничением БД
func (m *Metrics) IncWriteConflict() {
	if m == nil {
		return
	}
	m.writeConflictsTotal.WithLabelValues(m.serviceName).Inc()
}
