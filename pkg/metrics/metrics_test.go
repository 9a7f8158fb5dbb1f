package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveConflictCheck(t *testing.T) {
	m := NewWithRegistry("venue-booking", prometheus.NewRegistry())

	m.ObserveConflictCheck(ConflictResultFree, 0)
	m.ObserveConflictCheck(ConflictResultConflict, 2)
	m.ObserveConflictCheck(ConflictResultConflict, 1)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.conflictChecksTotal.WithLabelValues("venue-booking", ConflictResultFree)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.conflictChecksTotal.WithLabelValues("venue-booking", ConflictResultConflict)))
}

func TestMetrics_ObserveDBQuery(t *testing.T) {
	m := NewWithRegistry("venue-booking", prometheus.NewRegistry())

	m.ObserveDBQuery("query", 10*time.Millisecond, nil)
	m.ObserveDBQuery("query", 10*time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrorsTotal.WithLabelValues("venue-booking", "query")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
		m.ObserveDBQuery("exec", time.Millisecond, nil)
		m.SetDBConnections(1, 1, 0)
		m.ObserveConflictCheck(ConflictResultFree, 0)
		m.IncWriteConflict()
	})
}
