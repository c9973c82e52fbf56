// Package monitoring tracks dashboard metrics for the farm platform: an
// ad-hoc snapshot map consumed by the monitor endpoint and a prometheus
// collector served from the metrics port.
package monitoring

import (
	"sync"
	"time"

	"greenchain/internal/models"
)

// Monitor holds the latest dashboard metric values behind an RWMutex.
type Monitor struct {
	mu        sync.RWMutex
	metrics   map[string]interface{}
	startTime time.Time
}

// NewMonitor creates an empty monitor.
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// RecordMetric records a single metric value.
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metrics[name] = value
}

// RecordReading records the fields of the latest telemetry reading.
func (m *Monitor) RecordReading(r models.TelemetryReading) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metrics["telemetry_temperature"] = r.Temperature
	m.metrics["telemetry_humidity"] = r.Humidity
	m.metrics["telemetry_light"] = r.Light
	m.metrics["telemetry_soil_moisture"] = r.SoilMoisture
	m.metrics["telemetry_last_generated"] = r.Timestamp.Format(time.RFC3339)
}

// GetMetric returns one metric value.
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns a copy of all current metrics plus uptime.
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	metrics := make(map[string]interface{}, len(m.metrics)+1)
	for k, v := range m.metrics {
		metrics[k] = v
	}
	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()
	return metrics
}

// Reset clears all recorded metrics.
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metrics = make(map[string]interface{})
}
