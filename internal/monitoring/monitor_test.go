package monitoring

import (
	"testing"
	"time"

	"greenchain/internal/models"
)

func TestMonitor_GetMetrics(t *testing.T) {
	m := NewMonitor()
	m.RecordMetric("test_metric", 42)

	metrics := m.GetMetrics()

	// Check if our metric is present
	value, exists := metrics["test_metric"]
	if !exists {
		t.Fatalf("Expected 'test_metric' to be present in metrics, but it was not")
	}

	// Check value
	if value != 42 {
		t.Errorf("Expected 'test_metric' to be 42, but got %v", value)
	}

	// Check uptime presence
	_, exists = metrics["uptime_seconds"]
	if !exists {
		t.Errorf("Expected 'uptime_seconds' to be present in metrics, but it was not")
	}
}

func TestMonitor_RecordReading(t *testing.T) {
	m := NewMonitor()

	reading := models.TelemetryReading{
		Timestamp:    time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
		Temperature:  27.5,
		Humidity:     62.0,
		Light:        640.0,
		SoilMoisture: 58.2,
	}

	m.RecordReading(reading)

	metrics := m.GetMetrics()

	value, exists := metrics["telemetry_temperature"]
	if !exists {
		t.Fatalf("Expected 'telemetry_temperature' to be present in metrics, but it was not")
	}
	if value != 27.5 {
		t.Errorf("Expected 'telemetry_temperature' to be 27.5, but got %v", value)
	}

	_, exists = metrics["telemetry_last_generated"]
	if !exists {
		t.Errorf("Expected 'telemetry_last_generated' to be present in metrics, but it was not")
	}
}

func TestMonitor_Reset(t *testing.T) {
	m := NewMonitor()
	m.RecordMetric("test_metric", 42)

	m.Reset()

	metrics := m.GetMetrics()

	// Our test metric should be gone, but uptime should still be there
	_, exists := metrics["test_metric"]
	if exists {
		t.Errorf("Expected 'test_metric' to be removed after Reset(), but it was present")
	}

	// Uptime should still be present (it's added on GetMetrics call)
	_, exists = metrics["uptime_seconds"]
	if !exists {
		t.Errorf("Expected 'uptime_seconds' to be present after Reset(), but it was not")
	}
}

func TestCollector_RecordIrrigation(t *testing.T) {
	c := NewCollector()

	// Exercise both branches; values are verified via the registry gather.
	c.RecordIrrigation(models.IrrigationActive)
	c.RecordIrrigation(models.IrrigationIdle)

	families, err := c.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	found := map[string]bool{}
	for _, family := range families {
		found[family.GetName()] = true
	}
	for _, name := range []string{"farm_irrigation_active", "farm_irrigation_activations_total"} {
		if !found[name] {
			t.Errorf("metric %q not gathered", name)
		}
	}
}
