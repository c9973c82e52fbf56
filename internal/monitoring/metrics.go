package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"

	"greenchain/internal/models"
)

// Collector registers and updates the farm prometheus metrics
type Collector struct {
	registry *prometheus.Registry
	metrics  map[string]prometheus.Collector
}

// NewCollector creates a collector with the farm metric set registered
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	telemetryGauge := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "farm_telemetry_latest",
			Help: "Latest simulated telemetry reading by field",
		},
		[]string{"field"},
	)

	irrigationActive := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "farm_irrigation_active",
			Help: "Whether the irrigation system is active (1) or idle (0)",
		},
	)

	irrigationActivations := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "farm_irrigation_activations_total",
			Help: "Number of evaluations that switched irrigation on",
		},
	)

	ordersCreated := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "farm_orders_created_total",
			Help: "Number of orders created across all sessions",
		},
	)

	stageEvaluations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farm_stage_evaluations_total",
			Help: "Order stage evaluations by resulting stage",
		},
		[]string{"stage"},
	)

	metrics := map[string]prometheus.Collector{
		"telemetry":              telemetryGauge,
		"irrigation_active":      irrigationActive,
		"irrigation_activations": irrigationActivations,
		"orders_created":         ordersCreated,
		"stage_evaluations":      stageEvaluations,
	}

	for _, metric := range metrics {
		registry.MustRegister(metric)
	}

	return &Collector{
		registry: registry,
		metrics:  metrics,
	}
}

// Registry returns the prometheus registry for the metrics endpoint
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordReading updates the telemetry gauges from the latest reading
func (c *Collector) RecordReading(r models.TelemetryReading) {
	if gauge, ok := c.metrics["telemetry"].(*prometheus.GaugeVec); ok {
		gauge.WithLabelValues("temperature").Set(r.Temperature)
		gauge.WithLabelValues("humidity").Set(r.Humidity)
		gauge.WithLabelValues("light").Set(r.Light)
		gauge.WithLabelValues("soil_moisture").Set(r.SoilMoisture)
	}
}

// RecordIrrigation updates the irrigation state metrics
func (c *Collector) RecordIrrigation(status models.IrrigationStatus) {
	active := status == models.IrrigationActive
	if gauge, ok := c.metrics["irrigation_active"].(prometheus.Gauge); ok {
		if active {
			gauge.Set(1)
		} else {
			gauge.Set(0)
		}
	}
	if active {
		if counter, ok := c.metrics["irrigation_activations"].(prometheus.Counter); ok {
			counter.Inc()
		}
	}
}

// RecordOrderCreated counts a created order
func (c *Collector) RecordOrderCreated() {
	if counter, ok := c.metrics["orders_created"].(prometheus.Counter); ok {
		counter.Inc()
	}
}

// RecordStageEvaluation counts a tracker evaluation by resulting stage
func (c *Collector) RecordStageEvaluation(stage models.OrderStage) {
	if counter, ok := c.metrics["stage_evaluations"].(*prometheus.CounterVec); ok {
		counter.WithLabelValues(string(stage)).Inc()
	}
}
