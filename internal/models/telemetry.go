package models

import "time"

// SeriesLength is the number of hourly readings in a telemetry series.
const SeriesLength = 24

// TelemetryReading represents one simulated sensor sample from the farm
type TelemetryReading struct {
	Timestamp    time.Time `json:"timestamp"`
	Temperature  float64   `json:"temperature"`   // Air temperature in Celsius
	Humidity     float64   `json:"humidity"`      // Relative humidity in percent
	Light        float64   `json:"light"`         // Light intensity in lux
	SoilMoisture float64   `json:"soil_moisture"` // Soil moisture in percent
}

// TelemetrySeries is a rolling window of hourly readings, ordered by
// ascending timestamp with the last entry at the generation reference time.
type TelemetrySeries []TelemetryReading

// Latest returns the most recent reading in the series.
func (s TelemetrySeries) Latest() TelemetryReading {
	if len(s) == 0 {
		return TelemetryReading{}
	}
	return s[len(s)-1]
}

// IrrigationStatus represents the state of the irrigation system
type IrrigationStatus string

const (
	IrrigationIdle   IrrigationStatus = "idle"
	IrrigationActive IrrigationStatus = "active"
)
