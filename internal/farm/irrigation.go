package farm

import "greenchain/internal/models"

// MoistureThreshold is the soil moisture percentage below which the
// irrigation system activates.
const MoistureThreshold = 55.0

// Decide returns the irrigation state for the most recent soil-moisture
// reading. The state is derived fresh on every call with no hysteresis, so
// a reading oscillating around the threshold toggles the state on every
// evaluation; that is documented behavior, not a bug.
func Decide(latestSoilMoisture float64) models.IrrigationStatus {
	if latestSoilMoisture < MoistureThreshold {
		return models.IrrigationActive
	}
	return models.IrrigationIdle
}
