// Package farm simulates the environmental telemetry of a monitored farm.
// Readings follow a diurnal baseline with bounded random noise; no real
// sensors are involved and the contract is internal consistency, not
// fidelity to any physical site.
package farm

import "math"

// Daytime hours are [DayStart, DayEnd] inclusive.
const (
	DayStart = 6
	DayEnd   = 18
)

// Baseline returns the diurnal baseline temperature (Celsius) and light
// (lux) for an hour of day in [0, 23]. Temperature peaks mid-afternoon and
// bottoms out overnight; light follows a half-sine over the daytime window
// and has no deterministic baseline at night (the generator draws night
// light as pure noise).
func Baseline(hour int) (temperature, light float64) {
	switch {
	case hour >= DayStart && hour <= DayEnd:
		temperature = 25 + 5*math.Sin(math.Pi*float64(hour-DayStart)/12)
		light = 800 * math.Sin(math.Pi*float64(hour-DayStart)/12)
		if light < 0 {
			light = 0
		}
	case hour < DayStart:
		temperature = 20 - 5*math.Sin(math.Pi*float64(hour)/12)
	default: // hour > DayEnd
		temperature = 20 - 5*math.Sin(math.Pi*float64(hour-DayEnd)/6)
	}
	return temperature, light
}

// IsDaytime reports whether the hour falls in the daytime window.
func IsDaytime(hour int) bool {
	return hour >= DayStart && hour <= DayEnd
}
