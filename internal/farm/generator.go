package farm

import (
	"math/rand"
	"sync"
	"time"

	"greenchain/internal/models"
)

// Generator produces rolling 24-hour telemetry series from the diurnal
// baselines plus bounded noise. It keeps no state between calls beyond its
// random source, so concurrent callers only contend on the source itself.
// Supplying a seeded source makes generation reproducible.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a generator drawing noise from the given source.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Series generates one reading per hour for the 24 hours ending at the
// reference time. Readings are ordered by ascending timestamp and the last
// timestamp equals the reference time.
func (g *Generator) Series(reference time.Time) models.TelemetrySeries {
	g.mu.Lock()
	defer g.mu.Unlock()

	series := make(models.TelemetrySeries, 0, models.SeriesLength)
	for offset := models.SeriesLength - 1; offset >= 0; offset-- {
		ts := reference.Add(-time.Duration(offset) * time.Hour)
		series = append(series, g.reading(ts))
	}
	return series
}

func (g *Generator) reading(ts time.Time) models.TelemetryReading {
	hour := ts.Hour()
	baseTemp, baseLight := Baseline(hour)
	temperature := baseTemp + g.uniform(-1, 1)

	// Humidity is loosely anti-correlated with temperature. The offset term
	// dominates on mild days; the clamp keeps readings in a plausible band.
	humidity := 100 - temperature + g.uniform(40, 50)
	if humidity > 95 {
		humidity = 95
	}
	if humidity < 40 {
		humidity = 40
	}

	var light float64
	if IsDaytime(hour) {
		light = baseLight + g.uniform(-50, 50)
		if light < 0 {
			light = 0
		}
	} else {
		light = g.uniform(0, 10)
	}

	return models.TelemetryReading{
		Timestamp:    ts,
		Temperature:  temperature,
		Humidity:     humidity,
		Light:        light,
		SoilMoisture: 60 + g.uniform(-5, 5),
	}
}

// LastIrrigated picks a plausible most-recent irrigation run within the
// past day, for display alongside the irrigation state.
func (g *Generator) LastIrrigated(now time.Time) time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	hours := 1 + g.rng.Intn(24)
	return now.Add(-time.Duration(hours) * time.Hour)
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*g.rng.Float64()
}
