// Package logistics derives order fulfillment state from elapsed time.
// There is no stored status to keep in sync: every evaluation recomputes
// the stage, progress and event log from (createdAt, now) alone.
package logistics

import (
	"time"

	"greenchain/internal/models"
)

// StageEvent is one entry in an order's fulfillment event log. Its
// timestamp is the fixed threshold offset from order creation, not the
// time the evaluation happened to run.
type StageEvent struct {
	Timestamp time.Time         `json:"timestamp"`
	Stage     models.OrderStage `json:"stage"`
	Message   string            `json:"message"`
}

// StageEvaluation is the derived view of an order's fulfillment at a point
// in time. It is recomputed on demand and never persisted.
type StageEvaluation struct {
	Stage    models.OrderStage `json:"stage"`
	Progress float64           `json:"progress"`
	Events   []StageEvent      `json:"events"`
}

// One threshold per hour of elapsed time; the last stage absorbs everything
// from four hours onward.
var stages = []struct {
	stage    models.OrderStage
	progress float64
	message  string
}{
	{models.StageConfirmed, 0.2, "order confirmed, preparing"},
	{models.StageHarvested, 0.4, "harvest complete"},
	{models.StageSorted, 0.6, "sorted, out for delivery"},
	{models.StageAtStation, 0.8, "arrived at delivery station"},
	{models.StageDelivered, 1.0, "delivered"},
}

// Evaluate returns the fulfillment state of an order created at createdAt
// as of now. An evaluation time before creation is clamped to zero elapsed
// time rather than treated as an error, tolerating clock skew. For a fixed
// createdAt the result is monotone in now: progress never decreases and the
// event log only ever gains trailing entries.
func Evaluate(createdAt, now time.Time) StageEvaluation {
	elapsed := now.Sub(createdAt)
	if elapsed < 0 {
		elapsed = 0
	}

	crossed := int(elapsed / time.Hour)
	if crossed > len(stages)-1 {
		crossed = len(stages) - 1
	}

	events := make([]StageEvent, 0, crossed+1)
	for i := 0; i <= crossed; i++ {
		events = append(events, StageEvent{
			Timestamp: createdAt.Add(time.Duration(i) * time.Hour),
			Stage:     stages[i].stage,
			Message:   stages[i].message,
		})
	}

	return StageEvaluation{
		Stage:    stages[crossed].stage,
		Progress: stages[crossed].progress,
		Events:   events,
	}
}

// StageIndex returns the position of a stage in fulfillment order, or -1
// for an unknown stage. Useful for comparing evaluations.
func StageIndex(stage models.OrderStage) int {
	for i, s := range stages {
		if s.stage == stage {
			return i
		}
	}
	return -1
}
