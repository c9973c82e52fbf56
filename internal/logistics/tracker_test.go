package logistics

import (
	"testing"
	"time"

	"greenchain/internal/models"
)

var created = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestEvaluateStages(t *testing.T) {
	cases := []struct {
		name         string
		elapsed      time.Duration
		wantStage    models.OrderStage
		wantProgress float64
		wantEvents   int
	}{
		{"just created", 0, models.StageConfirmed, 0.2, 1},
		{"half hour", 30 * time.Minute, models.StageConfirmed, 0.2, 1},
		{"ninety minutes", 90 * time.Minute, models.StageHarvested, 0.4, 2},
		{"two and a half hours", 150 * time.Minute, models.StageSorted, 0.6, 3},
		{"three and a half hours", 210 * time.Minute, models.StageAtStation, 0.8, 4},
		{"five hours", 5 * time.Hour, models.StageDelivered, 1.0, 5},
		{"two days", 48 * time.Hour, models.StageDelivered, 1.0, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			eval := Evaluate(created, created.Add(tc.elapsed))

			if eval.Stage != tc.wantStage {
				t.Errorf("Evaluate() stage = %v, want %v", eval.Stage, tc.wantStage)
			}
			if eval.Progress != tc.wantProgress {
				t.Errorf("Evaluate() progress = %v, want %v", eval.Progress, tc.wantProgress)
			}
			if len(eval.Events) != tc.wantEvents {
				t.Errorf("Evaluate() event log length = %d, want %d", len(eval.Events), tc.wantEvents)
			}
		})
	}
}

func TestEvaluateClockSkew(t *testing.T) {
	// Evaluation before creation clamps to zero elapsed time.
	eval := Evaluate(created, created.Add(-10*time.Minute))

	if eval.Stage != models.StageConfirmed {
		t.Errorf("Evaluate() stage = %v, want %v", eval.Stage, models.StageConfirmed)
	}
	if eval.Progress != 0.2 {
		t.Errorf("Evaluate() progress = %v, want 0.2", eval.Progress)
	}
	if len(eval.Events) != 1 {
		t.Errorf("Evaluate() event log length = %d, want 1", len(eval.Events))
	}
}

func TestEvaluateEventTimestamps(t *testing.T) {
	// Events carry the fixed threshold offsets, not the evaluation time.
	eval := Evaluate(created, created.Add(5*time.Hour))

	for i, event := range eval.Events {
		want := created.Add(time.Duration(i) * time.Hour)
		if !event.Timestamp.Equal(want) {
			t.Errorf("event %d timestamp = %v, want %v", i, event.Timestamp, want)
		}
	}
	if eval.Events[0].Message != "order confirmed, preparing" {
		t.Errorf("first event message = %q, want %q", eval.Events[0].Message, "order confirmed, preparing")
	}
	if eval.Events[4].Message != "delivered" {
		t.Errorf("last event message = %q, want %q", eval.Events[4].Message, "delivered")
	}
}

func TestEvaluateMonotonic(t *testing.T) {
	prev := Evaluate(created, created)
	for step := time.Duration(0); step <= 6*time.Hour; step += 10 * time.Minute {
		eval := Evaluate(created, created.Add(step))

		if StageIndex(eval.Stage) < StageIndex(prev.Stage) {
			t.Fatalf("stage regressed from %v to %v at elapsed %v", prev.Stage, eval.Stage, step)
		}
		if eval.Progress < prev.Progress {
			t.Fatalf("progress regressed from %v to %v at elapsed %v", prev.Progress, eval.Progress, step)
		}
		prev = eval
	}
}

func TestEvaluatePrefixStable(t *testing.T) {
	// A later evaluation extends the earlier log without rewriting it.
	earlier := Evaluate(created, created.Add(90*time.Minute))
	later := Evaluate(created, created.Add(4*time.Hour))

	if len(later.Events) < len(earlier.Events) {
		t.Fatalf("later log has %d events, earlier has %d", len(later.Events), len(earlier.Events))
	}
	for i, event := range earlier.Events {
		if later.Events[i] != event {
			t.Errorf("event %d changed between evaluations: %+v vs %+v", i, event, later.Events[i])
		}
	}
}

func TestStageIndex(t *testing.T) {
	if got := StageIndex(models.StageConfirmed); got != 0 {
		t.Errorf("StageIndex(confirmed) = %d, want 0", got)
	}
	if got := StageIndex(models.StageDelivered); got != 4 {
		t.Errorf("StageIndex(delivered) = %d, want 4", got)
	}
	if got := StageIndex(models.OrderStage("bogus")); got != -1 {
		t.Errorf("StageIndex(bogus) = %d, want -1", got)
	}
}
