// Package trace simulates the platform's slow external lookups: blockchain
// provenance queries, order submission confirmations and nutrition plan
// generation. The backends never fail, but every call observes its context,
// so cancellation and timeout policies stay well-defined instead of hiding
// behind unconditional sleeps.
package trace

import (
	"context"
	"fmt"
	"time"

	"greenchain/internal/models"
)

// Record is the canned provenance result for a catalog product.
type Record struct {
	Product     string  `json:"product"`
	PlantedOn   string  `json:"planted_on"`
	HarvestedOn string  `json:"harvested_on"`
	Inspection  string  `json:"inspection"`
	CarbonKg    float64 `json:"carbon_kg"`
	BlockHeight int     `json:"block_height"`
	TxHash      string  `json:"tx_hash"`
}

// Plan is a simulated nutrition recommendation.
type Plan struct {
	Goal        string   `json:"goal"`
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions"`
}

// Service performs simulated lookups with a fixed artificial latency.
type Service struct {
	latency time.Duration
}

// NewService creates a service with the given simulated latency per call.
func NewService(latency time.Duration) *Service {
	return &Service{latency: latency}
}

// Provenance looks up the simulated on-chain history of a product. It
// returns ctx.Err() if the context ends before the simulated latency does.
func (s *Service) Provenance(ctx context.Context, product models.Product) (Record, error) {
	if err := s.wait(ctx); err != nil {
		return Record{}, fmt.Errorf("trace %q: %w", product.Name, err)
	}

	return Record{
		Product:     product.Name,
		PlantedOn:   "2025-01-15",
		HarvestedOn: "2025-03-10",
		Inspection:  "no pesticide residue detected",
		CarbonKg:    product.CarbonKg,
		BlockHeight: 7654321,
		TxHash:      "0x8f7e6d5c4b3a2910",
	}, nil
}

// ConfirmSubmission models the processing delay of handing an order to the
// fulfillment backend.
func (s *Service) ConfirmSubmission(ctx context.Context) error {
	if err := s.wait(ctx); err != nil {
		return fmt.Errorf("confirm submission: %w", err)
	}
	return nil
}

// NutritionPlan returns a canned recommendation for a dietary goal. The
// original platform presents this as AI output; it is a fixed lookup with
// simulated processing time.
func (s *Service) NutritionPlan(ctx context.Context, goal string) (Plan, error) {
	if err := s.wait(ctx); err != nil {
		return Plan{}, fmt.Errorf("nutrition plan: %w", err)
	}

	plan, ok := plans[goal]
	if !ok {
		plan = plans["balanced"]
		plan.Goal = goal
	}
	return plan, nil
}

func (s *Service) wait(ctx context.Context) error {
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var plans = map[string]Plan{
	"balanced": {
		Goal:    "balanced",
		Summary: "A weekly box balancing leafy greens, root vegetables and lean produce.",
		Suggestions: []string{
			"organic cabbage twice a week",
			"vine tomatoes for daily salads",
			"mountain carrots as a vitamin A staple",
		},
	},
	"low_carb": {
		Goal:    "low_carb",
		Summary: "Swaps starchy staples for fibrous vegetables.",
		Suggestions: []string{
			"purple eggplant as the main side",
			"fresh chili peppers for flavor without sugar",
			"halve the new potatoes portion",
		},
	},
	"family": {
		Goal:    "family",
		Summary: "Larger portions of mild, kid-friendly produce.",
		Suggestions: []string{
			"double portion of new potatoes",
			"vine tomatoes for lunchboxes",
			"organic cabbage for weekend soups",
		},
	},
}
