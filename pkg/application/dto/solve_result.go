package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/supplyflow/pkg/application/services/scoring"
	"github.com/vsinha/supplyflow/pkg/domain/entities"
)

// SolveStatus is the terminal outcome of one allocation solve. Expected
// infeasibility is a status, never an error.
type SolveStatus int

const (
	StatusNotSolved SolveStatus = iota
	StatusOptimal
	StatusNoFeasibleFlows
	StatusInsufficientCapacity
	StatusSolverNonOptimal
	StatusSolverTimeout
)

// String method for SolveStatus enum
func (s SolveStatus) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusNoFeasibleFlows:
		return "NoFeasibleFlows"
	case StatusInsufficientCapacity:
		return "InsufficientCapacity"
	case StatusSolverNonOptimal:
		return "SolverNonOptimal"
	case StatusSolverTimeout:
		return "SolverTimeout"
	default:
		return "NotSolved"
	}
}

// MarshalText encodes the status as its string form
func (s SolveStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status from its string form
func (s *SolveStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "NotSolved":
		*s = StatusNotSolved
	case "Optimal":
		*s = StatusOptimal
	case "NoFeasibleFlows":
		*s = StatusNoFeasibleFlows
	case "InsufficientCapacity":
		*s = StatusInsufficientCapacity
	case "SolverNonOptimal":
		*s = StatusSolverNonOptimal
	case "SolverTimeout":
		*s = StatusSolverTimeout
	default:
		return fmt.Errorf("unknown solve status: %q", text)
	}
	return nil
}

// SolveRequest is one allocation question: move volume units of a category
// to a destination under the given weights and batch floor.
type SolveRequest struct {
	Category    entities.CategoryID  `json:"category_id"`
	Destination entities.CountryCode `json:"destination"`
	Volume      entities.Units       `json:"volume"`
	Weights     scoring.Weights      `json:"weights"`
	MinBatch    entities.Units       `json:"min_batch"`
}

// Validate checks the request shape; a failing request is malformed input
func (r SolveRequest) Validate() error {
	if r.Category == "" {
		return fmt.Errorf("solve request: category is required")
	}
	if r.Destination == "" {
		return fmt.Errorf("solve request: destination is required")
	}
	if r.Volume <= 0 {
		return fmt.Errorf("solve request: volume must be positive, got %d", r.Volume)
	}
	if r.MinBatch < 0 {
		return fmt.Errorf("solve request: min batch must be non-negative, got %d", r.MinBatch)
	}
	return r.Weights.Validate()
}

// CostBreakdown is the per-unit cost decomposition of an allocation entry
type CostBreakdown struct {
	Manufacturing float64 `json:"manufacturing"`
	Transport     float64 `json:"transport"`
	HubHandling   float64 `json:"hub_handling"`
	LastMile      float64 `json:"last_mile"`
	TariffPct     float64 `json:"tariff_pct"`
	TariffAmount  float64 `json:"tariff_amount"`
}

// NewCostBreakdown converts the entity cost form
func NewCostBreakdown(c entities.CostBreakdown) CostBreakdown {
	return CostBreakdown{
		Manufacturing: c.Manufacturing,
		Transport:     c.Transport,
		HubHandling:   c.HubHandling,
		LastMile:      c.LastMile,
		TariffPct:     c.TariffPct,
		TariffAmount:  c.TariffAmount,
	}
}

// AllocationEntry is one flow chosen by the optimizer with its allocated units
type AllocationEntry struct {
	Factory     entities.FactoryID   `json:"factory_id"`
	Hub         entities.HubID       `json:"hub_id"`
	Destination entities.CountryCode `json:"destination"`
	Units       entities.Units       `json:"units"`
	CostPerUnit float64              `json:"cost_per_unit"`
	Score       float64              `json:"score"`
	TotalCost   decimal.Decimal      `json:"total_cost"`
	Breakdown   CostBreakdown        `json:"cost_breakdown"`
	TransitDays int                  `json:"transit_days"`
}

// SolveResult is the terminal outcome of a solve call. Any status other than
// Optimal carries zero allocation entries.
type SolveResult struct {
	ID          string               `json:"solve_id"`
	Category    entities.CategoryID  `json:"category_id"`
	Destination entities.CountryCode `json:"destination"`
	Volume      entities.Units       `json:"requested_volume"`
	MinBatch    entities.Units       `json:"min_batch"`
	Weights     scoring.Weights      `json:"weights"`
	Status      SolveStatus          `json:"status"`
	Allocations []AllocationEntry    `json:"allocations"`
	TotalUnits  entities.Units       `json:"total_units"`
	TotalCost   decimal.Decimal      `json:"total_cost"`
	DurationMs  int64                `json:"duration_ms"`

	// Feasible carries the scored candidate set forward to the ranker; it is
	// plumbing, not part of the wire result.
	Feasible []scoring.ScoredFlow `json:"-"`
}
