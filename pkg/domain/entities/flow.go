package entities

import (
	"fmt"
	"math"
)

// costSumTolerance bounds the drift allowed between the stored landed cost
// and the sum of its components, each rounded to cents upstream.
const costSumTolerance = 0.05

// CostBreakdown carries the five additive per-unit cost components of a flow.
// TariffPct is informational; TariffAmount is the component that sums.
type CostBreakdown struct {
	Manufacturing float64
	Transport     float64
	HubHandling   float64
	LastMile      float64
	TariffPct     float64
	TariffAmount  float64
}

// Total returns the sum of the five cost components
func (c CostBreakdown) Total() float64 {
	return c.Manufacturing + c.Transport + c.HubHandling + c.LastMile + c.TariffAmount
}

// Flow is one candidate factory→hub→destination route for a product category,
// with precomputed cost and transit attributes. Flows are immutable snapshots
// provided whole by the reference store; nothing downstream mutates them.
type Flow struct {
	Factory     FactoryID
	Hub         HubID
	Destination CountryCode
	Category    CategoryID

	Cost       CostBreakdown
	LandedCost float64

	TransitDays     int
	MaxLeadTimeDays int

	LeadTimeFeasible bool
	Restricted       bool
}

// Feasible reports whether the optimizer may use this flow: it must meet the
// destination's lead-time limit and carry no geopolitical restriction.
func (f Flow) Feasible() bool {
	return f.LeadTimeFeasible && !f.Restricted
}

// Validate checks the flow's structural invariants: non-empty identifiers,
// positive transit days, and cost components that sum to the landed cost
// within rounding tolerance.
func (f Flow) Validate() error {
	if f.Factory == "" || f.Hub == "" || f.Destination == "" || f.Category == "" {
		return fmt.Errorf("flow %s→%s→%s [%s]: all identifiers are required",
			f.Factory, f.Hub, f.Destination, f.Category)
	}
	if f.TransitDays <= 0 {
		return fmt.Errorf("flow %s→%s→%s: transit days must be positive, got %d",
			f.Factory, f.Hub, f.Destination, f.TransitDays)
	}
	if f.LandedCost <= 0 {
		return fmt.Errorf("flow %s→%s→%s: landed cost must be positive, got %g",
			f.Factory, f.Hub, f.Destination, f.LandedCost)
	}
	if diff := math.Abs(f.Cost.Total() - f.LandedCost); diff > costSumTolerance {
		return fmt.Errorf("flow %s→%s→%s: cost components sum to %.4f but landed cost is %.4f",
			f.Factory, f.Hub, f.Destination, f.Cost.Total(), f.LandedCost)
	}

	return nil
}
