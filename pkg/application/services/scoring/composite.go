// Package scoring computes the composite flow score shared by the allocation
// optimizer and the result ranker. Both must rank candidates through this one
// implementation; a second copy would make "why wasn't the better-looking
// alternative chosen" unanswerable.
package scoring

import (
	"fmt"

	"github.com/vsinha/supplyflow/pkg/domain/entities"
)

// Weights blend landed cost, transit time and regional proximity into one
// score. Non-negative, with a positive sum.
type Weights struct {
	Cost   float64 `json:"cost" yaml:"cost"`
	Time   float64 `json:"time" yaml:"time"`
	Region float64 `json:"region" yaml:"region"`
}

// DefaultWeights returns the standard cost-leaning blend
func DefaultWeights() Weights {
	return Weights{Cost: 8, Time: 5, Region: 3}
}

// Validate checks the weight triple
func (w Weights) Validate() error {
	if w.Cost < 0 || w.Time < 0 || w.Region < 0 {
		return fmt.Errorf("scoring: weights must be non-negative, got cost=%g time=%g region=%g", w.Cost, w.Time, w.Region)
	}
	if w.Cost+w.Time+w.Region <= 0 {
		return fmt.Errorf("scoring: weight sum must be positive")
	}
	return nil
}

// RegionLookup resolves region membership for the proximity penalty
type RegionLookup interface {
	FactoryRegion(id entities.FactoryID) (entities.RegionID, bool)
	HubRegion(id entities.HubID) (entities.RegionID, bool)
	CountryRegion(code entities.CountryCode) (entities.RegionID, bool)
}

// ScoredFlow pairs a flow with its composite score
type ScoredFlow struct {
	Flow  entities.Flow
	Score float64
}

// Score returns the composite score per flow, aligned with the input slice.
// Scores live in [0,1], lower is better, and are relative to this candidate
// set: each cost and time value is min-max normalized across the set, and a
// dimension with no spread contributes 0 for every flow. The regional
// proximity penalty is 0 when the factory shares the destination's region,
// 0.5 when only the hub does, 1 otherwise.
func Score(flows []entities.Flow, regions RegionLookup, destination entities.CountryCode, w Weights) ([]float64, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if len(flows) == 0 {
		return []float64{}, nil
	}

	minCost, maxCost := flows[0].LandedCost, flows[0].LandedCost
	minDays, maxDays := flows[0].TransitDays, flows[0].TransitDays
	for _, f := range flows[1:] {
		if f.LandedCost < minCost {
			minCost = f.LandedCost
		}
		if f.LandedCost > maxCost {
			maxCost = f.LandedCost
		}
		if f.TransitDays < minDays {
			minDays = f.TransitDays
		}
		if f.TransitDays > maxDays {
			maxDays = f.TransitDays
		}
	}
	costSpan := maxCost - minCost
	daySpan := float64(maxDays - minDays)

	destRegion, destOK := regions.CountryRegion(destination)
	total := w.Cost + w.Time + w.Region

	scores := make([]float64, len(flows))
	for i, f := range flows {
		var costNorm, timeNorm float64
		if costSpan > 0 {
			costNorm = (f.LandedCost - minCost) / costSpan
		}
		if daySpan > 0 {
			timeNorm = float64(f.TransitDays-minDays) / daySpan
		}

		penalty := 1.0
		if destOK {
			if fr, ok := regions.FactoryRegion(f.Factory); ok && fr == destRegion {
				penalty = 0.0
			} else if hr, ok := regions.HubRegion(f.Hub); ok && hr == destRegion {
				penalty = 0.5
			}
		}

		scores[i] = (w.Cost*costNorm + w.Time*timeNorm + w.Region*penalty) / total
	}

	return scores, nil
}

// ScoreFlows returns flows paired with their scores, preserving input order
func ScoreFlows(flows []entities.Flow, regions RegionLookup, destination entities.CountryCode, w Weights) ([]ScoredFlow, error) {
	scores, err := Score(flows, regions, destination, w)
	if err != nil {
		return nil, err
	}
	scored := make([]ScoredFlow, len(flows))
	for i, f := range flows {
		scored[i] = ScoredFlow{Flow: f, Score: scores[i]}
	}
	return scored, nil
}
