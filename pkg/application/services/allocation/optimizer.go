// Package allocation turns a sourcing request into a cost-optimal set of
// factory-to-hub shipment quantities. It scores the feasible flows, builds a
// mixed-integer model over them, hands the model to a solver, and converts
// the solver's answer back into whole-unit allocations.
package allocation

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vsinha/supplyflow/pkg/application/dto"
	"github.com/vsinha/supplyflow/pkg/application/services/scoring"
	"github.com/vsinha/supplyflow/pkg/domain/entities"
	"github.com/vsinha/supplyflow/pkg/domain/repositories"
	"github.com/vsinha/supplyflow/pkg/milp"
)

// Config holds the solve-time knobs of the optimizer.
type Config struct {
	// TimeLimit bounds a single engine run. Zero means no limit beyond the
	// caller's context.
	TimeLimit time.Duration

	// NoiseEpsilon is the threshold below which a solver quantity is treated
	// as numerical noise and dropped from the allocation.
	NoiseEpsilon float64
}

// DefaultConfig returns the optimizer settings used when nothing is
// configured explicitly.
func DefaultConfig() Config {
	return Config{
		TimeLimit:    30 * time.Second,
		NoiseEpsilon: 0.5,
	}
}

// Optimizer resolves solve requests against the reference data using a
// mixed-integer solver.
type Optimizer struct {
	store  repositories.ReferenceRepository
	solver milp.Solver
	logger *zap.Logger
	config Config
}

// NewOptimizer creates an optimizer over the given reference data and solver.
// A nil logger disables logging.
func NewOptimizer(store repositories.ReferenceRepository, solver milp.Solver, logger *zap.Logger, config Config) *Optimizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Optimizer{
		store:  store,
		solver: solver,
		logger: logger,
		config: config,
	}
}

// Solve allocates the requested volume across the feasible flows for the
// request's category and destination.
//
// Two conditions are detected before the engine runs: an empty feasible set
// yields StatusNoFeasibleFlows, and a total capacity below the requested
// volume yields StatusInsufficientCapacity. The capacity check sums the
// capacities of the origins actually present in the feasible set, so a
// factory whose flows were all filtered out does not count. Any non-optimal
// outcome carries zero allocations.
func (o *Optimizer) Solve(ctx context.Context, req dto.SolveRequest) (*dto.SolveResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	started := time.Now()

	result := &dto.SolveResult{
		ID:          ulid.Make().String(),
		Category:    req.Category,
		Destination: req.Destination,
		Volume:      req.Volume,
		MinBatch:    req.MinBatch,
		Weights:     req.Weights,
		Status:      dto.StatusNotSolved,
	}

	flows, err := o.store.FeasibleFlows(req.Category, req.Destination)
	if err != nil {
		return nil, fmt.Errorf("allocation: loading feasible flows: %w", err)
	}

	if len(flows) == 0 {
		result.Status = dto.StatusNoFeasibleFlows
		o.finish(result, started)
		return result, nil
	}

	scored, err := scoring.ScoreFlows(flows, o.store, req.Destination, req.Weights)
	if err != nil {
		return nil, fmt.Errorf("allocation: scoring flows: %w", err)
	}
	result.Feasible = scored

	capacities, err := o.store.FactoryCapacities(req.Category)
	if err != nil {
		return nil, fmt.Errorf("allocation: loading capacities: %w", err)
	}
	throughputs, err := o.store.HubThroughputs()
	if err != nil {
		return nil, fmt.Errorf("allocation: loading hub throughputs: %w", err)
	}

	if available := feasibleCapacity(scored, capacities); available < req.Volume {
		o.logger.Info("solve short on capacity",
			zap.String("category", string(req.Category)),
			zap.String("destination", string(req.Destination)),
			zap.Int64("volume", int64(req.Volume)),
			zap.Int64("available", int64(available)))
		result.Status = dto.StatusInsufficientCapacity
		o.finish(result, started)
		return result, nil
	}

	model, vars := buildModel(scored, capacities, throughputs, req.Volume, req.MinBatch)

	solveCtx := ctx
	if o.config.TimeLimit > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, o.config.TimeLimit)
		defer cancel()
	}

	solution, err := o.solver.Solve(solveCtx, model)
	if err != nil {
		return nil, fmt.Errorf("allocation: engine: %w", err)
	}

	switch solution.Status {
	case milp.StatusOptimal:
		result.Status = dto.StatusOptimal
		result.Allocations = o.extract(scored, vars, solution, capacities, throughputs, req.Volume, req.MinBatch)
	case milp.StatusTimeLimit:
		result.Status = dto.StatusSolverTimeout
	default:
		result.Status = dto.StatusSolverNonOptimal
	}

	o.finish(result, started)
	o.logger.Info("solve finished",
		zap.String("solve_id", result.ID),
		zap.String("category", string(req.Category)),
		zap.String("destination", string(req.Destination)),
		zap.String("status", result.Status.String()),
		zap.Int("allocations", len(result.Allocations)),
		zap.Int64("duration_ms", result.DurationMs))
	return result, nil
}

func (o *Optimizer) finish(result *dto.SolveResult, started time.Time) {
	total := decimal.Zero
	var units entities.Units
	for _, a := range result.Allocations {
		total = total.Add(a.TotalCost)
		units += a.Units
	}
	result.TotalUnits = units
	result.TotalCost = total
	result.DurationMs = time.Since(started).Milliseconds()
}

// feasibleCapacity sums capacity over the distinct origins present in the
// scored flow set.
func feasibleCapacity(scored []scoring.ScoredFlow, capacities map[entities.FactoryID]entities.Units) entities.Units {
	seen := make(map[entities.FactoryID]bool, len(scored))
	var total entities.Units
	for _, sf := range scored {
		if seen[sf.Flow.Factory] {
			continue
		}
		seen[sf.Flow.Factory] = true
		total += capacities[sf.Flow.Factory]
	}
	return total
}

type allocationDraft struct {
	flowIdx int
	units   entities.Units
}

// extract converts the solver's continuous quantities into whole-unit
// allocation entries: quantities at or below the noise threshold are
// dropped, the rest are rounded to the nearest unit, and any drift between
// the rounded total and the requested volume is reconciled against entries
// that still have capacity headroom.
func (o *Optimizer) extract(
	scored []scoring.ScoredFlow,
	vars variableIndex,
	solution milp.Solution,
	capacities map[entities.FactoryID]entities.Units,
	throughputs map[entities.HubID]entities.Units,
	volume, minBatch entities.Units,
) []dto.AllocationEntry {
	var drafts []allocationDraft
	for i := range scored {
		qty := solution.Values[vars.quantity[i]]
		if qty <= o.config.NoiseEpsilon {
			continue
		}
		units := entities.Units(math.Round(qty))
		if units <= 0 {
			continue
		}
		drafts = append(drafts, allocationDraft{flowIdx: i, units: units})
	}

	o.reconcile(drafts, scored, capacities, throughputs, volume, minBatch)

	sort.SliceStable(drafts, func(a, b int) bool {
		if drafts[a].units != drafts[b].units {
			return drafts[a].units > drafts[b].units
		}
		fa, fb := scored[drafts[a].flowIdx].Flow, scored[drafts[b].flowIdx].Flow
		if fa.Factory != fb.Factory {
			return fa.Factory < fb.Factory
		}
		return fa.Hub < fb.Hub
	})

	entries := make([]dto.AllocationEntry, 0, len(drafts))
	for _, d := range drafts {
		sf := scored[d.flowIdx]
		unitCost := decimal.NewFromFloat(sf.Flow.LandedCost)
		entries = append(entries, dto.AllocationEntry{
			Factory:     sf.Flow.Factory,
			Hub:         sf.Flow.Hub,
			Destination: sf.Flow.Destination,
			Units:       d.units,
			CostPerUnit: sf.Flow.LandedCost,
			Score:       sf.Score,
			TotalCost:   unitCost.Mul(decimal.NewFromInt(int64(d.units))).Round(2),
			Breakdown:   dto.NewCostBreakdown(sf.Flow.Cost),
			TransitDays: sf.Flow.TransitDays,
		})
	}
	return entries
}

// reconcile absorbs the drift left by per-entry rounding so the allocation
// total lands exactly on the requested volume. Missing units go to the
// entries with the most remaining headroom under their factory capacity and
// hub throughput, largest entries first. Excess units come off the largest
// entries, never taking one below the minimum batch.
func (o *Optimizer) reconcile(
	drafts []allocationDraft,
	scored []scoring.ScoredFlow,
	capacities map[entities.FactoryID]entities.Units,
	throughputs map[entities.HubID]entities.Units,
	volume, minBatch entities.Units,
) {
	var total entities.Units
	for _, d := range drafts {
		total += d.units
	}
	drift := volume - total
	if drift == 0 || len(drafts) == 0 {
		return
	}

	order := make([]int, len(drafts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return drafts[order[a]].units > drafts[order[b]].units
	})

	if drift > 0 {
		factoryUsed := make(map[entities.FactoryID]entities.Units)
		hubUsed := make(map[entities.HubID]entities.Units)
		for _, d := range drafts {
			flow := scored[d.flowIdx].Flow
			factoryUsed[flow.Factory] += d.units
			hubUsed[flow.Hub] += d.units
		}
		for _, i := range order {
			if drift == 0 {
				break
			}
			flow := scored[drafts[i].flowIdx].Flow
			headroom := capacities[flow.Factory] - factoryUsed[flow.Factory]
			if throughput, ok := throughputs[flow.Hub]; ok {
				if hubRoom := throughput - hubUsed[flow.Hub]; hubRoom < headroom {
					headroom = hubRoom
				}
			}
			if headroom <= 0 {
				continue
			}
			add := drift
			if add > headroom {
				add = headroom
			}
			drafts[i].units += add
			factoryUsed[flow.Factory] += add
			hubUsed[flow.Hub] += add
			drift -= add
		}
	} else {
		floor := minBatch
		if floor < 1 {
			floor = 1
		}
		for _, i := range order {
			if drift == 0 {
				break
			}
			room := drafts[i].units - floor
			if room <= 0 {
				continue
			}
			take := -drift
			if take > room {
				take = room
			}
			drafts[i].units -= take
			drift += take
		}
	}

	if drift != 0 {
		o.logger.Warn("allocation drift not fully reconciled",
			zap.Int64("residual", int64(drift)))
	}
}
