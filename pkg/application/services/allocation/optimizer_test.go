package allocation

import (
	"context"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/supplyflow/pkg/application/dto"
	"github.com/vsinha/supplyflow/pkg/application/services/scoring"
	testhelpers "github.com/vsinha/supplyflow/pkg/application/services/testing"
	"github.com/vsinha/supplyflow/pkg/domain/entities"
	"github.com/vsinha/supplyflow/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/supplyflow/pkg/milp"
)

func newFixtureOptimizer(t *testing.T) *Optimizer {
	t.Helper()
	store := testhelpers.BuildSupplyNetworkFixture()
	return NewOptimizer(store, milp.NewBranchBound(), nil, DefaultConfig())
}

func solveRequest(volume, minBatch entities.Units) dto.SolveRequest {
	return dto.SolveRequest{
		Category:    "CAT01",
		Destination: "US",
		Volume:      volume,
		Weights:     scoring.DefaultWeights(),
		MinBatch:    minBatch,
	}
}

func TestOptimizerSolveOptimal(t *testing.T) {
	opt := newFixtureOptimizer(t)

	result, err := opt.Solve(context.Background(), solveRequest(2000, 500))
	require.NoError(t, err)

	assert.Equal(t, dto.StatusOptimal, result.Status)
	assert.NotEmpty(t, result.ID)
	assert.Len(t, result.Feasible, 5)
	require.Len(t, result.Allocations, 2)

	first := result.Allocations[0]
	assert.Equal(t, entities.FactoryID("F_VN_01"), first.Factory)
	assert.Equal(t, entities.HubID("H_US_01"), first.Hub)
	assert.Equal(t, entities.Units(1100), first.Units)
	assert.InDelta(t, 296.35, first.CostPerUnit, 1e-9)
	assert.Equal(t, 18, first.TransitDays)

	second := result.Allocations[1]
	assert.Equal(t, entities.FactoryID("F_MX_01"), second.Factory)
	assert.Equal(t, entities.HubID("H_US_01"), second.Hub)
	assert.Equal(t, entities.Units(900), second.Units)
	assert.InDelta(t, 275.65, second.CostPerUnit, 1e-9)

	assert.Equal(t, entities.Units(2000), result.TotalUnits)
	assert.True(t, result.TotalCost.Equal(decimal.NewFromInt(574070)),
		"total cost %s", result.TotalCost)
}

func TestOptimizerInsufficientCapacity(t *testing.T) {
	opt := newFixtureOptimizer(t)

	// Feasible-set capacity is 3900: VN 1800 + IN 1200 + MX 900. The CN and
	// US factories hold capacity too, but none of their flows are feasible.
	result, err := opt.Solve(context.Background(), solveRequest(4000, 500))
	require.NoError(t, err)

	assert.Equal(t, dto.StatusInsufficientCapacity, result.Status)
	assert.Empty(t, result.Allocations)
	assert.Equal(t, entities.Units(0), result.TotalUnits)
	assert.True(t, result.TotalCost.IsZero())
}

func TestOptimizerVolumeBelowBatch(t *testing.T) {
	opt := newFixtureOptimizer(t)

	result, err := opt.Solve(context.Background(), solveRequest(300, 500))
	require.NoError(t, err)

	assert.Equal(t, dto.StatusSolverNonOptimal, result.Status)
	assert.Empty(t, result.Allocations)
}

func TestOptimizerNoFeasibleFlows(t *testing.T) {
	opt := newFixtureOptimizer(t)

	req := solveRequest(1000, 500)
	req.Category = "CAT99"
	result, err := opt.Solve(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, dto.StatusNoFeasibleFlows, result.Status)
	assert.Empty(t, result.Allocations)
	assert.Empty(t, result.Feasible)
}

func TestOptimizerMinimumBatchForcesSplit(t *testing.T) {
	opt := newFixtureOptimizer(t)

	// A 1000-unit batch floor rules out the Mexican factory (capacity 900)
	// and caps what a single origin can pair with, so the volume splits
	// evenly across the Vietnamese and Indian flows through the US hub.
	result, err := opt.Solve(context.Background(), solveRequest(2000, 1000))
	require.NoError(t, err)

	require.Equal(t, dto.StatusOptimal, result.Status)
	require.Len(t, result.Allocations, 2)
	assert.Equal(t, entities.FactoryID("F_IN_01"), result.Allocations[0].Factory)
	assert.Equal(t, entities.Units(1000), result.Allocations[0].Units)
	assert.Equal(t, entities.FactoryID("F_VN_01"), result.Allocations[1].Factory)
	assert.Equal(t, entities.Units(1000), result.Allocations[1].Units)
}

func TestOptimizerRespectsCapacitiesAcrossWeights(t *testing.T) {
	opt := newFixtureOptimizer(t)
	store := testhelpers.BuildSupplyNetworkFixture()

	capacities, err := store.FactoryCapacities("CAT01")
	require.NoError(t, err)
	throughputs, err := store.HubThroughputs()
	require.NoError(t, err)

	variants := []scoring.Weights{
		scoring.DefaultWeights(),
		{Cost: 1},
		{Time: 1},
		{Cost: 1, Time: 1, Region: 10},
	}
	for _, w := range variants {
		req := solveRequest(2000, 500)
		req.Weights = w
		result, err := opt.Solve(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, dto.StatusOptimal, result.Status)

		factoryTotals := make(map[entities.FactoryID]entities.Units)
		hubTotals := make(map[entities.HubID]entities.Units)
		var total entities.Units
		for _, a := range result.Allocations {
			assert.GreaterOrEqual(t, a.Units, entities.Units(500))
			factoryTotals[a.Factory] += a.Units
			hubTotals[a.Hub] += a.Units
			total += a.Units
		}
		assert.Equal(t, entities.Units(2000), total)
		for f, used := range factoryTotals {
			assert.LessOrEqual(t, used, capacities[f], "factory %s", f)
		}
		for h, used := range hubTotals {
			assert.LessOrEqual(t, used, throughputs[h], "hub %s", h)
		}
	}
}

func TestOptimizerTimeWeightMonotonic(t *testing.T) {
	opt := newFixtureOptimizer(t)

	// Raising the time weight, everything else fixed, must never slow the
	// plan's volume-weighted transit time. With time weight 0 the Indian
	// factory wins the split (15.05 mean days); any real time weight moves
	// the volume onto the faster Vietnamese lane (13.95).
	prev := math.Inf(1)
	for _, tw := range []float64{0, 5, 50} {
		req := solveRequest(2000, 500)
		req.Weights = scoring.Weights{Cost: 8, Time: tw, Region: 3}
		result, err := opt.Solve(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, dto.StatusOptimal, result.Status)

		var unitDays float64
		for _, a := range result.Allocations {
			unitDays += float64(a.Units) * float64(a.TransitDays)
		}
		mean := unitDays / float64(result.TotalUnits)
		assert.LessOrEqual(t, mean, prev+1e-9, "time weight %v", tw)
		prev = mean
	}
	assert.InDelta(t, 13.95, prev, 1e-9)
}

// restrictedWorld builds a network where the destination blocks two
// manufacturing origins (CN and IN made-in rules) and one routing country
// (VN routed-through rule). The Mexican factory holds 2400 units of
// capacity and beats the Thai lane on cost, transit, and region alike, so
// a 2000-unit request lands on it alone.
func restrictedWorld(t *testing.T) *memory.ReferenceStore {
	t.Helper()
	store := memory.NewReferenceStore()

	load := func(err error) {
		t.Helper()
		require.NoError(t, err)
	}
	load(store.LoadRegions([]entities.Region{
		{ID: "NAM", Name: "North America"},
		{ID: "NEA", Name: "Northeast Asia"},
		{ID: "SEA", Name: "Southeast Asia"},
	}))
	load(store.LoadCountries([]entities.Country{
		{Code: "US", Name: "United States", Region: "NAM"},
		{Code: "MX", Name: "Mexico", Region: "NAM"},
		{Code: "CN", Name: "China", Region: "NEA"},
		{Code: "IN", Name: "India", Region: "SEA"},
		{Code: "TH", Name: "Thailand", Region: "SEA"},
		{Code: "VN", Name: "Vietnam", Region: "SEA"},
	}))
	load(store.LoadFactories([]entities.Factory{
		{ID: "F_CN_01", Name: "Shenzhen Plant", City: "Shenzhen", Country: "CN", Region: "NEA", CostMultiplier: 1.00},
		{ID: "F_IN_01", Name: "Chennai Plant", City: "Chennai", Country: "IN", Region: "SEA", CostMultiplier: 1.01},
		{ID: "F_TH_01", Name: "Bangkok Plant", City: "Bangkok", Country: "TH", Region: "SEA", CostMultiplier: 1.008},
		{ID: "F_MX_01", Name: "Monterrey Plant", City: "Monterrey", Country: "MX", Region: "NAM", CostMultiplier: 1.056},
	}))
	load(store.LoadHubs([]entities.Hub{
		{ID: "H_VN_01", Name: "Ho Chi Minh Hub", City: "Ho Chi Minh City", Country: "VN", Region: "SEA", MonthlyThroughput: 2500},
		{ID: "H_US_01", Name: "Memphis Hub", City: "Memphis", Country: "US", Region: "NAM", MonthlyThroughput: 5000},
	}))
	load(store.LoadCategories([]entities.Category{
		{ID: "CAT01", Name: "Smartphones", Urgency: 1, BaseUnitCost: 250.00, UnitWeightKg: 0.22},
	}))
	load(store.LoadCapacities([]entities.CapacityRecord{
		{Factory: "F_CN_01", Category: "CAT01", UnitCost: 250.00, MonthlyCapacity: 3000},
		{Factory: "F_IN_01", Category: "CAT01", UnitCost: 252.50, MonthlyCapacity: 2000},
		{Factory: "F_TH_01", Category: "CAT01", UnitCost: 252.00, MonthlyCapacity: 1500},
		{Factory: "F_MX_01", Category: "CAT01", UnitCost: 264.00, MonthlyCapacity: 2400},
	}))
	load(store.LoadRestrictions([]entities.Restriction{
		{Destination: "US", Restricted: "CN", Kind: entities.MadeIn, Reason: "US-China trade restrictions"},
		{Destination: "US", Restricted: "IN", Kind: entities.MadeIn, Reason: "US-India import quota"},
		{Destination: "US", Restricted: "VN", Kind: entities.RoutedThrough, Reason: "US customs routing rule"},
	}))
	load(store.LoadFlows([]entities.Flow{
		embargoFlow("F_CN_01", "H_US_01", 250.00, 8.90, 2.35, 4.10, 0.25, 62.50, 15, true),
		embargoFlow("F_IN_01", "H_US_01", 252.50, 11.60, 2.35, 4.10, 0.10, 25.25, 20, true),
		embargoFlow("F_TH_01", "H_VN_01", 252.00, 6.90, 1.90, 8.20, 0.10, 25.20, 24, true),
		embargoFlow("F_TH_01", "H_US_01", 252.00, 9.10, 2.35, 4.10, 0.10, 25.20, 19, false),
		embargoFlow("F_MX_01", "H_US_01", 264.00, 5.20, 2.35, 4.10, 0.00, 0.00, 9, false),
	}))
	return store
}

func embargoFlow(factory entities.FactoryID, hub entities.HubID,
	mfg, transport, handling, lastMile, tariffPct, tariffAmt float64,
	transitDays int, restricted bool,
) entities.Flow {
	cost := entities.CostBreakdown{
		Manufacturing: mfg,
		Transport:     transport,
		HubHandling:   handling,
		LastMile:      lastMile,
		TariffPct:     tariffPct,
		TariffAmount:  tariffAmt,
	}
	return entities.Flow{
		Factory:          factory,
		Hub:              hub,
		Destination:      "US",
		Category:         "CAT01",
		Cost:             cost,
		LandedCost:       cost.Total(),
		TransitDays:      transitDays,
		MaxLeadTimeDays:  30,
		LeadTimeFeasible: true,
		Restricted:       restricted,
	}
}

func TestOptimizerRestrictedDestination(t *testing.T) {
	store := restrictedWorld(t)
	opt := NewOptimizer(store, milp.NewBranchBound(), nil, DefaultConfig())

	t.Run("clean origin carries the full volume", func(t *testing.T) {
		result, err := opt.Solve(context.Background(), solveRequest(2000, 500))
		require.NoError(t, err)

		require.Equal(t, dto.StatusOptimal, result.Status)
		require.Len(t, result.Allocations, 1)

		entry := result.Allocations[0]
		assert.Equal(t, entities.FactoryID("F_MX_01"), entry.Factory)
		assert.Equal(t, entities.HubID("H_US_01"), entry.Hub)
		assert.Equal(t, entities.Units(2000), entry.Units)
		assert.InDelta(t, 275.65, entry.CostPerUnit, 1e-9)

		factory, err := store.GetFactory(entry.Factory)
		require.NoError(t, err)
		assert.NotContains(t, []entities.CountryCode{"CN", "IN"}, factory.Country)
		hub, err := store.GetHub(entry.Hub)
		require.NoError(t, err)
		assert.NotEqual(t, entities.CountryCode("VN"), hub.Country)

		assert.True(t, result.TotalCost.Equal(decimal.NewFromInt(551300)),
			"total cost %s", result.TotalCost)
	})

	t.Run("volume beyond total capacity", func(t *testing.T) {
		result, err := opt.Solve(context.Background(), solveRequest(500000, 500))
		require.NoError(t, err)

		assert.Equal(t, dto.StatusInsufficientCapacity, result.Status)
		assert.Empty(t, result.Allocations)
	})
}

func TestOptimizerDeterministic(t *testing.T) {
	opt := newFixtureOptimizer(t)

	first, err := opt.Solve(context.Background(), solveRequest(2000, 500))
	require.NoError(t, err)
	second, err := opt.Solve(context.Background(), solveRequest(2000, 500))
	require.NoError(t, err)

	require.Equal(t, len(first.Allocations), len(second.Allocations))
	for i := range first.Allocations {
		assert.Equal(t, first.Allocations[i].Factory, second.Allocations[i].Factory)
		assert.Equal(t, first.Allocations[i].Hub, second.Allocations[i].Hub)
		assert.Equal(t, first.Allocations[i].Units, second.Allocations[i].Units)
	}
}

func TestOptimizerCancelledContextIsTimeout(t *testing.T) {
	opt := newFixtureOptimizer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := opt.Solve(ctx, solveRequest(2000, 500))
	require.NoError(t, err)
	assert.Equal(t, dto.StatusSolverTimeout, result.Status)
	assert.Empty(t, result.Allocations)
}

func TestOptimizerRejectsBadRequest(t *testing.T) {
	opt := newFixtureOptimizer(t)

	req := solveRequest(0, 500)
	_, err := opt.Solve(context.Background(), req)
	require.Error(t, err)
}

func TestBuildModelShape(t *testing.T) {
	store := testhelpers.BuildSupplyNetworkFixture()
	flows, err := store.FeasibleFlows("CAT01", "US")
	require.NoError(t, err)
	scored, err := scoring.ScoreFlows(flows, store, "US", scoring.DefaultWeights())
	require.NoError(t, err)
	capacities, err := store.FactoryCapacities("CAT01")
	require.NoError(t, err)
	throughputs, err := store.HubThroughputs()
	require.NoError(t, err)

	model, vars := buildModel(scored, capacities, throughputs, 2000, 500)
	require.NoError(t, model.Validate())

	// Five flows from three factories through two hubs: 5 quantities plus
	// 5 binaries, and 1 demand + 3 factory + 2 hub + 10 linking rows.
	assert.Len(t, model.Variables, 10)
	assert.Len(t, model.Constraints, 16)
	assert.Len(t, vars.quantity, 5)

	demand := model.Constraints[0]
	assert.Equal(t, milp.Equal, demand.Sense)
	assert.InDelta(t, 2000, demand.RHS, 1e-12)

	// Without a batch floor the model stays a pure LP.
	lpModel, lpVars := buildModel(scored, capacities, throughputs, 2000, 0)
	require.NoError(t, lpModel.Validate())
	assert.Len(t, lpModel.Variables, 5)
	assert.Len(t, lpModel.Constraints, 6)
	for _, a := range lpVars.active {
		assert.Equal(t, -1, a)
	}
}

func TestReconcileDrift(t *testing.T) {
	opt := NewOptimizer(nil, nil, nil, DefaultConfig())

	scored := []scoring.ScoredFlow{
		{Flow: entities.Flow{Factory: "F_A", Hub: "H_1"}, Score: 0.1},
		{Flow: entities.Flow{Factory: "F_B", Hub: "H_1"}, Score: 0.2},
	}
	capacities := map[entities.FactoryID]entities.Units{"F_A": 1000, "F_B": 600}
	throughputs := map[entities.HubID]entities.Units{"H_1": 5000}

	t.Run("missing units go to headroom", func(t *testing.T) {
		drafts := []allocationDraft{{flowIdx: 0, units: 900}, {flowIdx: 1, units: 600}}
		opt.reconcile(drafts, scored, capacities, throughputs, 1502, 500)
		assert.Equal(t, entities.Units(902), drafts[0].units)
		assert.Equal(t, entities.Units(600), drafts[1].units)
	})

	t.Run("excess units come off the largest entry", func(t *testing.T) {
		drafts := []allocationDraft{{flowIdx: 0, units: 900}, {flowIdx: 1, units: 600}}
		opt.reconcile(drafts, scored, capacities, throughputs, 1498, 500)
		assert.Equal(t, entities.Units(898), drafts[0].units)
		assert.Equal(t, entities.Units(600), drafts[1].units)
	})

	t.Run("removal never breaks the batch floor", func(t *testing.T) {
		drafts := []allocationDraft{{flowIdx: 0, units: 500}, {flowIdx: 1, units: 500}}
		opt.reconcile(drafts, scored, capacities, throughputs, 999, 500)
		assert.Equal(t, entities.Units(500), drafts[0].units)
		assert.Equal(t, entities.Units(500), drafts[1].units)
	})

	t.Run("exact totals are untouched", func(t *testing.T) {
		drafts := []allocationDraft{{flowIdx: 0, units: 900}, {flowIdx: 1, units: 600}}
		opt.reconcile(drafts, scored, capacities, throughputs, 1500, 500)
		assert.Equal(t, entities.Units(900), drafts[0].units)
		assert.Equal(t, entities.Units(600), drafts[1].units)
	})
}
