package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/supplyflow/pkg/application/dto"
	"github.com/vsinha/supplyflow/pkg/application/services/allocation"
	"github.com/vsinha/supplyflow/pkg/application/services/ranking"
	"github.com/vsinha/supplyflow/pkg/application/services/scoring"
	"github.com/vsinha/supplyflow/pkg/domain/entities"
	"github.com/vsinha/supplyflow/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/supplyflow/pkg/milp"
	"github.com/vsinha/supplyflow/pkg/topology"
)

func main() {
	ctx := context.Background()

	// Build a small supply network in memory
	store := memory.NewReferenceStore()
	if err := setupSupplyNetwork(store); err != nil {
		fmt.Printf("❌ Failed to load network: %v\n", err)
		return
	}

	optimizer := allocation.NewOptimizer(store, milp.NewBranchBound(), zap.NewNop(), allocation.Config{
		TimeLimit:    30 * time.Second,
		NoiseEpsilon: 0.5,
	})

	// Ask for 2,000 units of consumer audio gear delivered to the US
	req := dto.SolveRequest{
		Category:    "CAT01",
		Destination: "US",
		Volume:      2000,
		Weights:     scoring.Weights{Cost: 8, Time: 5, Region: 3},
		MinBatch:    500,
	}

	fmt.Println("🚀 Solving allocation for the US market...")
	fmt.Printf("Demand: %d units of %s to %s\n", req.Volume, req.Category, req.Destination)
	fmt.Printf("Weights: cost=%.0f time=%.0f region=%.0f | Min batch: %d units\n",
		req.Weights.Cost, req.Weights.Time, req.Weights.Region, req.MinBatch)
	fmt.Println()

	result, err := optimizer.Solve(ctx, req)
	if err != nil {
		fmt.Printf("❌ Solve failed: %v\n", err)
		return
	}

	// Display results
	fmt.Println("📊 Allocation Results:")
	fmt.Printf("  Status: %s\n", result.Status)
	fmt.Printf("  Allocated: %d units across %d flows\n", result.TotalUnits, len(result.Allocations))
	fmt.Printf("  Total landed cost: $%s\n", result.TotalCost.StringFixed(2))
	fmt.Println()

	if len(result.Allocations) > 0 {
		fmt.Println("📦 Chosen flows:")
		for _, entry := range result.Allocations {
			fmt.Printf("  %s via %s: %d units at $%.2f/unit (score %.3f)\n",
				entry.Factory, entry.Hub, entry.Units, entry.CostPerUnit, entry.Score)
		}
		fmt.Println()
	}

	// Rank the routes the optimizer passed over
	ranked, err := ranking.NewRanker(store).Rank(result, true)
	if err != nil {
		fmt.Printf("❌ Ranking failed: %v\n", err)
		return
	}

	if len(ranked.Alternatives) > 0 {
		fmt.Println("🔄 Runner-up routes:")
		for _, alt := range ranked.Alternatives {
			fmt.Printf("  #%d %s via %s: $%.2f/unit, %d days in transit (score %.3f)\n",
				alt.Rank, alt.FactoryName, alt.HubName, alt.CostPerUnit, alt.TransitDays, alt.Score)
		}
		fmt.Println()
	}

	if len(ranked.OtherOrigins) > 0 {
		fmt.Println("🌐 Remaining origins:")
		for _, origin := range ranked.OtherOrigins {
			fmt.Printf("  %s (%s): %s\n", origin.FactoryName, origin.FactoryCountry, origin.Status)
		}
		fmt.Println()
	}

	// Inspect the network topology behind the solve
	graph, err := topology.Build(store)
	if err != nil {
		fmt.Printf("❌ Graph build failed: %v\n", err)
		return
	}

	diversity, err := graph.SupplyDiversity("US", nil)
	if err != nil {
		fmt.Printf("❌ Diversity query failed: %v\n", err)
		return
	}

	fmt.Println("🌍 Supply diversity for US:")
	for region, count := range diversity {
		fmt.Printf("  %s: %d factories\n", region, count)
	}
	fmt.Println()

	fmt.Println("✅ Allocation analysis complete!")
}

func setupSupplyNetwork(store *memory.ReferenceStore) error {
	if err := store.LoadRegions([]entities.Region{
		{ID: "SEA", Name: "Southeast Asia"},
		{ID: "NEA", Name: "Northeast Asia"},
		{ID: "NAM", Name: "North America"},
	}); err != nil {
		return err
	}

	if err := store.LoadCountries([]entities.Country{
		{Code: "VN", Name: "Vietnam", Region: "SEA"},
		{Code: "CN", Name: "China", Region: "NEA"},
		{Code: "MX", Name: "Mexico", Region: "NAM"},
		{Code: "US", Name: "United States", Region: "NAM"},
	}); err != nil {
		return err
	}

	if err := store.LoadFactories([]entities.Factory{
		{ID: "F_VN_01", Name: "Hanoi Plant", City: "Hanoi", Country: "VN", Region: "SEA", CostMultiplier: 0.95},
		{ID: "F_CN_01", Name: "Shenzhen Plant", City: "Shenzhen", Country: "CN", Region: "NEA", CostMultiplier: 0.88},
		{ID: "F_MX_01", Name: "Monterrey Plant", City: "Monterrey", Country: "MX", Region: "NAM", CostMultiplier: 1.10},
	}); err != nil {
		return err
	}

	if err := store.LoadHubs([]entities.Hub{
		{ID: "H_US_01", Name: "Dallas Gateway", City: "Dallas", Country: "US", Region: "NAM", MonthlyThroughput: 5000},
		{ID: "H_MX_01", Name: "Monterrey Crossdock", City: "Monterrey", Country: "MX", Region: "NAM", MonthlyThroughput: 3000},
	}); err != nil {
		return err
	}

	if err := store.LoadCategories([]entities.Category{
		{ID: "CAT01", Name: "Consumer Audio", Urgency: 2, BaseUnitCost: 100, UnitWeightKg: 0.5},
	}); err != nil {
		return err
	}

	if err := store.LoadProducts([]entities.Product{
		{ID: "P001", Name: "Wireless Earbuds", Category: "CAT01", PriceTier: "mid", Regions: []entities.RegionID{"NAM"}},
	}); err != nil {
		return err
	}

	if err := store.LoadCapacities([]entities.CapacityRecord{
		{Factory: "F_VN_01", Category: "CAT01", UnitCost: 95, MonthlyCapacity: 2000},
		{Factory: "F_CN_01", Category: "CAT01", UnitCost: 88, MonthlyCapacity: 2500},
		{Factory: "F_MX_01", Category: "CAT01", UnitCost: 110, MonthlyCapacity: 1500},
	}); err != nil {
		return err
	}

	if err := store.LoadRestrictions([]entities.Restriction{
		{Destination: "US", Restricted: "CN", Kind: entities.MadeIn, Reason: "US-China trade restrictions"},
	}); err != nil {
		return err
	}

	return store.LoadFlows([]entities.Flow{
		{
			Factory: "F_VN_01", Hub: "H_US_01", Destination: "US", Category: "CAT01",
			Cost: entities.CostBreakdown{
				Manufacturing: 95, Transport: 18, HubHandling: 6, LastMile: 12,
				TariffPct: 0.04, TariffAmount: 3.80,
			},
			LandedCost: 134.80, TransitDays: 21, MaxLeadTimeDays: 35,
			LeadTimeFeasible: true,
		},
		{
			Factory: "F_VN_01", Hub: "H_MX_01", Destination: "US", Category: "CAT01",
			Cost: entities.CostBreakdown{
				Manufacturing: 95, Transport: 14, HubHandling: 5, LastMile: 16,
				TariffPct: 0.04, TariffAmount: 3.80,
			},
			LandedCost: 133.80, TransitDays: 24, MaxLeadTimeDays: 35,
			LeadTimeFeasible: true,
		},
		{
			Factory: "F_MX_01", Hub: "H_US_01", Destination: "US", Category: "CAT01",
			Cost: entities.CostBreakdown{
				Manufacturing: 110, Transport: 8, HubHandling: 6, LastMile: 9,
			},
			LandedCost: 133.00, TransitDays: 6, MaxLeadTimeDays: 35,
			LeadTimeFeasible: true,
		},
		{
			Factory: "F_CN_01", Hub: "H_US_01", Destination: "US", Category: "CAT01",
			Cost: entities.CostBreakdown{
				Manufacturing: 88, Transport: 16, HubHandling: 6, LastMile: 12,
				TariffPct: 0.25, TariffAmount: 22.00,
			},
			LandedCost: 144.00, TransitDays: 18, MaxLeadTimeDays: 35,
			LeadTimeFeasible: true, Restricted: true,
		},
	})
}
