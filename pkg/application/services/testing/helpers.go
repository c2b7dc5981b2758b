package testing

import (
	"github.com/vsinha/supplyflow/pkg/domain/entities"
	"github.com/vsinha/supplyflow/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/supplyflow/pkg/infrastructure/repositories/memory"
)

// BuildSupplyNetworkFixture builds a small hand-computed network used across
// the service tests:
//
//	regions   NAM, NEA, SEA
//	countries US, MX (NAM), CN (NEA), VN, IN (SEA)
//	factories F_CN_01, F_VN_01, F_IN_01, F_MX_01, F_US_01
//	hubs      H_CN_01 (1500), H_VN_01 (2500), H_US_01 (3000)
//	rules     US blocks CN MADE_IN and CN ROUTED_THROUGH
//
// CAT01→US has five feasible flows (factories VN, IN, MX), two restricted CN
// flows, and two lead-time-infeasible flows (MX via VN hub, US via VN hub).
// CAT01 capacities: CN 3000, VN 1800, IN 1200, MX 900, US 700, so the
// feasible-set capacity is 3900 while the catalog capacity is 4600.
func BuildSupplyNetworkFixture() *memory.ReferenceStore {
	ds := BuildSupplyNetworkDataset()
	store := memory.NewReferenceStore()

	mustLoad(store.LoadRegions(ds.Regions))
	mustLoad(store.LoadCountries(ds.Countries))
	mustLoad(store.LoadFactories(ds.Factories))
	mustLoad(store.LoadHubs(ds.Hubs))
	mustLoad(store.LoadCategories(ds.Categories))
	mustLoad(store.LoadProducts(ds.Products))
	mustLoad(store.LoadCapacities(ds.Capacities))
	mustLoad(store.LoadRestrictions(ds.Restrictions))
	mustLoad(store.LoadFlows(ds.Flows))

	return store
}

// BuildSupplyNetworkDataset returns the same network as the raw table set,
// for tests that write a dataset to disk and load it back through the CSV
// layer.
func BuildSupplyNetworkDataset() *csv.Dataset {
	return &csv.Dataset{
		Regions: []entities.Region{
			{ID: "NAM", Name: "North America"},
			{ID: "NEA", Name: "Northeast Asia"},
			{ID: "SEA", Name: "Southeast Asia"},
		},
		Countries: []entities.Country{
			{Code: "US", Name: "United States", Region: "NAM"},
			{Code: "MX", Name: "Mexico", Region: "NAM"},
			{Code: "CN", Name: "China", Region: "NEA"},
			{Code: "VN", Name: "Vietnam", Region: "SEA"},
			{Code: "IN", Name: "India", Region: "SEA"},
		},
		Factories: []entities.Factory{
			{ID: "F_CN_01", Name: "Shenzhen Plant", City: "Shenzhen", Country: "CN", Region: "NEA", CostMultiplier: 1.00},
			{ID: "F_VN_01", Name: "Hanoi Plant", City: "Hanoi", Country: "VN", Region: "SEA", CostMultiplier: 1.02},
			{ID: "F_IN_01", Name: "Chennai Plant", City: "Chennai", Country: "IN", Region: "SEA", CostMultiplier: 1.01},
			{ID: "F_MX_01", Name: "Monterrey Plant", City: "Monterrey", Country: "MX", Region: "NAM", CostMultiplier: 1.056},
			{ID: "F_US_01", Name: "Austin Plant", City: "Austin", Country: "US", Region: "NAM", CostMultiplier: 1.08},
		},
		Hubs: []entities.Hub{
			{ID: "H_CN_01", Name: "Shanghai Hub", City: "Shanghai", Country: "CN", Region: "NEA", MonthlyThroughput: 1500},
			{ID: "H_VN_01", Name: "Ho Chi Minh Hub", City: "Ho Chi Minh City", Country: "VN", Region: "SEA", MonthlyThroughput: 2500},
			{ID: "H_US_01", Name: "Memphis Hub", City: "Memphis", Country: "US", Region: "NAM", MonthlyThroughput: 3000},
		},
		Categories: []entities.Category{
			{ID: "CAT01", Name: "Smartphones", Urgency: 1, BaseUnitCost: 250.00, UnitWeightKg: 0.22},
			{ID: "CAT02", Name: "Tablets", Urgency: 2, BaseUnitCost: 420.00, UnitWeightKg: 0.45},
		},
		Products: []entities.Product{
			{ID: "P_0001", Name: "Smartphone Z Flagship", Category: "CAT01", PriceTier: "flagship", Regions: []entities.RegionID{"NAM", "SEA"}},
			{ID: "P_0002", Name: "Tablet Z Standard", Category: "CAT02", PriceTier: "standard", Regions: []entities.RegionID{"NAM"}},
		},
		Capacities: []entities.CapacityRecord{
			{Factory: "F_CN_01", Category: "CAT01", UnitCost: 250.00, MonthlyCapacity: 3000},
			{Factory: "F_VN_01", Category: "CAT01", UnitCost: 255.00, MonthlyCapacity: 1800},
			{Factory: "F_IN_01", Category: "CAT01", UnitCost: 252.50, MonthlyCapacity: 1200},
			{Factory: "F_MX_01", Category: "CAT01", UnitCost: 264.00, MonthlyCapacity: 900},
			{Factory: "F_US_01", Category: "CAT01", UnitCost: 270.00, MonthlyCapacity: 700},
			{Factory: "F_VN_01", Category: "CAT02", UnitCost: 428.40, MonthlyCapacity: 1000},
		},
		Restrictions: []entities.Restriction{
			{Destination: "US", Restricted: "CN", Kind: entities.MadeIn, Reason: "US-China trade restrictions"},
			{Destination: "US", Restricted: "CN", Kind: entities.RoutedThrough, Reason: "US security compliance"},
		},
		Flows: FixtureFlows(),
	}
}

// FixtureFlows returns the raw flow table behind BuildSupplyNetworkFixture,
// in load order. Tests that need a plain flow slice use this directly.
func FixtureFlows() []entities.Flow {
	return []entities.Flow{
		// Restricted: MADE_IN CN (and CN hub on the first).
		flow("F_CN_01", "H_CN_01", "US", "CAT01", 250.00, 4.60, 1.60, 7.50, 0.25, 62.50, 25, 30, true, true),
		flow("F_CN_01", "H_US_01", "US", "CAT01", 250.00, 8.90, 2.35, 4.10, 0.25, 62.50, 15, 30, true, true),
		// Feasible set for CAT01→US.
		flow("F_VN_01", "H_VN_01", "US", "CAT01", 255.00, 6.80, 1.90, 8.20, 0.10, 25.50, 22, 30, true, false),
		flow("F_VN_01", "H_US_01", "US", "CAT01", 255.00, 9.40, 2.35, 4.10, 0.10, 25.50, 18, 30, true, false),
		flow("F_IN_01", "H_VN_01", "US", "CAT01", 252.50, 7.90, 1.90, 8.20, 0.10, 25.25, 26, 30, true, false),
		flow("F_IN_01", "H_US_01", "US", "CAT01", 252.50, 11.60, 2.35, 4.10, 0.10, 25.25, 20, 30, true, false),
		flow("F_MX_01", "H_US_01", "US", "CAT01", 264.00, 5.20, 2.35, 4.10, 0.00, 0.00, 9, 30, true, false),
		// Over the lead-time limit.
		flow("F_MX_01", "H_VN_01", "US", "CAT01", 264.00, 14.30, 1.90, 8.20, 0.00, 0.00, 38, 30, false, false),
		flow("F_US_01", "H_VN_01", "US", "CAT01", 270.00, 13.10, 1.90, 8.20, 0.00, 0.00, 35, 30, false, false),
		// Second category, for cross-category graph aggregation.
		flow("F_VN_01", "H_VN_01", "US", "CAT02", 428.40, 5.10, 1.90, 8.20, 0.10, 42.84, 22, 38, true, false),
	}
}

func flow(factory entities.FactoryID, hub entities.HubID, dest entities.CountryCode, category entities.CategoryID,
	mfg, transport, handling, lastMile, tariffPct, tariffAmt float64,
	transitDays, maxLeadDays int, leadOK, restricted bool,
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
		Destination:      dest,
		Category:         category,
		Cost:             cost,
		LandedCost:       cost.Total(),
		TransitDays:      transitDays,
		MaxLeadTimeDays:  maxLeadDays,
		LeadTimeFeasible: leadOK,
		Restricted:       restricted,
	}
}

func mustLoad(err error) {
	if err != nil {
		panic(err)
	}
}
