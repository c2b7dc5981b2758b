package datagen

import (
	"reflect"
	"testing"

	"github.com/vsinha/supplyflow/pkg/domain/entities"
	"github.com/vsinha/supplyflow/pkg/infrastructure/repositories/csv"
)

func TestGenerateDeterministic(t *testing.T) {
	first, err := New(DefaultSeed).Generate()
	if err != nil {
		t.Fatalf("first generate failed: %v", err)
	}
	second, err := New(DefaultSeed).Generate()
	if err != nil {
		t.Fatalf("second generate failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("same seed produced different datasets")
	}

	other := New(7).generateCapacities()
	if reflect.DeepEqual(first.Capacities, other) {
		t.Error("different seeds produced identical capacity records")
	}
}

func TestGenerateCounts(t *testing.T) {
	ds, err := New(DefaultSeed).Generate()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	counts := []struct {
		table string
		got   int
		want  int
	}{
		{"regions", len(ds.Regions), 6},
		{"countries", len(ds.Countries), 17},
		{"factories", len(ds.Factories), 13},
		{"hubs", len(ds.Hubs), 14},
		{"categories", len(ds.Categories), 10},
		{"products", len(ds.Products), 86},
		{"capacities", len(ds.Capacities), 95},
		{"restrictions", len(ds.Restrictions), 11},
		{"flows", len(ds.Flows), 22610},
	}
	for _, c := range counts {
		if c.got != c.want {
			t.Errorf("%s: got %d rows, want %d", c.table, c.got, c.want)
		}
	}
}

func TestGeneratedFlowsValid(t *testing.T) {
	ds, err := New(DefaultSeed).Generate()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	for i, flow := range ds.Flows {
		if err := flow.Validate(); err != nil {
			t.Fatalf("flow %d (%s via %s to %s): %v", i, flow.Factory, flow.Hub, flow.Destination, err)
		}
		if flow.TransitDays < 3 {
			t.Fatalf("flow %d: transit %d days, shortest route is 2 days transport plus 1 day domestic delivery", i, flow.TransitDays)
		}
		if flow.MaxLeadTimeDays < 10 {
			t.Fatalf("flow %d: max lead time %d days below floor", i, flow.MaxLeadTimeDays)
		}
	}
}

func TestGenerateCapacitiesWithinRange(t *testing.T) {
	ds, err := New(DefaultSeed).Generate()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	countries := make(map[entities.FactoryID]entities.CountryCode)
	for _, f := range ds.Factories {
		countries[f.ID] = f.Country
	}

	for _, rec := range ds.Capacities {
		bounds := capacityRanges[countries[rec.Factory]]
		if rec.MonthlyCapacity < entities.Units(bounds.lo) || rec.MonthlyCapacity > entities.Units(bounds.hi) {
			t.Errorf("%s/%s: capacity %d outside [%d, %d]", rec.Factory, rec.Category, rec.MonthlyCapacity, bounds.lo, bounds.hi)
		}
		if rec.UnitCost <= 0 {
			t.Errorf("%s/%s: unit cost %.2f not positive", rec.Factory, rec.Category, rec.UnitCost)
		}
	}
}

func TestGenerateCoversEveryMarket(t *testing.T) {
	ds, err := New(DefaultSeed).Generate()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	type market struct {
		country  entities.CountryCode
		category entities.CategoryID
	}
	covered := make(map[market]bool)
	for _, flow := range ds.Flows {
		if flow.Feasible() {
			covered[market{flow.Destination, flow.Category}] = true
		}
	}

	for _, c := range ds.Countries {
		for _, cat := range ds.Categories {
			if !covered[market{c.Code, cat.ID}] {
				t.Errorf("%s/%s has no feasible flow", c.Code, cat.ID)
			}
		}
	}
}

func TestGenerateRestrictionFlags(t *testing.T) {
	ds, err := New(DefaultSeed).Generate()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	tests := []struct {
		name        string
		factory     entities.FactoryID
		hub         entities.HubID
		destination entities.CountryCode
		restricted  bool
	}{
		{"chinese factory to US", "F_CN_01", "H_DE_01", "US", true},
		{"chinese hub to US", "F_VN_01", "H_CN_01", "US", true},
		{"US factory to China", "F_US_01", "H_US_01", "CN", true},
		{"vietnamese route to US", "F_VN_01", "H_VN_01", "US", false},
	}

	for _, tt := range tests {
		flow, ok := findFlow(ds.Flows, tt.factory, tt.hub, tt.destination, "CAT01")
		if !ok {
			t.Fatalf("%s: no flow for %s via %s", tt.name, tt.factory, tt.hub)
		}
		if flow.Restricted != tt.restricted {
			t.Errorf("%s: restricted = %v, want %v", tt.name, flow.Restricted, tt.restricted)
		}
	}
}

func TestGenerateTariffs(t *testing.T) {
	ds, err := New(DefaultSeed).Generate()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	domestic, ok := findFlow(ds.Flows, "F_US_01", "H_US_01", "US", "CAT01")
	if !ok {
		t.Fatal("no domestic US flow")
	}
	if domestic.Cost.TariffPct != 0 {
		t.Errorf("domestic tariff = %.2f, want 0", domestic.Cost.TariffPct)
	}

	listed, ok := findFlow(ds.Flows, "F_VN_01", "H_VN_01", "US", "CAT01")
	if !ok {
		t.Fatal("no Vietnam to US flow")
	}
	if listed.Cost.TariffPct != 0.05 {
		t.Errorf("VN to US tariff = %.2f, want 0.05", listed.Cost.TariffPct)
	}

	fallback, ok := findFlow(ds.Flows, "F_KR_01", "H_KR_01", "SA", "CAT01")
	if !ok {
		t.Fatal("no Korea to Saudi Arabia flow")
	}
	if fallback.Cost.TariffPct != defaultTariff {
		t.Errorf("KR to SA tariff = %.2f, want default %.2f", fallback.Cost.TariffPct, defaultTariff)
	}
}

func TestGeneratedDatasetRoundTrip(t *testing.T) {
	ds, err := New(DefaultSeed).Generate()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	dir := t.TempDir()
	if err := csv.NewWriter().WriteDirectory(dir, ds); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	store, err := csv.NewLoader().LoadDirectory(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	factories, err := store.GetAllFactories()
	if err != nil {
		t.Fatalf("GetAllFactories failed: %v", err)
	}
	if len(factories) != 13 {
		t.Errorf("got %d factories after round trip, want 13", len(factories))
	}

	flows, err := store.FeasibleFlows("CAT01", "US")
	if err != nil {
		t.Fatalf("FeasibleFlows failed: %v", err)
	}
	if len(flows) == 0 {
		t.Error("no feasible CAT01 flows to US after round trip")
	}
}

func findFlow(flows []entities.Flow, factory entities.FactoryID, hub entities.HubID, destination entities.CountryCode, category entities.CategoryID) (entities.Flow, bool) {
	for _, f := range flows {
		if f.Factory == factory && f.Hub == hub && f.Destination == destination && f.Category == category {
			return f, true
		}
	}
	return entities.Flow{}, false
}
