package csv

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vsinha/supplyflow/pkg/domain/entities"
)

func fixtureDataset() *Dataset {
	return &Dataset{
		Regions: []entities.Region{
			{ID: "SEA", Name: "Southeast Asia"},
			{ID: "NAM", Name: "North America"},
		},
		Countries: []entities.Country{
			{Code: "VN", Name: "Vietnam", Region: "SEA"},
			{Code: "US", Name: "United States", Region: "NAM"},
		},
		Factories: []entities.Factory{
			{ID: "F_VN_01", Name: "Hanoi Plant", City: "Hanoi", Country: "VN", Region: "SEA", CostMultiplier: 0.38},
			{ID: "F_US_01", Name: "Austin Plant", City: "Austin", Country: "US", Region: "NAM", CostMultiplier: 1},
		},
		Hubs: []entities.Hub{
			{ID: "H_US_01", Name: "Memphis Hub", City: "Memphis", Country: "US", Region: "NAM", MonthlyThroughput: 3000},
		},
		Categories: []entities.Category{
			{ID: "CAT01", Name: "Smartphones", Urgency: 1, BaseUnitCost: 250, UnitWeightKg: 0.22},
		},
		Products: []entities.Product{
			{ID: "P001", Name: "Aurora X1", Category: "CAT01", PriceTier: "premium", Regions: []entities.RegionID{"NAM", "SEA"}},
			{ID: "P002", Name: "Vega Lite", Category: "CAT01", PriceTier: "budget", Regions: []entities.RegionID{"NAM"}},
		},
		Capacities: []entities.CapacityRecord{
			{Factory: "F_VN_01", Category: "CAT01", UnitCost: 95, MonthlyCapacity: 1800},
			{Factory: "F_US_01", Category: "CAT01", UnitCost: 250, MonthlyCapacity: 700},
		},
		Restrictions: []entities.Restriction{
			{Destination: "US", Restricted: "CN", Kind: entities.MadeIn, Reason: "US-China trade restrictions"},
		},
		Flows: []entities.Flow{
			{
				Factory: "F_VN_01", Hub: "H_US_01", Destination: "US", Category: "CAT01",
				Cost: entities.CostBreakdown{
					Manufacturing: 95, Transport: 55, HubHandling: 4.2, LastMile: 8.2,
					TariffPct: 0.25, TariffAmount: 23.75,
				},
				LandedCost: 186.15, TransitDays: 18, MaxLeadTimeDays: 23,
				LeadTimeFeasible: true, Restricted: false,
			},
			{
				Factory: "F_US_01", Hub: "H_US_01", Destination: "US", Category: "CAT01",
				Cost: entities.CostBreakdown{
					Manufacturing: 250, Transport: 6.5, HubHandling: 3.1, LastMile: 1.2,
					TariffPct: 0, TariffAmount: 0,
				},
				LandedCost: 260.8, TransitDays: 4, MaxLeadTimeDays: 23,
				LeadTimeFeasible: true, Restricted: false,
			},
		},
	}
}

func TestDatasetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ds := fixtureDataset()

	if err := NewWriter().WriteDirectory(dir, ds); err != nil {
		t.Fatalf("WriteDirectory failed: %v", err)
	}

	loaded, err := NewLoader().LoadDataset(dir)
	if err != nil {
		t.Fatalf("LoadDataset failed: %v", err)
	}

	if !reflect.DeepEqual(loaded.Regions, ds.Regions) {
		t.Errorf("regions mismatch:\ngot  %+v\nwant %+v", loaded.Regions, ds.Regions)
	}
	if !reflect.DeepEqual(loaded.Countries, ds.Countries) {
		t.Errorf("countries mismatch:\ngot  %+v\nwant %+v", loaded.Countries, ds.Countries)
	}
	if !reflect.DeepEqual(loaded.Factories, ds.Factories) {
		t.Errorf("factories mismatch:\ngot  %+v\nwant %+v", loaded.Factories, ds.Factories)
	}
	if !reflect.DeepEqual(loaded.Hubs, ds.Hubs) {
		t.Errorf("hubs mismatch:\ngot  %+v\nwant %+v", loaded.Hubs, ds.Hubs)
	}
	if !reflect.DeepEqual(loaded.Categories, ds.Categories) {
		t.Errorf("categories mismatch:\ngot  %+v\nwant %+v", loaded.Categories, ds.Categories)
	}
	if !reflect.DeepEqual(loaded.Products, ds.Products) {
		t.Errorf("products mismatch:\ngot  %+v\nwant %+v", loaded.Products, ds.Products)
	}
	if !reflect.DeepEqual(loaded.Capacities, ds.Capacities) {
		t.Errorf("capacities mismatch:\ngot  %+v\nwant %+v", loaded.Capacities, ds.Capacities)
	}
	if !reflect.DeepEqual(loaded.Restrictions, ds.Restrictions) {
		t.Errorf("restrictions mismatch:\ngot  %+v\nwant %+v", loaded.Restrictions, ds.Restrictions)
	}
	if !reflect.DeepEqual(loaded.Flows, ds.Flows) {
		t.Errorf("flows mismatch:\ngot  %+v\nwant %+v", loaded.Flows, ds.Flows)
	}
}

func TestLoadDirectoryBuildsStore(t *testing.T) {
	dir := t.TempDir()
	if err := NewWriter().WriteDirectory(dir, fixtureDataset()); err != nil {
		t.Fatalf("WriteDirectory failed: %v", err)
	}

	store, err := NewLoader().LoadDirectory(dir)
	if err != nil {
		t.Fatalf("LoadDirectory failed: %v", err)
	}

	flows, err := store.FeasibleFlows("CAT01", "US")
	if err != nil {
		t.Fatalf("FeasibleFlows failed: %v", err)
	}
	if len(flows) != 2 {
		t.Errorf("expected 2 feasible flows, got %d", len(flows))
	}

	factory, err := store.GetFactory("F_VN_01")
	if err != nil {
		t.Fatalf("GetFactory failed: %v", err)
	}
	if factory.Name != "Hanoi Plant" {
		t.Errorf("expected factory name Hanoi Plant, got %s", factory.Name)
	}

	capacities, err := store.FactoryCapacities("CAT01")
	if err != nil {
		t.Fatalf("FactoryCapacities failed: %v", err)
	}
	if capacities["F_VN_01"] != 1800 {
		t.Errorf("expected F_VN_01 capacity 1800, got %d", capacities["F_VN_01"])
	}

	restrictions, err := store.GetRestrictionsFor("US")
	if err != nil {
		t.Fatalf("GetRestrictionsFor failed: %v", err)
	}
	if len(restrictions) != 1 {
		t.Errorf("expected 1 restriction for US, got %d", len(restrictions))
	}
}

func TestLoadFactoriesHeaderMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FactoriesFile)
	content := "factory_id,factory_name,city,country_code,cost_multiplier\nF_VN_01,Hanoi Plant,Hanoi,VN,0.38\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	_, err := NewLoader().LoadFactories(path)
	if err == nil {
		t.Fatal("expected header mismatch error, got nil")
	}
	if !strings.Contains(err.Error(), "header mismatch") {
		t.Errorf("expected header mismatch error, got: %v", err)
	}
}

func TestLoadFlowsInvalidFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FlowsFile)
	content := strings.Join(flowsHeader, ",") + "\n" +
		"F_VN_01,H_US_01,US,CAT01,95.00,55.00,4.20,8.20,0.25,23.75,186.15,18,23,yes,0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	_, err := NewLoader().LoadFlows(path)
	if err == nil {
		t.Fatal("expected flag parse error, got nil")
	}
	if !strings.Contains(err.Error(), "row 2") || !strings.Contains(err.Error(), "is_lead_time_feasible") {
		t.Errorf("expected row 2 is_lead_time_feasible error, got: %v", err)
	}
}

func TestLoadRestrictionsHeaderOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, RestrictionsFile)
	content := strings.Join(restrictionsHeader, ",") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	restrictions, err := NewLoader().LoadRestrictions(path)
	if err != nil {
		t.Fatalf("expected header-only restrictions file to load, got: %v", err)
	}
	if len(restrictions) != 0 {
		t.Errorf("expected no restrictions, got %d", len(restrictions))
	}
}

func TestLoadRegionsMissingFile(t *testing.T) {
	_, err := NewLoader().LoadRegions(filepath.Join(t.TempDir(), RegionsFile))
	if err == nil {
		t.Fatal("expected error for missing regions file, got nil")
	}
}
