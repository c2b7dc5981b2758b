package commands

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	testhelpers "github.com/vsinha/supplyflow/pkg/application/services/testing"
	"github.com/vsinha/supplyflow/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/supplyflow/pkg/infrastructure/telemetry"
)

func writeFixtureDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := csv.NewWriter().WriteDirectory(dir, testhelpers.BuildSupplyNetworkDataset()); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	return dir
}

func baseSolveConfig(dataDir string) SolveConfig {
	return SolveConfig{
		DataDir:      dataDir,
		Category:     "CAT01",
		Destination:  "US",
		Volume:       2000,
		CostWeight:   8,
		TimeWeight:   5,
		RegionWeight: 3,
		MinBatch:     500,
		TimeLimit:    30 * time.Second,
		NoiseEpsilon: 0.5,
		Format:       "json",
	}
}

func TestGenerateCommandWritesDataset(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full dataset generation in short mode")
	}

	dir := filepath.Join(t.TempDir(), "data")
	cmd := NewGenerateCommand(GenerateConfig{OutputDir: dir})

	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	files := []string{
		csv.RegionsFile, csv.CountriesFile, csv.FactoriesFile, csv.HubsFile,
		csv.CategoriesFile, csv.ProductsFile, csv.ProductAvailabilityFile,
		csv.CapacitiesFile, csv.RestrictionsFile, csv.FlowsFile,
	}
	for _, name := range files {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestSolveCommandWritesRankedDocument(t *testing.T) {
	dataDir := writeFixtureDataset(t)
	outDir := t.TempDir()

	cfg := baseSolveConfig(dataDir)
	cfg.OutputDir = outDir
	cfg.Rank = true

	if err := NewSolveCommand(cfg).Execute(context.Background()); err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(outDir, "solve_result.json"))
	if err != nil {
		t.Fatalf("failed to read result file: %v", err)
	}

	var doc struct {
		Result struct {
			Status      string `json:"status"`
			TotalUnits  int64  `json:"total_units"`
			Allocations []struct {
				Factory string `json:"factory_id"`
				Units   int64  `json:"units"`
			} `json:"allocations"`
		} `json:"result"`
		Ranking struct {
			Chosen       []json.RawMessage `json:"chosen"`
			Alternatives []struct {
				Rank int `json:"rank"`
			} `json:"alternatives"`
			OtherOrigins []struct {
				Status string `json:"status"`
			} `json:"other_origins"`
		} `json:"ranking"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("failed to parse result file: %v", err)
	}

	if doc.Result.Status != "Optimal" {
		t.Fatalf("expected Optimal, got %s", doc.Result.Status)
	}
	if doc.Result.TotalUnits != 2000 {
		t.Errorf("expected 2000 allocated units, got %d", doc.Result.TotalUnits)
	}
	if len(doc.Result.Allocations) != 2 {
		t.Fatalf("expected 2 allocations, got %d", len(doc.Result.Allocations))
	}
	if doc.Result.Allocations[0].Factory != "F_VN_01" || doc.Result.Allocations[0].Units != 1100 {
		t.Errorf("first allocation should be F_VN_01 with 1100 units, got %s with %d",
			doc.Result.Allocations[0].Factory, doc.Result.Allocations[0].Units)
	}
	if len(doc.Ranking.Chosen) != 2 {
		t.Errorf("expected 2 chosen flows, got %d", len(doc.Ranking.Chosen))
	}
	if len(doc.Ranking.Alternatives) != 3 {
		t.Errorf("expected 3 alternatives, got %d", len(doc.Ranking.Alternatives))
	}
	if len(doc.Ranking.OtherOrigins) != 2 {
		t.Errorf("expected 2 remaining origins, got %d", len(doc.Ranking.OtherOrigins))
	}
}

func TestSolveCommandValidation(t *testing.T) {
	dataDir := writeFixtureDataset(t)

	tests := []struct {
		name   string
		mutate func(*SolveConfig)
	}{
		{"missing data dir", func(c *SolveConfig) { c.DataDir = "" }},
		{"missing category", func(c *SolveConfig) { c.Category = "" }},
		{"missing destination", func(c *SolveConfig) { c.Destination = "" }},
		{"zero volume", func(c *SolveConfig) { c.Volume = 0 }},
		{"negative volume", func(c *SolveConfig) { c.Volume = -10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseSolveConfig(dataDir)
			tt.mutate(&cfg)
			if err := NewSolveCommand(cfg).Execute(context.Background()); err == nil {
				t.Error("expected a validation error, got nil")
			}
		})
	}
}

func TestSolveCommandRecordsTelemetry(t *testing.T) {
	dataDir := writeFixtureDataset(t)
	dbPath := filepath.Join(t.TempDir(), "solves.db")

	cfg := baseSolveConfig(dataDir)
	cfg.OutputDir = t.TempDir()
	cfg.TelemetryDB = dbPath

	if err := NewSolveCommand(cfg).Execute(context.Background()); err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	collector, err := telemetry.NewCollector(dbPath)
	if err != nil {
		t.Fatalf("failed to open telemetry store: %v", err)
	}
	defer collector.Close()

	stats, err := collector.GetStats("")
	if err != nil {
		t.Fatalf("failed to get stats: %v", err)
	}
	if stats.TotalSolves != 1 {
		t.Errorf("expected 1 recorded solve, got %d", stats.TotalSolves)
	}
	if stats.ByStatus["Optimal"] != 1 {
		t.Errorf("expected one optimal solve, got %v", stats.ByStatus)
	}
}

func TestGraphCommandQueries(t *testing.T) {
	dataDir := writeFixtureDataset(t)

	tests := []struct {
		name   string
		config GraphConfig
	}{
		{"routes", GraphConfig{Query: QueryRoutes, Factory: "F_VN_01", Destination: "US"}},
		{"impact", GraphConfig{Query: QueryImpact, Hub: "H_US_01"}},
		{"impact filtered", GraphConfig{Query: QueryImpact, Hub: "H_US_01", DisabledHubs: []string{"H_VN_01", "H_CN_01"}}},
		{"diversity", GraphConfig{Query: QueryDiversity, Destination: "US"}},
		{"restrictions", GraphConfig{Query: QueryRestrictions, Destination: "US"}},
		{"utilization", GraphConfig{Query: QueryUtilization, Hub: "H_VN_01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config
			cfg.DataDir = dataDir
			cfg.JSON = true
			if err := NewGraphCommand(cfg).Execute(context.Background()); err != nil {
				t.Errorf("query failed: %v", err)
			}
		})
	}
}

func TestGraphCommandErrors(t *testing.T) {
	dataDir := writeFixtureDataset(t)

	tests := []struct {
		name   string
		config GraphConfig
	}{
		{"unknown query", GraphConfig{DataDir: dataDir, Query: "centrality"}},
		{"unknown factory", GraphConfig{DataDir: dataDir, Query: QueryRoutes, Factory: "F_XX_99", Destination: "US"}},
		{"unknown hub", GraphConfig{DataDir: dataDir, Query: QueryImpact, Hub: "H_XX_99"}},
		{"missing data dir", GraphConfig{Query: QueryDiversity, Destination: "US"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewGraphCommand(tt.config).Execute(context.Background()); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestStatsCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "solves.db")

	collector, err := telemetry.NewCollector(dbPath)
	if err != nil {
		t.Fatalf("failed to create telemetry store: %v", err)
	}
	err = collector.RecordSolve(telemetry.SolveEvent{
		Category:    "CAT01",
		Destination: "US",
		Volume:      1200,
		Status:      "Optimal",
		Entries:     2,
		TotalCost:   340000,
	})
	collector.Close()
	if err != nil {
		t.Fatalf("failed to record event: %v", err)
	}

	if err := NewStatsCommand(StatsConfig{DBPath: dbPath, JSON: true}).Execute(context.Background()); err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	missing := filepath.Join(t.TempDir(), "absent.db")
	if err := NewStatsCommand(StatsConfig{DBPath: missing}).Execute(context.Background()); err == nil {
		t.Error("expected an error for a missing database, got nil")
	}
}
