package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vsinha/supplyflow/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Generate renders a solve result in the specified format. A non-nil ranked
// result adds the tiered ranking below the allocation table.
func Generate(result *dto.SolveResult, ranked *dto.RankedResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, ranked, config)
	case "json":
		return generateJSONOutput(result, ranked, config)
	case "csv":
		return generateCSVOutput(result, config)
	case "svg":
		return generateSVGOutput(result, config)
	case "html":
		return generateHTMLOutput(result, ranked, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *dto.SolveResult, ranked *dto.RankedResult, config Config) error {
	fmt.Printf("📊 Allocation Results\n")
	fmt.Printf("=====================\n\n")

	fmt.Printf("Solve ID: %s\n", result.ID)
	fmt.Printf("Category: %s -> %s\n", result.Category, result.Destination)
	fmt.Printf("Status: %s\n", result.Status)
	fmt.Printf("Requested Volume: %d\n", result.Volume)
	fmt.Printf("Allocated Units: %d\n", result.TotalUnits)
	fmt.Printf("Total Landed Cost: $%s\n", result.TotalCost.StringFixed(2))
	fmt.Printf("Solve Time: %dms\n\n", result.DurationMs)

	if len(result.Allocations) > 0 {
		fmt.Printf("📦 Allocations:\n")
		fmt.Printf("%-10s %-10s %-8s %-12s %-8s %-8s %-14s\n",
			"Factory", "Hub", "Units", "Cost/Unit", "Score", "Transit", "Total Cost")
		fmt.Printf("%-10s %-10s %-8s %-12s %-8s %-8s %-14s\n",
			"----------", "----------", "--------", "------------", "--------", "--------", "--------------")

		for _, entry := range result.Allocations {
			fmt.Printf("%-10s %-10s %-8d $%-11.2f %-8.4f %-8s $%-13s\n",
				entry.Factory,
				entry.Hub,
				entry.Units,
				entry.CostPerUnit,
				entry.Score,
				fmt.Sprintf("%dd", entry.TransitDays),
				entry.TotalCost.StringFixed(2))
		}
		fmt.Println()
	}

	if ranked != nil {
		printRanking(ranked)
	}

	if config.OutputDir != "" {
		return saveJSONFile(result, ranked, config)
	}

	return nil
}

func printRanking(ranked *dto.RankedResult) {
	if len(ranked.Chosen) > 0 {
		fmt.Printf("🏆 Chosen Routes:\n")
		fmt.Printf("%-22s %-18s %-8s %-12s %-8s\n",
			"Factory", "Hub", "Units", "Cost/Unit", "Transit")
		fmt.Printf("%-22s %-18s %-8s %-12s %-8s\n",
			"----------------------", "------------------", "--------", "------------", "--------")
		for _, flow := range ranked.Chosen {
			fmt.Printf("%-22s %-18s %-8d $%-11.2f %dd\n",
				flow.FactoryName,
				flow.HubName,
				flow.Units,
				flow.CostPerUnit,
				flow.TransitDays)
		}
		fmt.Println()
	}

	if len(ranked.Alternatives) > 0 {
		fmt.Printf("🔄 Ranked Alternatives:\n")
		fmt.Printf("%-5s %-22s %-10s %-12s %-8s %-8s\n",
			"Rank", "Factory", "Hub", "Cost/Unit", "Score", "Transit")
		fmt.Printf("%-5s %-22s %-10s %-12s %-8s %-8s\n",
			"-----", "----------------------", "----------", "------------", "--------", "--------")
		for _, flow := range ranked.Alternatives {
			fmt.Printf("%-5d %-22s %-10s $%-11.2f %-8.4f %dd\n",
				flow.Rank,
				flow.FactoryName,
				flow.Hub,
				flow.CostPerUnit,
				flow.Score,
				flow.TransitDays)
		}
		fmt.Println()
	}

	if len(ranked.OtherOrigins) > 0 {
		fmt.Printf("🌐 Other Origins:\n")
		fmt.Printf("%-22s %-10s %-40s %-8s\n",
			"Factory", "Country", "Status", "Score")
		fmt.Printf("%-22s %-10s %-40s %-8s\n",
			"----------------------", "----------", "----------------------------------------", "--------")
		for _, origin := range ranked.OtherOrigins {
			score := "-"
			if origin.Score != nil {
				score = fmt.Sprintf("%.4f", *origin.Score)
			}
			fmt.Printf("%-22s %-10s %-40s %-8s\n",
				origin.FactoryName,
				origin.FactoryCountry,
				origin.Status,
				score)
		}
		fmt.Println()
	}
}

// solveDocument is the JSON shape shared by stdout and file output.
type solveDocument struct {
	Result  *dto.SolveResult  `json:"result"`
	Ranking *dto.RankedResult `json:"ranking,omitempty"`
}

// generateJSONOutput creates JSON output
func generateJSONOutput(result *dto.SolveResult, ranked *dto.RankedResult, config Config) error {
	jsonData, err := json.MarshalIndent(solveDocument{Result: result, Ranking: ranked}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}
	return saveJSONFile(result, ranked, config)
}

func saveJSONFile(result *dto.SolveResult, ranked *dto.RankedResult, config Config) error {
	jsonData, err := json.MarshalIndent(solveDocument{Result: result, Ranking: ranked}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "solve_result.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 Results saved to: %s\n", filename)
	}
	return nil
}

// generateCSVOutput writes the allocation table as CSV
func generateCSVOutput(result *dto.SolveResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "allocations.csv")
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create allocations CSV: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"factory_id", "hub_id", "destination_country_code", "units",
		"cost_per_unit", "score", "transit_days", "total_cost",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, entry := range result.Allocations {
		record := []string{
			string(entry.Factory),
			string(entry.Hub),
			string(entry.Destination),
			strconv.FormatInt(int64(entry.Units), 10),
			strconv.FormatFloat(entry.CostPerUnit, 'f', 2, 64),
			strconv.FormatFloat(entry.Score, 'f', 6, 64),
			strconv.Itoa(entry.TransitDays),
			entry.TotalCost.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush allocations CSV: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 Allocations saved to: %s\n", filename)
	}
	return nil
}
