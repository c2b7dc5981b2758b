package output

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/vsinha/supplyflow/pkg/infrastructure/telemetry"
)

// Stats renders aggregated solve telemetry.
func Stats(stats *telemetry.Stats, asJSON bool) error {
	if asJSON {
		jsonData, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	}

	fmt.Printf("📈 Solve Statistics\n")
	fmt.Printf("===================\n\n")

	fmt.Printf("Total Solves: %d\n", stats.TotalSolves)
	fmt.Printf("Total Volume: %d\n", stats.TotalVolume)
	fmt.Printf("Total Landed Cost: $%.2f\n\n", stats.TotalCost)

	if len(stats.ByStatus) > 0 {
		fmt.Printf("By Status:\n")
		for _, status := range sortedKeys(stats.ByStatus) {
			fmt.Printf("  %-22s %d\n", status, stats.ByStatus[status])
		}
		fmt.Println()
	}

	if len(stats.VolumeByCategory) > 0 {
		fmt.Printf("Volume by Category:\n")
		for _, category := range sortedKeys(stats.VolumeByCategory) {
			fmt.Printf("  %-22s %d\n", category, stats.VolumeByCategory[category])
		}
		fmt.Println()
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
