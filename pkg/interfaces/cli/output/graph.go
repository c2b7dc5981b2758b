package output

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/vsinha/supplyflow/pkg/domain/entities"
	"github.com/vsinha/supplyflow/pkg/topology"
)

// Routes renders the factory-to-destination route listing.
func Routes(factory entities.FactoryID, destination entities.CountryCode, routes []topology.Route, asJSON bool) error {
	if asJSON {
		return printJSON(map[string]any{
			"factory_id":   factory,
			"country_code": destination,
			"routes":       routes,
		})
	}

	fmt.Printf("🗺️  Routes %s -> %s: %d\n\n", factory, destination, len(routes))
	if len(routes) == 0 {
		return nil
	}

	fmt.Printf("%-10s %-12s %-12s %-8s\n", "Hub", "Transport", "Last Mile", "Transit")
	fmt.Printf("%-10s %-12s %-12s %-8s\n", "----------", "------------", "------------", "--------")
	for _, route := range routes {
		fmt.Printf("%-10s $%-11.2f $%-11.2f %dd\n",
			route.Hub, route.TransportCost, route.LastMileCost, route.TransitDays)
	}
	fmt.Println()
	return nil
}

// Impact renders the destinations left without supply if the hub fails.
func Impact(hub entities.HubID, dependent []entities.CountryCode, asJSON bool) error {
	if asJSON {
		if dependent == nil {
			dependent = []entities.CountryCode{}
		}
		return printJSON(map[string]any{
			"hub_id":                hub,
			"dependent_countries":   dependent,
			"sole_source_for_count": len(dependent),
		})
	}

	if len(dependent) == 0 {
		fmt.Printf("✅ No destination depends on %s alone\n", hub)
		return nil
	}
	fmt.Printf("⚠️  %s is the sole source for %d destination(s):\n", hub, len(dependent))
	for _, country := range dependent {
		fmt.Printf("  %s\n", country)
	}
	return nil
}

// Diversity renders origin counts per region for a destination.
func Diversity(destination entities.CountryCode, counts map[entities.RegionID]int, asJSON bool) error {
	if asJSON {
		return printJSON(map[string]any{
			"country_code": destination,
			"regions":      counts,
		})
	}

	fmt.Printf("🌍 Supply diversity for %s:\n\n", destination)
	regions := make([]string, 0, len(counts))
	for region := range counts {
		regions = append(regions, string(region))
	}
	sort.Strings(regions)

	fmt.Printf("%-10s %-8s\n", "Region", "Origins")
	fmt.Printf("%-10s %-8s\n", "----------", "--------")
	for _, region := range regions {
		fmt.Printf("%-10s %-8d\n", region, counts[entities.RegionID(region)])
	}
	fmt.Println()
	return nil
}

// RestrictionEdges renders the restricts edges leaving a destination.
func RestrictionEdges(destination entities.CountryCode, edges []topology.RestrictionEdge, asJSON bool) error {
	if asJSON {
		return printJSON(map[string]any{
			"country_code": destination,
			"restrictions": edges,
		})
	}

	if len(edges) == 0 {
		fmt.Printf("✅ %s has no trade restrictions\n", destination)
		return nil
	}

	fmt.Printf("🚫 Restrictions for %s:\n\n", destination)
	fmt.Printf("%-10s %-16s %s\n", "Country", "Type", "Reason")
	fmt.Printf("%-10s %-16s %s\n", "----------", "----------------", "------")
	for _, edge := range edges {
		fmt.Printf("%-10s %-16s %s\n", edge.Restricted, edge.Kind, edge.Reason)
	}
	fmt.Println()
	return nil
}

// Utilization renders the feeding factories and served countries of a hub.
func Utilization(u topology.HubUtilization, asJSON bool) error {
	if asJSON {
		return printJSON(u)
	}

	fmt.Printf("🏭 Hub %s\n\n", u.Hub)
	fmt.Printf("Feeding factories (%d):\n", len(u.FeedingFactories))
	for _, factory := range u.FeedingFactories {
		fmt.Printf("  %s\n", factory)
	}
	fmt.Printf("Served countries (%d):\n", len(u.ServedCountries))
	for _, country := range u.ServedCountries {
		fmt.Printf("  %s\n", country)
	}
	fmt.Println()
	return nil
}

func printJSON(v any) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}
