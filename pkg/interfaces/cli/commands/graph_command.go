package commands

import (
	"context"
	"fmt"

	"github.com/vsinha/supplyflow/pkg/domain/entities"
	"github.com/vsinha/supplyflow/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/supplyflow/pkg/interfaces/cli/output"
	"github.com/vsinha/supplyflow/pkg/topology"
)

// Graph query names accepted by GraphConfig.Query
const (
	QueryRoutes       = "routes"
	QueryImpact       = "impact"
	QueryDiversity    = "diversity"
	QueryRestrictions = "restrictions"
	QueryUtilization  = "utilization"
)

// GraphConfig holds configuration for one topology query
type GraphConfig struct {
	DataDir           string
	Query             string
	Factory           string
	Hub               string
	Destination       string
	DisabledFactories []string
	DisabledHubs      []string
	JSON              bool
	Verbose           bool
}

// GraphCommand answers one topology query against a CSV dataset
type GraphCommand struct {
	config GraphConfig
}

// NewGraphCommand creates a new graph command
func NewGraphCommand(config GraphConfig) *GraphCommand {
	return &GraphCommand{config: config}
}

// Execute runs the graph command
func (c *GraphCommand) Execute(ctx context.Context) error {
	if c.config.DataDir == "" {
		return fmt.Errorf("must specify a data directory")
	}

	store, err := csv.NewLoader().LoadDirectory(c.config.DataDir)
	if err != nil {
		return fmt.Errorf("error loading reference data: %w", err)
	}

	graph, err := topology.Build(store)
	if err != nil {
		return fmt.Errorf("error building topology graph: %w", err)
	}

	if c.config.Verbose {
		stats := graph.Stats()
		fmt.Printf("🕸️  Graph: %d nodes, %d ships-to, %d delivers-to, %d restricts edges\n\n",
			stats.Nodes, stats.ShipsTo, stats.DeliversTo, stats.Restricts)
	}

	filter := c.filter()

	switch c.config.Query {
	case QueryRoutes:
		routes, err := graph.Routes(entities.FactoryID(c.config.Factory), entities.CountryCode(c.config.Destination))
		if err != nil {
			return fmt.Errorf("routes query failed: %w", err)
		}
		return output.Routes(entities.FactoryID(c.config.Factory), entities.CountryCode(c.config.Destination), routes, c.config.JSON)

	case QueryImpact:
		dependent, err := graph.ImpactAnalysis(entities.HubID(c.config.Hub), filter)
		if err != nil {
			return fmt.Errorf("impact query failed: %w", err)
		}
		return output.Impact(entities.HubID(c.config.Hub), dependent, c.config.JSON)

	case QueryDiversity:
		counts, err := graph.SupplyDiversity(entities.CountryCode(c.config.Destination), filter)
		if err != nil {
			return fmt.Errorf("diversity query failed: %w", err)
		}
		return output.Diversity(entities.CountryCode(c.config.Destination), counts, c.config.JSON)

	case QueryRestrictions:
		edges, err := graph.Restrictions(entities.CountryCode(c.config.Destination))
		if err != nil {
			return fmt.Errorf("restrictions query failed: %w", err)
		}
		return output.RestrictionEdges(entities.CountryCode(c.config.Destination), edges, c.config.JSON)

	case QueryUtilization:
		u, err := graph.HubUtilization(entities.HubID(c.config.Hub), filter)
		if err != nil {
			return fmt.Errorf("utilization query failed: %w", err)
		}
		return output.Utilization(u, c.config.JSON)

	default:
		return fmt.Errorf("unknown graph query: %s", c.config.Query)
	}
}

// filter builds the what-if filter, or nil when nothing is disabled
func (c *GraphCommand) filter() *topology.ActiveFilter {
	if len(c.config.DisabledFactories) == 0 && len(c.config.DisabledHubs) == 0 {
		return nil
	}
	factories := make([]entities.FactoryID, 0, len(c.config.DisabledFactories))
	for _, id := range c.config.DisabledFactories {
		factories = append(factories, entities.FactoryID(id))
	}
	hubs := make([]entities.HubID, 0, len(c.config.DisabledHubs))
	for _, id := range c.config.DisabledHubs {
		hubs = append(hubs, entities.HubID(id))
	}
	return topology.NewActiveFilter(factories, hubs)
}
