package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/vsinha/supplyflow/pkg/infrastructure/telemetry"
	"github.com/vsinha/supplyflow/pkg/interfaces/cli/output"
)

// StatsConfig holds configuration for the stats command
type StatsConfig struct {
	DBPath   string
	Category string // scopes the totals to one category when set
	JSON     bool
}

// StatsCommand reports aggregated solve telemetry
type StatsCommand struct {
	config StatsConfig
}

// NewStatsCommand creates a new stats command
func NewStatsCommand(config StatsConfig) *StatsCommand {
	return &StatsCommand{config: config}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context) error {
	if c.config.DBPath == "" {
		return fmt.Errorf("must specify a telemetry database path")
	}
	if _, err := os.Stat(c.config.DBPath); os.IsNotExist(err) {
		return fmt.Errorf("telemetry database not found: %s", c.config.DBPath)
	}

	collector, err := telemetry.NewCollector(c.config.DBPath)
	if err != nil {
		return fmt.Errorf("error opening telemetry store: %w", err)
	}
	defer collector.Close()

	stats, err := collector.GetStats(c.config.Category)
	if err != nil {
		return fmt.Errorf("error reading solve statistics: %w", err)
	}

	return output.Stats(stats, c.config.JSON)
}
