package commands

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
	"github.com/vsinha/supplyflow/pkg/infrastructure/logging"
	"github.com/vsinha/supplyflow/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/supplyflow/pkg/infrastructure/telemetry"
	"github.com/vsinha/supplyflow/pkg/interfaces/cli/output"
	"github.com/vsinha/supplyflow/pkg/milp"
)

// SolveConfig holds configuration for the solve command
type SolveConfig struct {
	DataDir      string
	Category     string
	Destination  string
	Volume       int64
	CostWeight   float64
	TimeWeight   float64
	RegionWeight float64
	MinBatch     int64
	TimeLimit    time.Duration
	NoiseEpsilon float64
	Rank         bool
	Format       string
	OutputDir    string
	Verbose      bool
	TelemetryDB  string
}

// SolveCommand runs one allocation solve against a CSV dataset
type SolveCommand struct {
	config SolveConfig
}

// NewSolveCommand creates a new solve command
func NewSolveCommand(config SolveConfig) *SolveCommand {
	return &SolveCommand{config: config}
}

// Execute runs the solve command
func (c *SolveCommand) Execute(ctx context.Context) error {
	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("🚀 SupplyFlow Allocation\n")
		fmt.Printf("Data directory: %s\n", c.config.DataDir)
		fmt.Printf("Request: %d units of %s to %s\n",
			c.config.Volume, c.config.Category, c.config.Destination)
		fmt.Printf("Weights: cost=%.1f time=%.1f region=%.1f, min batch %d\n",
			c.config.CostWeight, c.config.TimeWeight, c.config.RegionWeight, c.config.MinBatch)
		fmt.Println()
		fmt.Println("📂 Loading reference data...")
	}

	store, err := csv.NewLoader().LoadDirectory(c.config.DataDir)
	if err != nil {
		return fmt.Errorf("error loading reference data: %w", err)
	}

	if c.config.Verbose {
		flows, err := store.FlowRecords()
		if err != nil {
			return fmt.Errorf("error reading flow table: %w", err)
		}
		fmt.Printf("✅ Reference data loaded: %d flows\n\n", len(flows))
	}

	logger := zap.NewNop()
	if c.config.Verbose {
		logger, err = logging.NewConsoleLogger("debug")
		if err != nil {
			return fmt.Errorf("error building logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	req := dto.SolveRequest{
		Category:    entities.CategoryID(c.config.Category),
		Destination: entities.CountryCode(c.config.Destination),
		Volume:      entities.Units(c.config.Volume),
		Weights: scoring.Weights{
			Cost:   c.config.CostWeight,
			Time:   c.config.TimeWeight,
			Region: c.config.RegionWeight,
		},
		MinBatch: entities.Units(c.config.MinBatch),
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid solve request: %w", err)
	}

	optimizer := allocation.NewOptimizer(store, milp.NewBranchBound(), logger, allocation.Config{
		TimeLimit:    c.config.TimeLimit,
		NoiseEpsilon: c.config.NoiseEpsilon,
	})

	if c.config.Verbose {
		fmt.Println("🔄 Solving allocation...")
	}

	result, err := optimizer.Solve(ctx, req)
	if err != nil {
		return fmt.Errorf("error solving allocation: %w", err)
	}

	if c.config.TelemetryDB != "" {
		if err := c.recordSolve(result); err != nil {
			fmt.Printf("Warning: failed to record telemetry: %v\n", err)
		}
	}

	var ranked *dto.RankedResult
	if c.config.Rank {
		ranked, err = ranking.NewRanker(store).Rank(result, true)
		if err != nil {
			return fmt.Errorf("error ranking result: %w", err)
		}
	}

	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	}
	if err := output.Generate(result, ranked, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Verbose {
		fmt.Println("🏁 Allocation complete!")
	}
	return nil
}

// validateInputs validates the command configuration
func (c *SolveCommand) validateInputs() error {
	if c.config.DataDir == "" {
		return fmt.Errorf("must specify a data directory")
	}
	if c.config.Category == "" || c.config.Destination == "" {
		return fmt.Errorf("must specify both a category and a destination")
	}
	if c.config.Volume <= 0 {
		return fmt.Errorf("volume must be positive, got %d", c.config.Volume)
	}
	return nil
}

func (c *SolveCommand) recordSolve(result *dto.SolveResult) error {
	collector, err := telemetry.NewCollector(c.config.TelemetryDB)
	if err != nil {
		return err
	}
	defer collector.Close()

	return collector.RecordSolve(telemetry.SolveEvent{
		ID:           result.ID,
		Category:     string(result.Category),
		Destination:  string(result.Destination),
		Volume:       int64(result.Volume),
		Status:       result.Status.String(),
		Entries:      len(result.Allocations),
		TotalCost:    result.TotalCost.InexactFloat64(),
		DurationMs:   result.DurationMs,
		CostWeight:   result.Weights.Cost,
		TimeWeight:   result.Weights.Time,
		RegionWeight: result.Weights.Region,
	})
}
