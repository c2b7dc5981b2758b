package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vsinha/supplyflow/pkg/config"
	"github.com/vsinha/supplyflow/pkg/infrastructure/datagen"
	"github.com/vsinha/supplyflow/pkg/interfaces/cli/commands"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "supplyflow",
		Short: "Supply chain allocation engine",
		Long: "Scores candidate supply flows, solves optimal allocations under capacity\n" +
			"and trade restrictions, and answers supply network topology questions.",
		SilenceUsage: true,
	}
	root.AddCommand(
		newGenerateCommand(),
		newSolveCommand(),
		newGraphCommand(),
		newServeCommand(),
		newStatsCommand(),
	)
	return root
}

func newGenerateCommand() *cobra.Command {
	gc := commands.GenerateConfig{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic supply network dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.NewGenerateCommand(gc).Execute(cmd.Context())
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&gc.OutputDir, "output", "data", "Output directory for the CSV files")
	flags.Int64Var(&gc.Seed, "seed", datagen.DefaultSeed, "Random seed for reproducible generation")
	flags.BoolVar(&gc.Verbose, "verbose", false, "Enable verbose output")
	return cmd
}

func newSolveCommand() *cobra.Command {
	defaults := config.Default()
	var configPath string
	sc := commands.SolveConfig{
		TimeLimit:    defaults.Solver.TimeLimit(),
		NoiseEpsilon: defaults.Solver.NoiseEpsilon,
	}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one allocation request",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				applySolveConfig(cmd, cfg, &sc)
			}
			return commands.NewSolveCommand(sc).Execute(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "Path to YAML config file")
	flags.StringVar(&sc.DataDir, "data", defaults.DataDir, "Directory containing the CSV dataset")
	flags.StringVar(&sc.Category, "category", "", "Category to allocate (e.g. CAT01)")
	flags.StringVar(&sc.Destination, "dest", "", "Destination country code (e.g. US)")
	flags.Int64Var(&sc.Volume, "volume", 0, "Units to allocate")
	flags.Float64Var(&sc.CostWeight, "cost-weight", defaults.Defaults.CostWeight, "Weight of landed cost in the composite score")
	flags.Float64Var(&sc.TimeWeight, "time-weight", defaults.Defaults.TimeWeight, "Weight of transit time in the composite score")
	flags.Float64Var(&sc.RegionWeight, "region-weight", defaults.Defaults.RegionWeight, "Weight of regional distance in the composite score")
	flags.Int64Var(&sc.MinBatch, "min-batch", defaults.Defaults.MinBatch, "Minimum units per selected flow")
	flags.BoolVar(&sc.Rank, "rank", false, "Rank passed-over flows and remaining origins")
	flags.StringVar(&sc.Format, "format", "text", "Output format: text, json, csv, svg, html")
	flags.StringVar(&sc.OutputDir, "output", "", "Output directory for results (optional)")
	flags.BoolVar(&sc.Verbose, "verbose", false, "Enable verbose output")
	flags.StringVar(&sc.TelemetryDB, "telemetry-db", "", "SQLite file to record the solve (optional)")

	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("dest")
	_ = cmd.MarkFlagRequired("volume")
	return cmd
}

// applySolveConfig fills config file values into every flag the user did not
// set explicitly. Flags win over the file.
func applySolveConfig(cmd *cobra.Command, cfg *config.Config, sc *commands.SolveConfig) {
	if !cmd.Flags().Changed("data") {
		sc.DataDir = cfg.DataDir
	}
	if !cmd.Flags().Changed("cost-weight") {
		sc.CostWeight = cfg.Defaults.CostWeight
	}
	if !cmd.Flags().Changed("time-weight") {
		sc.TimeWeight = cfg.Defaults.TimeWeight
	}
	if !cmd.Flags().Changed("region-weight") {
		sc.RegionWeight = cfg.Defaults.RegionWeight
	}
	if !cmd.Flags().Changed("min-batch") {
		sc.MinBatch = cfg.Defaults.MinBatch
	}
	if !cmd.Flags().Changed("telemetry-db") {
		sc.TelemetryDB = cfg.Telemetry.DBPath
	}
	sc.TimeLimit = cfg.Solver.TimeLimit()
	sc.NoiseEpsilon = cfg.Solver.NoiseEpsilon
}

func newGraphCommand() *cobra.Command {
	gc := commands.GraphConfig{}
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Query the supply network topology",
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&gc.DataDir, "data", config.Default().DataDir, "Directory containing the CSV dataset")
	pf.StringSliceVar(&gc.DisabledFactories, "disable-factories", nil, "Factory ids to treat as inactive")
	pf.StringSliceVar(&gc.DisabledHubs, "disable-hubs", nil, "Hub ids to treat as inactive")
	pf.BoolVar(&gc.JSON, "json", false, "Emit JSON instead of tables")
	pf.BoolVar(&gc.Verbose, "verbose", false, "Enable verbose output")

	routes := &cobra.Command{
		Use:   "routes <factory-id> <country-code>",
		Short: "List every route from a factory to a destination",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gc.Query = commands.QueryRoutes
			gc.Factory = args[0]
			gc.Destination = args[1]
			return commands.NewGraphCommand(gc).Execute(cmd.Context())
		},
	}
	impact := &cobra.Command{
		Use:   "impact <hub-id>",
		Short: "Destinations that lose all supply if the hub fails",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gc.Query = commands.QueryImpact
			gc.Hub = args[0]
			return commands.NewGraphCommand(gc).Execute(cmd.Context())
		},
	}
	diversity := &cobra.Command{
		Use:   "diversity <country-code>",
		Short: "Count distinct origins per region reaching a destination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gc.Query = commands.QueryDiversity
			gc.Destination = args[0]
			return commands.NewGraphCommand(gc).Execute(cmd.Context())
		},
	}
	restrictions := &cobra.Command{
		Use:   "restrictions <country-code>",
		Short: "List trade restrictions imposed by a destination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gc.Query = commands.QueryRestrictions
			gc.Destination = args[0]
			return commands.NewGraphCommand(gc).Execute(cmd.Context())
		},
	}
	utilization := &cobra.Command{
		Use:   "utilization <hub-id>",
		Short: "Feeding factories and served countries of a hub",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gc.Query = commands.QueryUtilization
			gc.Hub = args[0]
			return commands.NewGraphCommand(gc).Execute(cmd.Context())
		},
	}

	cmd.AddCommand(routes, impact, diversity, restrictions, utilization)
	return cmd
}

func newServeCommand() *cobra.Command {
	svc := commands.ServeConfig{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.NewServeCommand(svc).Execute(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&svc.ConfigPath, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&svc.Addr, "addr", "", "Listen address override (e.g. :8080)")
	return cmd
}

func newStatsCommand() *cobra.Command {
	stc := commands.StatsConfig{}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Report aggregated solve telemetry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.NewStatsCommand(stc).Execute(cmd.Context())
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&stc.DBPath, "db", "", "Path to the telemetry SQLite database")
	flags.StringVar(&stc.Category, "category", "", "Scope the totals to one category")
	flags.BoolVar(&stc.JSON, "json", false, "Emit JSON instead of tables")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}
