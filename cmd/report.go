package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkovalev/fittrack/internal/input"
	"github.com/dkovalev/fittrack/internal/model"
	"github.com/dkovalev/fittrack/internal/orchestrator"
)

var reportCmd = &cobra.Command{
	Use:   "report [PACKAGE...]",
	Short: "Compute workout statistics and print a summary report",
	Long: `Reads workout packages, computes distance, average speed, and calories
burned for each session, and prints the report.

Packages come from positional arguments (CODE:v1,v2,...), a JSON input
file, the workouts list in the config file, or the built-in samples, in
that order of precedence.`,
	Example: `  fittrack report
  fittrack report RUN:15000,1,75 WLK:9000,1,75,180
  fittrack report --input packages.json -o json`,
	RunE: runReport,
}

func init() {
	f := reportCmd.Flags()
	f.String("input", "", "JSON file with workout packages")
	f.StringP("output", "o", "", "output format: text, table, json")
	f.String("output-file", "", "write report to file")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Apply flag overrides
	if format, _ := cmd.Flags().GetString("output"); cmd.Flags().Changed("output") {
		cfg.Output.Format = format
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	source := resolveSource(cmd, args)

	// Handle output file
	w := os.Stdout
	if outFile, _ := cmd.Flags().GetString("output-file"); outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	orch := orchestrator.New(source, cfg)
	orch.Writer = w
	if verbose {
		orch.Progress = os.Stderr
	}

	_, err := orch.Run(ctx)
	return err
}

// resolveSource picks the package source: CLI args, then the --input
// file, then config workouts, then the builtin samples.
func resolveSource(cmd *cobra.Command, args []string) input.Source {
	if len(args) > 0 {
		return input.NewArgsSource(args)
	}
	if file, _ := cmd.Flags().GetString("input"); file != "" {
		return input.NewStaticSource(file)
	}
	if len(cfg.Workouts) > 0 {
		packages := make([]model.Package, len(cfg.Workouts))
		for i, w := range cfg.Workouts {
			packages[i] = model.Package{Type: w.Type, Values: w.Values}
		}
		return input.NewSliceSource("config", packages)
	}
	return input.BuiltinSource{}
}
