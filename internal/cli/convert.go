package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/dslconv/internal/app/converter"
	"github.com/heartmarshall/dslconv/internal/config"
)

// ErrFilesFailed is returned when at least one input could not be converted.
var ErrFilesFailed = errors.New("some files failed to convert")

// convertFlags are the conversion settings shared by convert and import.
type convertFlags struct {
	markup    string
	rules     string
	workers   int
	batchSize int
	dryRun    bool
}

func (f *convertFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.markup, "markup", "default", "built-in markup rules (default, none)")
	cmd.Flags().StringVar(&f.rules, "rules", "", "YAML file with custom markup rules")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 4, "files converted concurrently")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "parse files without writing output")
}

// apply overrides configuration with the flags the user actually set.
func (f *convertFlags) apply(cmd *cobra.Command, cfg *config.ConvertConfig) {
	if cmd.Flags().Changed("markup") {
		cfg.Markup = f.markup
	}
	if cmd.Flags().Changed("rules") {
		cfg.RulesPath = f.rules
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = f.workers
	}
	if cmd.Flags().Changed("batch-size") {
		cfg.BatchSize = f.batchSize
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = f.dryRun
	}
}

func (c *cli) newConvertCmd() *cobra.Command {
	var (
		flags     convertFlags
		output    string
		outputDir string
		pretty    bool
	)

	cmd := &cobra.Command{
		Use:   "convert <file.dsl>...",
		Short: "Convert DSL files to JSON",
		Long: `Convert one or more DSL files to JSON arrays of {"word", "definitions"}.
Each input is written to <name>.json next to it, into --out-dir, or to -o
when a single file is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.rt.Config.Convert
			flags.apply(cmd, &cfg)
			if cmd.Flags().Changed("out-dir") {
				cfg.OutputDir = outputDir
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Pretty = pretty
			}
			if output != "" && len(args) > 1 {
				return fmt.Errorf("-o/--output accepts a single input file, got %d", len(args))
			}

			set, err := converter.ResolveRules(cfg)
			if err != nil {
				return err
			}

			sink := converter.JSONSink{Output: output, OutputDir: cfg.OutputDir, Pretty: cfg.Pretty}
			p := converter.NewPipeline(c.rt.Log, set.Rules, converter.Options{Workers: cfg.Workers, DryRun: cfg.DryRun}, sink)

			return c.run(cmd, cfg, "convert · markup "+set.Name, p, args)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single input only)")
	cmd.Flags().StringVar(&outputDir, "out-dir", "", "directory for output files")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")
	return cmd
}

// run executes p under the configured timeout and prints the summary.
func (c *cli) run(cmd *cobra.Command, cfg config.ConvertConfig, title string, p *converter.Pipeline, paths []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	results, err := p.Run(ctx, paths)
	renderSummary(cmd.OutOrStdout(), title, results)
	if err != nil {
		return err
	}
	if converter.HasErrors(results) {
		return ErrFilesFailed
	}
	return nil
}
