package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/dslconv/internal/app/converter"
)

func (c *cli) newImportCmd() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "import <file.dsl>...",
		Short: "Import DSL files into PostgreSQL",
		Long: `Convert DSL files and store their entries in PostgreSQL, one transaction
per file. Importing a file again replaces the previous import of that path.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.rt.Config.Convert
			flags.apply(cmd, &cfg)
			if cfg.BatchSize <= 0 {
				return fmt.Errorf("--batch-size must be > 0 (got %d)", cfg.BatchSize)
			}

			set, err := converter.ResolveRules(cfg)
			if err != nil {
				return err
			}

			var sinks []converter.Sink
			if !cfg.DryRun {
				store, err := c.rt.OpenStore(cmd.Context())
				if err != nil {
					return err
				}
				defer store.Close()

				sinks = append(sinks, converter.StoreSink{
					Store:     store.Repo,
					Tx:        store.Tx,
					Markup:    set.Name,
					BatchSize: cfg.BatchSize,
				})
			}

			p := converter.NewPipeline(c.rt.Log, set.Rules, converter.Options{Workers: cfg.Workers, DryRun: cfg.DryRun}, sinks...)
			return c.run(cmd, cfg, "import · markup "+set.Name, p, args)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&flags.batchSize, "batch-size", 500, "entries per INSERT statement")
	return cmd
}

func (c *cli) newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.rt.Migrate(cmd.Context())
		},
	}
}
