// Package cli implements the dslconv command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/dslconv/internal/app"
)

type cli struct {
	configPath string
	rt         *app.Runtime
}

// NewRootCmd builds the dslconv command tree.
func NewRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "dslconv",
		Short: "Convert Lingvo DSL dictionaries to JSON or PostgreSQL",
		Long: `dslconv reads Lingvo DSL dictionaries (headword lines followed by indented
definition lines), rewrites or strips their inline markup, and writes the
entries as JSON files or imports them into a PostgreSQL table.

Configuration is read from --config, CONFIG_PATH or ./dslconv.yaml, with
environment variables taking precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := app.Bootstrap(c.configPath)
			if err != nil {
				return err
			}
			c.rt = rt
			return nil
		},
	}

	root.Version = app.Version
	root.SetVersionTemplate(fmt.Sprintf("dslconv %s\n", app.BuildVersion()))
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to YAML config file")

	root.AddCommand(
		c.newConvertCmd(),
		c.newImportCmd(),
		c.newMigrateCmd(),
		c.newLookupCmd(),
		c.newListCmd(),
		c.newRulesCmd(),
	)
	return root
}

// Execute runs the root command and exits 1 on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
