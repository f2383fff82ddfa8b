package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/dslconv/internal/app/converter"
)

func (c *cli) newRulesCmd() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the active markup rules as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := c.rt.Config.Convert
			flags.apply(cmd, &cfg)

			set, err := converter.ResolveRules(cfg)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(set.Rules)
		},
	}

	cmd.Flags().StringVar(&flags.markup, "markup", "default", "built-in markup rules (default, none)")
	cmd.Flags().StringVar(&flags.rules, "rules", "", "YAML file with custom markup rules")
	return cmd
}
