package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/dslconv/internal/domain"
)

func (c *cli) newLookupCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up a headword in imported dictionaries",
		Long:  `Look up a headword (case- and whitespace-insensitive) across all imported dictionaries.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.rt.OpenStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			word := strings.Join(args, " ")
			entries, err := store.Repo.FindByWord(cmd.Context(), word, limit)
			if errors.Is(err, domain.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render(fmt.Sprintf("%q not found", word)))
				return nil
			}
			if err != nil {
				return err
			}

			renderEntries(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of entries")
	return cmd
}

func (c *cli) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List imported dictionaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.rt.OpenStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			dicts, err := store.Repo.ListDictionaries(cmd.Context())
			if err != nil {
				return err
			}
			for i := range dicts {
				n, err := store.Repo.CountEntries(cmd.Context(), dicts[i].ID)
				if err != nil {
					return err
				}
				dicts[i].EntryCount = n
			}

			renderDictionaries(cmd.OutOrStdout(), dicts)
			return nil
		},
	}
}
