// Package cmd implements the command-line interface for episodic.
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/episodic-cli/episodic/color"
	"github.com/episodic-cli/episodic/episode"
	"github.com/episodic-cli/episodic/style"
	"github.com/episodic-cli/episodic/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	catalogCmd.Flags().IntP("season", "S", 0, "Print only the given season")
}

// catalogCmd prints the episode list of the configured show.
var catalogCmd = &cobra.Command{
	Use:     "catalog",
	Short:   "Fetch and print the episode list grouped by season",
	Aliases: []string{"list", "ls"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			only   = lo.Must(cmd.Flags().GetInt("season"))
		)

		client, err := newGuide()
		handleErr(err)

		catalog, err := client.FetchCatalog(cmd.Context())
		handleErr(err)

		if only > 0 {
			catalog = lo.Filter(catalog, func(e episode.Episode, _ int) bool {
				return e.Season == only
			})
		}

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(catalog))
			return
		}

		out := cmd.OutOrStdout()
		for i, season := range episode.GroupBySeason(catalog) {
			if i > 0 {
				_, _ = fmt.Fprintln(out)
			}

			_, _ = fmt.Fprintln(out, style.New().Bold(true).Foreground(color.Rose).Render(season.Header()))
			for _, e := range season.Episodes {
				_, _ = fmt.Fprintf(out, "  %s %s\n", style.Faint(e.ID()), e.Label())
			}
		}

		_, _ = fmt.Fprintf(out, "\n%s of %s\n",
			style.Bold(util.Quantify(len(catalog), "episode", "episodes")),
			client.Show(),
		)
	},
}
