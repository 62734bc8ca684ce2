// Package cmd implements the command-line interface for episodic.
package cmd

import (
	"encoding/json"

	"github.com/episodic-cli/episodic/episode"
	"github.com/episodic-cli/episodic/gemini"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolP("details", "d", false, "Print the episode details schema instead of the catalog schema")
	schemaCmd.Flags().BoolP("gemini", "g", false, "Print the schema in the form sent to the Gemini API")
}

// schemaCmd prints the JSON schemas of the structured responses.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the catalog or episode details responses",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var target any = []episode.Episode{}
		if lo.Must(cmd.Flags().GetBool("details")) {
			target = episode.Details{}
		}

		var out any = gemini.Reflect(target)
		if lo.Must(cmd.Flags().GetBool("gemini")) {
			converted, err := gemini.SchemaFor(target)
			handleErr(err)
			out = converted
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(out))
	},
}
