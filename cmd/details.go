// Package cmd implements the command-line interface for episodic.
package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/episodic-cli/episodic/color"
	"github.com/episodic-cli/episodic/episode"
	"github.com/episodic-cli/episodic/icon"
	"github.com/episodic-cli/episodic/style"
	"github.com/episodic-cli/episodic/util"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(detailsCmd)
	detailsCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	detailsCmd.Flags().StringP("title", "t", "", "Episode title; skips the catalog lookup")
}

// parseEpisodeArgs reads the SEASON and EPISODE positional arguments.
func parseEpisodeArgs(args []string) (season, number int, err error) {
	season, err = strconv.Atoi(args[0])
	if err != nil || season < 1 {
		return 0, 0, fmt.Errorf("invalid season %q", args[0])
	}

	number, err = strconv.Atoi(args[1])
	if err != nil || number < 1 {
		return 0, 0, fmt.Errorf("invalid episode %q", args[1])
	}

	return season, number, nil
}

// detailsCmd prints the generated summary and video link of one episode.
var detailsCmd = &cobra.Command{
	Use:     "details SEASON EPISODE",
	Short:   "Fetch the plot summary and video link of an episode",
	Example: "  episodic details 1 2",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		season, number, err := parseEpisodeArgs(args)
		handleErr(err)

		var (
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			title  = lo.Must(cmd.Flags().GetString("title"))
		)

		client, err := newGuide()
		handleErr(err)

		if title == "" {
			catalog, err := client.FetchCatalog(cmd.Context())
			handleErr(err)

			id := episode.ID(season, number)
			i := episode.Index(catalog, id)
			if i == -1 {
				handleErr(fmt.Errorf("%s not found in the %s catalog", id, client.Show()))
			}
			title = catalog[i].Title
		}

		e := episode.Episode{Season: season, Episode: number, Title: title}
		details := client.FetchEpisodeDetails(cmd.Context(), e.Title, e.Season, e.Episode)

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(struct {
				episode.Episode
				episode.Details
				Fallback bool `json:"fallback"`
			}{e, details, details.Fallback}))
			return
		}

		width := 80
		if w, _, err := util.TerminalSize(); err == nil {
			width = util.Clamp(w, 20, 100)
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, style.Faint(fmt.Sprintf("Season %d • Episode %d", e.Season, e.Episode)))
		_, _ = fmt.Fprintln(out, style.New().Bold(true).Foreground(color.Rose).Render(e.Title))
		_, _ = fmt.Fprintln(out)

		if details.Fallback {
			_, _ = fmt.Fprintln(out, style.Fg(color.Red)(icon.Get(icon.Fail)+" "+details.Summary))
		} else {
			_, _ = fmt.Fprintln(out, wordwrap.String(details.Summary, width))
		}

		if details.YoutubeLink != "" {
			_, _ = fmt.Fprintf(out, "\n%s %s\n", icon.Get(icon.Link), style.Fg(color.Blue)(details.YoutubeLink))
		}
	},
}
