// Package cmd implements the command-line interface for episodic.
package cmd

import (
	"fmt"

	"github.com/episodic-cli/episodic/icon"
	"github.com/episodic-cli/episodic/style"
	"github.com/episodic-cli/episodic/util"
	"github.com/episodic-cli/episodic/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a filesystem resource eligible for cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"log files", "logs", mo.Some("l"), where.Logs},
	{"release metadata cache", "cache", mo.Some("c"), where.Cache},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd removes log files and cached metadata.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear log files and cached application metadata",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			handleErr(util.Delete(target.location()))
			fmt.Printf("%s %s cleared\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)), target.name)
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
