// Package cmd implements the command-line interface for episodic.
package cmd

import (
	"os"
	"slices"
	"strings"

	"github.com/episodic-cli/episodic/auth"
	"github.com/episodic-cli/episodic/color"
	"github.com/episodic-cli/episodic/config"
	"github.com/episodic-cli/episodic/constant"
	"github.com/episodic-cli/episodic/style"
	"github.com/episodic-cli/episodic/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envVariables lists every supported variable with whether its value is secret.
func envVariables() map[string]bool {
	vars := map[string]bool{where.EnvConfigPath: false}

	for _, env := range auth.EnvVars {
		vars[env] = true
	}

	for _, k := range config.EnvExposed {
		vars[strings.ToUpper(constant.Episodic+"_"+config.EnvKeyReplacer.Replace(k))] = config.Default[k].Secret
	}

	return vars
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long:  `Display the collection of supported environment variables and their current process values.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		vars := envVariables()
		names := lo.Keys(vars)
		slices.Sort(names)

		for _, env := range names {
			value := os.Getenv(env)
			present := value != ""

			if (!present && setOnly) || (present && unsetOnly) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			switch {
			case !present:
				cmd.Println(style.Fg(color.Red)("unset"))
			case vars[env]:
				cmd.Println(style.Fg(color.Green)(config.Mask(value)))
			default:
				cmd.Println(style.Fg(color.Green)(value))
			}
		}
	},
}
