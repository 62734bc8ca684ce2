// Package cmd implements the command-line interface for episodic.
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/episodic-cli/episodic/auth"
	"github.com/episodic-cli/episodic/color"
	"github.com/episodic-cli/episodic/config"
	"github.com/episodic-cli/episodic/icon"
	"github.com/episodic-cli/episodic/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

func init() {
	rootCmd.AddCommand(authCmd)

	authCmd.AddCommand(authSetCmd)
	authSetCmd.Flags().StringP("key", "k", "", "API key to store instead of prompting for it")

	authCmd.AddCommand(authStatusCmd)

	authCmd.AddCommand(authDeleteCmd)
	authDeleteCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

// authCmd manages the Gemini API key.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Gemini API key stored in the system keyring",
	Long: `Manage the Gemini API key stored in the system keyring.
The API_KEY and GEMINI_API_KEY environment variables and the gemini.api_key config field take precedence over the keyring.`,
}

// authSetCmd stores an API key in the keyring.
var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store an API key in the system keyring",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		apiKey := lo.Must(cmd.Flags().GetString("key"))

		if apiKey == "" {
			prompt := survey.Password{
				Message: "Gemini API key:",
				Help:    "Create one at https://aistudio.google.com/apikey",
			}
			handleErr(survey.AskOne(&prompt, &apiKey, survey.WithValidator(survey.Required)))
		}

		apiKey = strings.TrimSpace(apiKey)
		if apiKey == "" {
			handleErr(errors.New("empty API key"))
		}

		handleErr(auth.SetAPIKey(apiKey))
		fmt.Printf(
			"%s stored API key %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Faint(config.Mask(apiKey)),
		)
	},
}

// authStatusCmd reports which source provides the API key.
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where the API key is resolved from",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		apiKey, source, err := auth.ResolveAPIKey()
		handleErr(err)

		fmt.Printf(
			"%s API key %s from %s\n",
			icon.Get(icon.Key),
			style.Faint(config.Mask(apiKey)),
			style.Fg(color.Purple)(string(source)),
		)
	},
}

// authDeleteCmd removes the API key from the keyring.
var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the API key from the system keyring",
	Aliases: []string{"remove", "logout"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("yes")) {
			confirm := survey.Confirm{
				Message: "Remove the stored API key?",
				Default: false,
			}
			var response bool
			handleErr(survey.AskOne(&confirm, &response))

			if !response {
				return
			}
		}

		err := auth.DeleteAPIKey()
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Printf("%s no API key stored\n", icon.Get(icon.Fail))
			return
		}
		handleErr(err)

		fmt.Printf("%s removed API key\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
