// Package cmd implements the command-line interface for episodic.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/episodic-cli/episodic/auth"
	"github.com/episodic-cli/episodic/color"
	"github.com/episodic-cli/episodic/constant"
	"github.com/episodic-cli/episodic/gemini"
	"github.com/episodic-cli/episodic/guide"
	"github.com/episodic-cli/episodic/icon"
	"github.com/episodic-cli/episodic/key"
	"github.com/episodic-cli/episodic/log"
	"github.com/episodic-cli/episodic/network"
	"github.com/episodic-cli/episodic/style"
	"github.com/episodic-cli/episodic/tui"
	"github.com/episodic-cli/episodic/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("show", "s", "", "Name of the series to guide")
	lo.Must0(viper.BindPFlag(key.ShowName, rootCmd.PersistentFlags().Lookup("show")))

	rootCmd.PersistentFlags().StringP("years", "y", "", "Years the series aired, e.g. 1979-1984")
	lo.Must0(viper.BindPFlag(key.ShowYears, rootCmd.PersistentFlags().Lookup("years")))

	rootCmd.PersistentFlags().StringP("model", "m", "", "Gemini model to query")
	lo.Must0(viper.BindPFlag(key.GeminiModel, rootCmd.PersistentFlags().Lookup("model")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(commandContext(cmd), cmd.OutOrStdout())
	})
}

// rootCmd defines the entry point for the episodic application.
var rootCmd = &cobra.Command{
	Use:   constant.Episodic,
	Short: "A terminal episode guide with generated plot summaries",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Rose).Render("    - A terminal episode guide with generated plot summaries"),
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		client, err := newGuide()
		handleErr(err)

		handleErr(tui.Run(cmd.Context(), &tui.Options{Guide: client}))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiMagenta + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newGuide builds the episode guide client from configuration. A missing API
// key is reported here, before anything reaches the network.
func newGuide() (*guide.Client, error) {
	apiKey, source, err := auth.ResolveAPIKey()
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"source": source}).Debug("resolved api key")

	gen := gemini.New(
		apiKey,
		gemini.WithModel(viper.GetString(key.GeminiModel)),
		gemini.WithBaseURL(viper.GetString(key.GeminiBaseURL)),
		gemini.WithHTTPClient(network.Client),
	)

	return guide.New(gen, guide.Show{
		Name:  viper.GetString(key.ShowName),
		Years: viper.GetString(key.ShowYears),
	}), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
