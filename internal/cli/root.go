package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/telkam/iosetup/configs"
	"github.com/telkam/iosetup/internal/app"
	"github.com/telkam/iosetup/internal/catalog"
	"github.com/telkam/iosetup/internal/config"
	"github.com/telkam/iosetup/internal/debug"
	"github.com/telkam/iosetup/internal/gcloud"
	"github.com/telkam/iosetup/internal/prompt"
	"github.com/telkam/iosetup/internal/version"
)

// Alias version variables for compatibility
var (
	Version   = version.Version
	GitCommit = version.GitCommit
	BuildDate = version.BuildDate
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
	globalConfig  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "iosetup",
	Short: "Interactive example project setup",
	Long: `iosetup walks you through setting up a sipgate.io example project.

Run it with no arguments to:
  1. Authenticate with the cloud SDK
  2. Pick an example from the remote catalog (fuzzy search)
  3. Resolve the cloud project and deployment region
  4. Answer the example's configuration questions
  5. Save the configuration and clone the example repository

Previously saved values are validated against the current cloud listings and
reused when still valid; anything invalid falls back to an interactive
choice.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
	RunE: runSetup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&globalDebug, "debug", false, "Enable debug output")
	rootCmd.Flags().StringVarP(&globalConfig, "config", "c", "environment"+configs.Defaults.Config.FileExtension,
		"Previously saved configuration to reconcile against")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	printer := NewPrinter(globalNoColor, globalQuiet)
	prompts := prompt.NewSurvey(prompt.Options{PageSize: 10})

	result, err := app.Setup(cmd.Context(), app.Options{
		Catalog:    catalog.NewClient(),
		Cloud:      gcloud.NewClient(gcloud.ExecRunner{}),
		Prompts:    prompts,
		Notify:     printer,
		Store:      config.NewFileStore(),
		ConfigPath: globalConfig,
	})
	if err != nil {
		printer.Errorf("Setup failed: %v", err)
		return err
	}

	printer.Successf("%s is configured for project %s in %s",
		result.Example, result.Project, result.Region)
	return nil
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
