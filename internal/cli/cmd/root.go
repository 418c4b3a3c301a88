// Package cmd provides Cobra CLI commands for droidkeys.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/droidkeys/internal/cli"
	"github.com/bnema/droidkeys/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configPath string
	rootCmd    = &cobra.Command{
		Use:   "droidkeys",
		Short: "Replay Android key events through a Flutter-style keyboard embedding",
		Long: `droidkeys - Android keyboard input reconciliation and dispatch.

Raw Android key events are mapped to physical and logical key ids, modifier
and lock state is reconciled against the event's meta state, and canonical
key events are sent to the framework over flutter/keydata and
flutter/keyevent. Events nobody handles are handed back to the host.

Use 'droidkeys replay <trace.yaml>' to run a recorded trace through the
whole pipeline, or 'droidkeys lookup' to inspect key identities.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "lookup":
				return nil
			}

			var err error
			app, err = cli.NewApp(configPath)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/droidkeys/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
