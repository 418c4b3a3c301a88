package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/droidkeys/internal/cli/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Display the config file in use and every setting after defaults and
DROIDKEYS_* environment overrides have been applied.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(app.ConfigFile, app.Config))
	return nil
}
