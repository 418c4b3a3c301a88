package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/droidkeys/internal/cli/styles"
	"github.com/bnema/droidkeys/internal/domain/keymap"
)

var (
	lookupScan uint32
	lookupKey  uint32
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Show the physical and logical ids of an Android key",
	Long: `Map an Android scan code and key code to the physical and logical key
ids sent to the framework.

Examples:
  droidkeys lookup --scan 30 --key 29    # KeyA
  droidkeys lookup --key 131             # F1 without a scan code`,
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().Uint32Var(&lookupScan, "scan", 0, "hardware scan code (0 = none)")
	lookupCmd.Flags().Uint32Var(&lookupKey, "key", 0, "Android key code")
}

func runLookup(cmd *cobra.Command, _ []string) error {
	if lookupScan == 0 && lookupKey == 0 {
		return fmt.Errorf("at least one of --scan or --key is required")
	}

	keys := keymap.Default()
	renderer := styles.NewLookupRenderer(styles.NewTheme())
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(styles.KeyLookup{
		ScanCode: lookupScan,
		KeyCode:  lookupKey,
		Physical: keys.PhysicalKeyFor(lookupScan, lookupKey),
		Logical:  keys.LogicalKeyFor(lookupKey),
	}))
	return nil
}
