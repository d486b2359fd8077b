package cmd

import (
	"fmt"

	"regctl/pkg/catalog"
	"regctl/pkg/config"
	"regctl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage regctl configuration",
	Long:  "View or edit your local settings (catalog source, accent color, calendar overflow).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if !flags.Changed("catalog") && !flags.Changed("accent") && !flags.Changed("overflow") {
			// If no flags are given, launch the interactive TUI flow
			return tui.RunConfigTUI(log)
		}

		if flags.Changed("catalog") {
			source, _ := flags.GetString("catalog")
			// Make sure the new source loads before saving it.
			cat, err := catalog.NewClient(log).Load(source)
			if err != nil {
				return fmt.Errorf("could not load catalog from %q: %w", source, err)
			}
			cfg.CatalogSource = source
			fmt.Printf("✅ Catalog source set (%d courses)\n", len(cat.Courses))
		}
		if flags.Changed("accent") {
			cfg.AccentColor, _ = flags.GetString("accent")
			fmt.Printf("✅ Accent color set to %s\n", cfg.AccentColor)
		}
		if flags.Changed("overflow") {
			cfg.ShowOverflow, _ = flags.GetBool("overflow")
			fmt.Printf("✅ Calendar overflow markers: %v\n", cfg.ShowOverflow)
		}

		return config.Save(cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("catalog", "c", "", "Catalog file or URL (empty resets to the built-in catalog)")
	configCmd.Flags().StringP("accent", "a", "", "Accent color (ANSI number or #RRGGBB)")
	configCmd.Flags().Bool("overflow", false, "Mark classes outside 08:00-20:00 on the calendar instead of trimming them")
}
