package cmd

import (
	"regctl/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to sign in, browse and filter courses, manage registrations and view your calendar.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI(log)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
