package cmd

import (
	"fmt"
	"strings"
	"time"

	"regctl/pkg/exporter"
	"regctl/pkg/schedule"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your weekly schedule to an ICS file",
	Long:  `Export your registered courses as weekly repeating events that can be imported into any calendar app.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		weekOfStr, _ := cmd.Flags().GetString("week-of")
		weeks, _ := cmd.Flags().GetInt("weeks")

		weekOf := time.Now()
		if weekOfStr != "" {
			var err error
			weekOf, err = time.ParseInLocation("2006-01-02", weekOfStr, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --week-of date (want YYYY-MM-DD): %w", err)
			}
		}

		ws, err := loadWorkspace()
		if err != nil {
			return err
		}
		if err := ws.requireLogin(); err != nil {
			return err
		}
		if len(ws.state.Registered) == 0 {
			return fmt.Errorf("no registered courses to export")
		}

		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		week := buildWeek(log, ws.state.Registered)
		exported := schedule.CourseCount(week)
		if exported == 0 {
			return fmt.Errorf("none of your registered courses has a weekly schedule to export")
		}

		if err := exporter.WriteFile(output, week, weekOf, weeks); err != nil {
			return err
		}

		fmt.Printf("Successfully exported %d of %d courses to %s\n", exported, len(ws.state.Registered), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
	exportCmd.Flags().StringP("week-of", "w", "", "Any date in the first teaching week (YYYY-MM-DD), defaults to this week")
	exportCmd.Flags().IntP("weeks", "n", exporter.DefaultWeeks, "Number of weeks the classes repeat")
}
