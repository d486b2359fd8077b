package cmd

import (
	"fmt"

	"regctl/pkg/catalog"
	"regctl/pkg/render"
	"regctl/pkg/schedule"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show your weekly class calendar",
	Long:  "Render the Monday to Friday calendar (08:00-20:00, 30 minute rows) for your registered courses.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := loadWorkspace()
		if err != nil {
			return err
		}
		if err := ws.requireLogin(); err != nil {
			return err
		}

		overflow, _ := cmd.Flags().GetBool("overflow")
		week := buildWeek(log, ws.state.Registered)

		fmt.Println(render.Week(week, ws.state.Registered, render.CalendarOptions{
			Window:   schedule.DefaultWindow,
			Overflow: overflow || ws.cfg.ShowOverflow,
		}))
		return nil
	},
}

// buildWeek lays out the registered courses and logs everything that could
// not be placed on the calendar.
func buildWeek(log zerolog.Logger, registered []catalog.RegisteredCourse) []schedule.DaySchedule {
	report := schedule.BuildWeeklyReport(registered)

	for _, s := range report.Skipped {
		event := log.Warn().
			Str("course", s.Course.Code).
			Str("schedule", s.Course.Schedule).
			Str("reason", string(s.Reason))
		if s.Token != "" {
			event = event.Str("day", s.Token)
		}
		if s.Err != nil {
			event = event.Err(s.Err)
		}
		event.Msg("not shown on the weekly calendar")
	}

	return report.Week
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.Flags().Bool("overflow", false, "Mark classes that run outside 08:00-20:00 instead of trimming them")
}
