package cmd

import (
	"fmt"
	"time"

	"regctl/pkg/render"
	"regctl/pkg/session"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register <course-id>...",
	Short: "Register for one or more courses",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := loadWorkspace()
		if err != nil {
			return err
		}
		if err := ws.requireLogin(); err != nil {
			return err
		}

		for _, id := range args {
			course, err := ws.catalog.ByID(id)
			if err != nil {
				fmt.Println(render.Warn(fmt.Sprintf("❌ %v", err)))
				continue
			}

			next, err := session.Register(ws.state, course, time.Now())
			if err != nil {
				fmt.Println(render.Warn(fmt.Sprintf("❌ %v", err)))
				continue
			}
			ws.state = next
			log.Info().Str("course", course.Code).Msg("registered")
			fmt.Printf("✅ Registered for %s %s\n", course.Code, course.Title)
		}

		if err := ws.save(); err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(render.Registered(ws.state))
		return nil
	},
}

var dropCmd = &cobra.Command{
	Use:   "drop <course-id>...",
	Short: "Drop one or more registered courses",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := loadWorkspace()
		if err != nil {
			return err
		}
		if err := ws.requireLogin(); err != nil {
			return err
		}

		for _, id := range args {
			next, err := session.Drop(ws.state, id)
			if err != nil {
				fmt.Println(render.Warn(fmt.Sprintf("❌ %v", err)))
				continue
			}
			ws.state = next
			log.Info().Str("course_id", id).Msg("dropped")
			fmt.Printf("🗑️ Dropped %s\n", id)
		}

		if err := ws.save(); err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(render.Registered(ws.state))
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show your registered courses and total credits",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := loadWorkspace()
		if err != nil {
			return err
		}
		if err := ws.requireLogin(); err != nil {
			return err
		}

		fmt.Println(render.Greeting(ws.state.Email))
		fmt.Println()
		fmt.Println(render.Registered(ws.state))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd, dropCmd, statusCmd)
}
