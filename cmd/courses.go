package cmd

import (
	"fmt"

	"regctl/pkg/render"
	"regctl/pkg/session"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Search the course catalog",
	Long:  "List catalog courses you have not registered for, filtered by a search term (code, title or professor) and department.",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		department, _ := cmd.Flags().GetString("department")

		ws, err := loadWorkspace()
		if err != nil {
			return err
		}

		state := session.SetDepartment(session.SetSearch(ws.state, search), department)
		fmt.Println(render.CourseList(session.Available(state, ws.catalog)))
		return nil
	},
}

var departmentsCmd = &cobra.Command{
	Use:   "departments",
	Short: "List the departments in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := loadWorkspace()
		if err != nil {
			return err
		}

		for _, d := range ws.catalog.Departments() {
			fmt.Println(d)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
	coursesCmd.AddCommand(departmentsCmd)
	coursesCmd.Flags().StringP("search", "s", "", "Search by course code, title, or professor")
	coursesCmd.Flags().StringP("department", "d", "all", "Filter by department")
}
