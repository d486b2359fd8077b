package cmd

import (
	"fmt"

	"regctl/pkg/render"
	"regctl/pkg/session"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the registration portal",
	Long:  "Sign in with your student email and password. Credentials are not checked against any server.",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		ws, err := loadWorkspace()
		if err != nil {
			return err
		}

		ws.state, err = session.Login(ws.state, email, password)
		if err != nil {
			return err
		}
		if err := ws.save(); err != nil {
			return err
		}

		log.Info().Str("email", ws.state.Email).Msg("logged in")
		fmt.Println(render.Greeting(ws.state.Email))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear your registrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := loadWorkspace()
		if err != nil {
			return err
		}

		dropped := len(ws.state.Registered)
		ws.state = session.Logout(ws.state)
		if err := ws.save(); err != nil {
			return err
		}

		fmt.Printf("Logged out. %d registration(s) cleared.\n", dropped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd)
	loginCmd.Flags().StringP("email", "e", "", "Student email address")
	loginCmd.Flags().StringP("password", "p", "", "Password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}
