package cmd

import (
	"fmt"
	"os"

	"regctl/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var log = zerolog.Nop()

var rootCmd = &cobra.Command{
	Use:   "regctl",
	Short: "A CLI and TUI for course registration",
	Long: `regctl lets students browse the course catalog, register for and drop
courses, and view or export their weekly class schedule.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load() // .env is optional

		level, _ := cmd.Flags().GetString("log-level")
		if level == "" {
			level = os.Getenv("REGCTL_LOG_LEVEL")
		}
		format, _ := cmd.Flags().GetString("log-format")
		if format == "" {
			format = os.Getenv("REGCTL_LOG_FORMAT")
		}

		log = logger.Setup(level, format)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error); defaults to $REGCTL_LOG_LEVEL or warn")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (pretty, json); defaults to $REGCTL_LOG_FORMAT or pretty")
}
