package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var envFile string

// RootCmd runs the HTTP server when no subcommand is given.
var RootCmd = &cobra.Command{
	Use:           "band-service [command] [flags]",
	Short:         "Read-only catalogue of bands over HTTP",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file merged into the environment")
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
