package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/varoOP/seasondb/internal/app"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check whether a season needs a refresh",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		required, err := application.CheckRefresh(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}

		if required {
			fmt.Fprintln(cmd.OutOrStdout(), "refresh required")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "up to date")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
