package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/varoOP/seasondb/internal/app"
)

var searchCmd = &cobra.Command{
	Use:   "search <file> <query>",
	Short: "Search the titles of a season",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		results, err := application.Search(cmd.Context(), args[0], strings.Join(args[1:], " "))
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no matches")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderAnimeTable(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
