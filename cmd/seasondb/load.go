package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/varoOP/seasondb/internal/app"
)

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Load and review a season file",
	Long: `Load reads a season file from the season directory and updates the anime store:
1. Upserts every anime listed in the file
2. Removes anime that aired outside the season, or adult content when hidden
3. Adds stored anime that belong to the season but are missing from the file
4. Reports whether the season data needs a refresh`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reportPath, _ := cmd.Flags().GetString("report")

		// Initialize application
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		s, err := application.LoadSeason(cmd.Context(), args[0], reportPath)
		if err != nil {
			return fmt.Errorf("load failed: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d items (%d removed, %d added)\n", s.Name, len(s.Items), len(s.Review.Removed), len(s.Review.Added))
		if len(s.Items) > 0 {
			fmt.Fprintln(out, renderAnimeTable(s.Items))
		}
		if s.RefreshRequired {
			fmt.Fprintln(out, "Season data is incomplete, a refresh is required.")
		}

		return nil
	},
}

func init() {
	loadCmd.Flags().String("report", "", "write a YAML season report to this path")
	rootCmd.AddCommand(loadCmd)
}
