package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/varoOP/seasondb/internal/app"
)

var importCmd = &cobra.Command{
	Use:   "import <anime.json>",
	Short: "Import anime records into the database",
	Long: `Import seeds the anime store from a JSON array of records. Existing
records are merged, fields missing from the file are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		n, err := application.Import(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "imported %d anime\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
