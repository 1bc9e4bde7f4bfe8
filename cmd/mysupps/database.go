package main

import (
	migration "My-Supps-Backend/cmd/database/migrate"
	"My-Supps-Backend/cmd/database/seed"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := connect()
		if err != nil {
			return err
		}
		return migration.Migrate(db)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo catalog into the database.",
	Long:  `Loads the demo nutrients, supplements and their nutrient amounts. Existing rows are kept, so running it twice is safe.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := connect()
		if err != nil {
			return err
		}
		if err := migration.Migrate(db); err != nil {
			return err
		}
		return seed.Seed(rootCtx, db)
	},
}
