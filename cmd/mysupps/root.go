package main

import (
	"My-Supps-Backend/cmd/config"
	"My-Supps-Backend/internal/utils"
	"context"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// rootCtx is the root context for all commands.
var rootCtx = context.Background()

// configFile is the yaml file read before any command runs.
var configFile string

var rootCmd = &cobra.Command{
	Use:           "mysupps",
	Short:         "Supplement nutrient coverage service.",
	Long:          `mysupps serves the supplement catalog and personal nutrient simulations, and offers maintenance commands for its database.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		utils.LoadConfigFrom(configFile)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "config.yaml", "path to the yaml config file")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, simulateCmd, tokenCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func connect() (*gorm.DB, error) {
	return config.ConnectDB()
}
