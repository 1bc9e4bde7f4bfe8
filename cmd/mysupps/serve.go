package main

import (
	"My-Supps-Backend/cmd/config"
	migration "My-Supps-Backend/cmd/database/migrate"
	"My-Supps-Backend/internal/utils"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := connect()
		if err != nil {
			return err
		}
		if autoMigrate {
			if err := migration.Migrate(db); err != nil {
				return err
			}
		}

		app, err := config.NewApp(db)
		if err != nil {
			return err
		}

		go func() {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			<-quit
			log.Info("shutting down")
			_ = app.Shutdown()
		}()

		return app.Listen(":" + utils.GetConfig("APP_PORT"))
	},
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "run database migrations before serving")
}
