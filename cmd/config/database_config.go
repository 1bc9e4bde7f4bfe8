package config

import (
	"My-Supps-Backend/internal/utils"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the database selected by DB_DRIVER. sqlite is the local
// default; postgres is used in deployments.
func ConnectDB() (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver := utils.GetConfig("DB_DRIVER"); driver {
	case utils.DriverPostgres:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Tokyo",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	case utils.DriverSQLite, "":
		dialector = sqlite.Open(utils.GetConfig("DB_SQLITE_PATH"))
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Errorf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}
