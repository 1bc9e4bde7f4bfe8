package migration

import (
	"My-Supps-Backend/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	}

	if err := db.AutoMigrate(&entities.Nutrient{}); err != nil {
		log.Errorf("Error migrating nutrient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Supplement{}, &entities.SupplementNutrient{}); err != nil {
		log.Errorf("Error migrating supplement database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserProfile{}, &entities.UserSupplement{}); err != nil {
		log.Errorf("Error migrating user database: %v", err)
		return err
	}

	log.Info("Database migration complete")
	return nil
}
