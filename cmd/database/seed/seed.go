package seed

import (
	"My-Supps-Backend/pkg/catalog"
	"context"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Seed loads the demo catalog into db.
func Seed(ctx context.Context, db *gorm.DB) error {
	fixtures := catalog.DefaultFixtures()
	if err := catalog.Seed(ctx, db, fixtures); err != nil {
		log.Errorf("Error seeding catalog: %v", err)
		return err
	}

	log.Infof("Seeded %d nutrients and %d supplements", len(fixtures.Nutrients), len(fixtures.Supplements))
	return nil
}
