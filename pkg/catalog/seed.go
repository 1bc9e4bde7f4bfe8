package catalog

import (
	"My-Supps-Backend/entities"
	"context"
	"fmt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed writes the fixtures into db. Rows that already exist are left alone,
// so seeding twice is harmless.
func Seed(ctx context.Context, db *gorm.DB, fixtures Fixtures) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		onConflict := tx.Clauses(clause.OnConflict{DoNothing: true}).Session(&gorm.Session{})

		for _, n := range fixtures.Nutrients {
			if err := ValidateNutrient(n); err != nil {
				return err
			}
		}
		if err := ValidateContributions(fixtures.Contributions); err != nil {
			return err
		}

		if len(fixtures.Nutrients) > 0 {
			if err := onConflict.Create(&fixtures.Nutrients).Error; err != nil {
				return fmt.Errorf("seed nutrients: %w", err)
			}
		}
		if len(fixtures.Supplements) > 0 {
			if err := onConflict.Omit("Nutrients").Create(&fixtures.Supplements).Error; err != nil {
				return fmt.Errorf("seed supplements: %w", err)
			}
		}
		if len(fixtures.Contributions) > 0 {
			rows := make([]entities.SupplementNutrient, len(fixtures.Contributions))
			for i, row := range fixtures.Contributions {
				row.Position = i
				row.Nutrient = nil
				rows[i] = row
			}
			if err := onConflict.Create(&rows).Error; err != nil {
				return fmt.Errorf("seed supplement nutrients: %w", err)
			}
		}
		return nil
	})
}
