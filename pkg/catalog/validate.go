package catalog

import (
	"My-Supps-Backend/domain"
	"My-Supps-Backend/entities"
	"fmt"
	"github.com/google/uuid"
	"math"
)

type contributionKey struct {
	supplementID uuid.UUID
	nutrientID   uuid.UUID
}

// ValidateContribution checks a single supplement nutrient row: amounts are
// finite and non-negative, and the bioavailability factor lies in (0, 1].
func ValidateContribution(row entities.SupplementNutrient) error {
	switch {
	case row.SupplementID == uuid.Nil || row.NutrientID == uuid.Nil:
		return fmt.Errorf("%w: missing supplement or nutrient id", domain.ErrInvalidContribution)
	case !nonNegative(row.AmountPerServing) || !nonNegative(row.AmountPerUnit):
		return fmt.Errorf("%w: negative amount for nutrient %s", domain.ErrInvalidContribution, row.NutrientID)
	case math.IsNaN(row.BioavailabilityFactor) || row.BioavailabilityFactor <= 0 || row.BioavailabilityFactor > 1:
		return fmt.Errorf("%w: bioavailability factor %v out of range for nutrient %s",
			domain.ErrInvalidContribution, row.BioavailabilityFactor, row.NutrientID)
	}
	return nil
}

// ValidateContributions validates every row and rejects a second row for the
// same (supplement, nutrient) pair.
func ValidateContributions(rows []entities.SupplementNutrient) error {
	seen := make(map[contributionKey]struct{}, len(rows))
	for _, row := range rows {
		if err := ValidateContribution(row); err != nil {
			return err
		}
		key := contributionKey{row.SupplementID, row.NutrientID}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate nutrient %s for supplement %s",
				domain.ErrInvalidContribution, row.NutrientID, row.SupplementID)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// ValidateNutrient rejects negative or non-finite bounds.
func ValidateNutrient(n entities.Nutrient) error {
	for _, bound := range []*float64{n.RDALower, n.RDAUpper, n.PerKgLower, n.PerKgUpper} {
		if bound != nil && !nonNegative(*bound) {
			return fmt.Errorf("%w: nutrient %s has an invalid bound", domain.ErrInvalidNutrient, n.ID)
		}
	}
	return nil
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
