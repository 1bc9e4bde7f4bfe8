package catalog

import (
	"My-Supps-Backend/domain"
	"My-Supps-Backend/entities"
	"encoding/json"
)

func ToNutrientResponse(n entities.Nutrient) domain.NutrientResponse {
	return domain.NutrientResponse{
		ID:         n.ID.String(),
		NameJa:     n.NameJa,
		NameEn:     n.NameEn,
		Category:   n.Category,
		Unit:       n.Unit,
		RDALower:   n.RDALower,
		RDAUpper:   n.RDAUpper,
		PerKgLower: n.PerKgLower,
		PerKgUpper: n.PerKgUpper,
	}
}

func ToSupplementResponse(s entities.Supplement) domain.SupplementResponse {
	res := domain.SupplementResponse{
		ID:      s.ID.String(),
		IHerbID: s.IHerbID,
		NameJa:  s.NameJa,
		NameEn:  s.NameEn,
		Brand:   s.Brand,
	}
	if len(s.Images) > 0 {
		res.Images = json.RawMessage(s.Images)
	}
	return res
}

// ToSupplementDetailResponse joins contribution rows with the nutrient master
// list. Rows whose nutrient is unknown are skipped.
func ToSupplementDetailResponse(s entities.Supplement, rows []entities.SupplementNutrient, nutrients []entities.Nutrient) domain.SupplementDetailResponse {
	byID := make(map[string]entities.Nutrient, len(nutrients))
	for _, n := range nutrients {
		byID[n.ID.String()] = n
	}

	detail := domain.SupplementDetailResponse{
		SupplementResponse: ToSupplementResponse(s),
		Nutrients:          make([]domain.SupplementNutrientResponse, 0, len(rows)),
	}
	for _, row := range rows {
		n, ok := byID[row.NutrientID.String()]
		if !ok {
			continue
		}
		detail.Nutrients = append(detail.Nutrients, domain.SupplementNutrientResponse{
			Nutrient:              ToNutrientResponse(n),
			AmountPerServing:      row.AmountPerServing,
			AmountPerUnit:         row.AmountPerUnit,
			Unit:                  row.Unit,
			BioavailabilityFactor: row.BioavailabilityFactor,
		})
	}
	return detail
}
