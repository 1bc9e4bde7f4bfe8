package simulation

import (
	"My-Supps-Backend/domain"
	"My-Supps-Backend/pkg/analyzer"
	"My-Supps-Backend/pkg/catalog"
)

func ToSimulationResponse(result analyzer.Result) domain.SimulationResponse {
	res := domain.SimulationResponse{
		Nutrients:          make([]domain.NutrientCoverageResponse, 0, len(result.Nutrients)),
		Warnings:           result.Warnings,
		CoveragePercentage: result.CoveragePercentage,
		WeightKg:           result.WeightKg,
		Supplements:        make([]domain.SupplementResponse, 0, len(result.Supplements)),
	}
	if res.Warnings == nil {
		res.Warnings = []string{}
	}

	for _, n := range result.Nutrients {
		coverage := domain.NutrientCoverageResponse{
			Nutrient:          catalog.ToNutrientResponse(n.Nutrient),
			ActualAmount:      n.ActualAmount,
			RecommendedAmount: n.RecommendedAmount,
			Coverage:          n.Coverage,
			Display:           analyzer.FormatAmount(n.ActualAmount, n.Nutrient.Unit),
			Contributions:     make([]domain.ContributionResponse, 0, len(n.Contributions)),
		}
		for _, c := range n.Contributions {
			coverage.Contributions = append(coverage.Contributions, domain.ContributionResponse{
				SupplementID:   c.Supplement.ID.String(),
				SupplementName: supplementName(c.Supplement.NameEn, c.Supplement.NameJa),
				Brand:          c.Supplement.Brand,
				Amount:         c.Amount,
				Percentage:     c.Percentage,
			})
		}
		res.Nutrients = append(res.Nutrients, coverage)
	}

	for _, s := range result.Supplements {
		res.Supplements = append(res.Supplements, catalog.ToSupplementResponse(s))
	}
	return res
}

func supplementName(en, ja string) string {
	if en != "" {
		return en
	}
	return ja
}
