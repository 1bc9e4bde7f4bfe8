package analyzer

import (
	"My-Supps-Backend/entities"
)

type Bounds struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// CalculateBounds turns the per-kilogram recommendations of a nutrient into
// absolute amounts for the given body weight. Missing bounds count as zero.
func CalculateBounds(nutrient entities.Nutrient, weightKg float64) Bounds {
	return Bounds{
		Lower: valueOrZero(nutrient.PerKgLower) * weightKg,
		Upper: valueOrZero(nutrient.PerKgUpper) * weightKg,
	}
}

// UpperLimit returns the effective upper bound for a nutrient: the personal
// per-kilogram bound when it is set, otherwise the absolute one. ok is false
// when the nutrient has no usable upper bound at all.
func UpperLimit(nutrient entities.Nutrient, weightKg float64) (limit float64, ok bool) {
	if nutrient.HasPerKgBounds() {
		if upper := CalculateBounds(nutrient, weightKg).Upper; upper > 0 {
			return upper, true
		}
	}
	if upper := valueOrZero(nutrient.RDAUpper); upper > 0 {
		return upper, true
	}
	return 0, false
}

// RecommendedAmount is the amount coverage is measured against, 0 when the
// nutrient has no upper bound.
func RecommendedAmount(nutrient entities.Nutrient, weightKg float64) float64 {
	limit, _ := UpperLimit(nutrient, weightKg)
	return limit
}

// Coverage is the share of the recommended amount that is met, capped at 100.
func Coverage(actualAmount, recommendedAmount float64) float64 {
	if recommendedAmount <= 0 {
		return 0
	}
	return min(actualAmount/recommendedAmount*100, 100)
}

func share(amount, total float64) float64 {
	if total == 0 {
		return 0
	}
	return amount / total * 100
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
