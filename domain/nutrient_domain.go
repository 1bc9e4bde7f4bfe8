package domain

import (
	"errors"
)

var (
	MessageSuccessGetNutrients = "nutrients retrieved successfully"
	MessageFailedGetNutrients  = "failed to retrieve nutrients"

	ErrNutrientNotFound = errors.New("nutrient not found")
	ErrInvalidNutrient  = errors.New("invalid nutrient record")
)

type (
	NutrientResponse struct {
		ID         string   `json:"id"`
		NameJa     string   `json:"name_ja"`
		NameEn     string   `json:"name_en,omitempty"`
		Category   string   `json:"category"`
		Unit       string   `json:"unit"`
		RDALower   *float64 `json:"rda_lower,omitempty"`
		RDAUpper   *float64 `json:"rda_upper,omitempty"`
		PerKgLower *float64 `json:"per_kg_lower,omitempty"`
		PerKgUpper *float64 `json:"per_kg_upper,omitempty"`
	}
)
