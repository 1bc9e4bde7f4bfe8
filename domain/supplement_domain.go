package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	MessageSuccessGetSupplements      = "supplements retrieved successfully"
	MessageSuccessGetSupplementDetail = "supplement detail retrieved successfully"
	MessageSuccessLookupSupplement    = "supplement found"
	MessageSuccessGetMySupps          = "my supplements retrieved successfully"
	MessageSuccessAddMySupp           = "supplement added to my supplements"
	MessageSuccessUpdateMySupp        = "my supplement updated successfully"
	MessageSuccessRemoveMySupp        = "supplement removed from my supplements"

	MessageFailedGetSupplements      = "failed to retrieve supplements"
	MessageFailedGetSupplementDetail = "failed to retrieve supplement detail"
	MessageFailedLookupSupplement    = "failed to look up supplement"
	MessageFailedGetMySupps          = "failed to retrieve my supplements"
	MessageFailedAddMySupp           = "failed to add supplement"
	MessageFailedUpdateMySupp        = "failed to update my supplement"
	MessageFailedRemoveMySupp        = "failed to remove supplement"

	ErrSupplementNotFound     = errors.New("supplement not found")
	ErrUserSupplementNotFound = errors.New("supplement is not in my supplements")
	ErrAlreadyOwned           = errors.New("supplement already in my supplements")
	ErrInvalidProductURL      = errors.New("unsupported product URL")
	ErrMissingSupplementRef   = errors.New("either supplement_id or product_url is required")
	ErrInvalidContribution    = errors.New("invalid supplement nutrient record")
)

type (
	SupplementResponse struct {
		ID      string          `json:"id"`
		IHerbID string          `json:"iherb_id,omitempty"`
		NameJa  string          `json:"name_ja"`
		NameEn  string          `json:"name_en,omitempty"`
		Brand   string          `json:"brand"`
		Images  json.RawMessage `json:"images,omitempty"`
	}

	SupplementNutrientResponse struct {
		Nutrient              NutrientResponse `json:"nutrient"`
		AmountPerServing      float64          `json:"amount_per_serving"`
		AmountPerUnit         float64          `json:"amount_per_unit"`
		Unit                  string           `json:"unit"`
		BioavailabilityFactor float64          `json:"bioavailability_factor"`
	}

	SupplementDetailResponse struct {
		SupplementResponse
		Nutrients []SupplementNutrientResponse `json:"nutrients"`
	}

	LookupSupplementRequest struct {
		URL string `json:"url" validate:"required,url"`
	}

	AddMySuppRequest struct {
		SupplementID string `json:"supplement_id" validate:"omitempty,uuid"`
		ProductURL   string `json:"product_url" validate:"omitempty,url"`
		IsSelected   bool   `json:"is_selected"`
		DailyIntake  int    `json:"daily_intake" validate:"omitempty,min=1,max=20"`
	}

	UpdateMySuppRequest struct {
		IsSelected  *bool   `json:"is_selected"`
		DailyIntake *int    `json:"daily_intake" validate:"omitempty,min=1,max=20"`
		Notes       *string `json:"notes" validate:"omitempty,max=500"`
	}

	MySuppResponse struct {
		ID          string             `json:"id"`
		Supplement  SupplementResponse `json:"supplement"`
		IsSelected  bool               `json:"is_selected"`
		DailyIntake int                `json:"daily_intake"`
		Notes       string             `json:"notes,omitempty"`
		AddedAt     time.Time          `json:"added_at"`
	}
)
