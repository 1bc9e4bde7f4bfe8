package domain

import (
	"errors"
)

var (
	MessageSuccessGetProfile    = "profile retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"

	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedUpdateProfile = "failed to update profile"

	ErrInvalidGender = errors.New("invalid gender")
)

type (
	ProfileResponse struct {
		UserID   string   `json:"user_id"`
		WeightKg float64  `json:"weight_kg"`
		HeightCm *float64 `json:"height_cm,omitempty"`
		Age      *int     `json:"age,omitempty"`
		Gender   string   `json:"gender,omitempty"`
		// IsDefaultWeight is set when no weight was recorded yet.
		IsDefaultWeight bool `json:"is_default_weight"`
	}

	UpdateProfileRequest struct {
		WeightKg *float64 `json:"weight_kg" validate:"omitempty,gt=0,lte=500,finite"`
		HeightCm *float64 `json:"height_cm" validate:"omitempty,gt=0,lte=300,finite"`
		Age      *int     `json:"age" validate:"omitempty,min=1,max=150"`
		Gender   string   `json:"gender" validate:"omitempty,oneof=male female other"`
	}
)
