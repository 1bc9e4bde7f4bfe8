package domain

import (
	"errors"
	"math"
)

const (
	RoleUser = "user"
	//ROLE_ADMIN  = "admin"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageSuccessPing          = "pong"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrMissingSecret  = errors.New("JWT_SECRET is not configured")

	// ErrReferenceDataUnavailable is returned when the nutrient master list or
	// contribution rows cannot be loaded before an analysis.
	ErrReferenceDataUnavailable = errors.New("reference data unavailable")
	ErrInvalidWeight            = errors.New("weight must be a positive, finite number")
)

const MaxWeightKg = 500

// ValidateWeight rejects body weights the analyzer cannot work with.
func ValidateWeight(weightKg float64) error {
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg <= 0 || weightKg > MaxWeightKg {
		return ErrInvalidWeight
	}
	return nil
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}
}
