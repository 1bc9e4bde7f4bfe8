package user

import (
	"My-Supps-Backend/domain"
	"My-Supps-Backend/entities"
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProfileService interface {
		GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.ProfileResponse, error)
		// GetWeight returns the recorded body weight, or the default weight
		// when the user has not recorded one.
		GetWeight(ctx context.Context, userID string) (float64, error)
	}

	profileService struct {
		profileRepository ProfileRepository
		defaultWeightKg   float64
	}
)

func NewProfileService(profileRepository ProfileRepository, defaultWeightKg float64) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		defaultWeightKg:   defaultWeightKg,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ProfileResponse{}, domain.ErrParseUUID
	}

	profile, err := s.profileRepository.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.toResponse(&entities.UserProfile{UserID: userUUID}), nil
		}
		return domain.ProfileResponse{}, err
	}
	return s.toResponse(profile), nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.ProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ProfileResponse{}, domain.ErrParseUUID
	}

	profile, err := s.profileRepository.GetProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, err
		}
		profile = &entities.UserProfile{UserID: userUUID}
	}

	if req.WeightKg != nil {
		if err := domain.ValidateWeight(*req.WeightKg); err != nil {
			return domain.ProfileResponse{}, err
		}
		profile.WeightKg = req.WeightKg
	}
	if req.HeightCm != nil {
		profile.HeightCm = req.HeightCm
	}
	if req.Age != nil {
		profile.Age = req.Age
	}
	if req.Gender != "" {
		switch req.Gender {
		case "male", "female", "other":
			profile.Gender = req.Gender
		default:
			return domain.ProfileResponse{}, domain.ErrInvalidGender
		}
	}

	if err := s.profileRepository.SaveProfile(ctx, profile); err != nil {
		return domain.ProfileResponse{}, err
	}
	return s.toResponse(profile), nil
}

func (s *profileService) GetWeight(ctx context.Context, userID string) (float64, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return 0, err
	}
	return profile.WeightKg, nil
}

func (s *profileService) toResponse(profile *entities.UserProfile) domain.ProfileResponse {
	res := domain.ProfileResponse{
		UserID:   profile.UserID.String(),
		WeightKg: s.defaultWeightKg,
		HeightCm: profile.HeightCm,
		Age:      profile.Age,
		Gender:   profile.Gender,
	}
	if profile.WeightKg != nil && domain.ValidateWeight(*profile.WeightKg) == nil {
		res.WeightKg = *profile.WeightKg
	} else {
		res.IsDefaultWeight = true
	}
	return res
}
