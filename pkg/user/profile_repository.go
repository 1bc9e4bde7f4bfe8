package user

import (
	"My-Supps-Backend/entities"
	"context"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	ProfileRepository interface {
		GetProfile(ctx context.Context, userID string) (*entities.UserProfile, error)
		SaveProfile(ctx context.Context, profile *entities.UserProfile) error
	}

	profileRepository struct {
		db *gorm.DB
	}
)

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetProfile(ctx context.Context, userID string) (*entities.UserProfile, error) {
	var profile entities.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveProfile inserts the profile or overwrites the stored one.
func (r *profileRepository) SaveProfile(ctx context.Context, profile *entities.UserProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"weight_kg", "height_cm", "age", "gender", "updated_at"}),
		}).
		Create(profile).Error
}
