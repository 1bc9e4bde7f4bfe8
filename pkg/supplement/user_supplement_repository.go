package supplement

import (
	"My-Supps-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	UserSupplementRepository interface {
		AddUserSupplement(ctx context.Context, userSupplement *entities.UserSupplement) error
		GetUserSupplementByID(ctx context.Context, id string) (*entities.UserSupplement, error)
		GetUserSupplementBySupplementID(ctx context.Context, userID, supplementID string) (*entities.UserSupplement, error)
		GetUserSupplements(ctx context.Context, userID string) ([]*entities.UserSupplement, error)
		GetSelectedSupplementIDs(ctx context.Context, userID string) ([]string, error)
		UpdateUserSupplement(ctx context.Context, userSupplement *entities.UserSupplement) error
		DeleteUserSupplement(ctx context.Context, id string) error
	}

	userSupplementRepository struct {
		db *gorm.DB
	}
)

func NewUserSupplementRepository(db *gorm.DB) UserSupplementRepository {
	return &userSupplementRepository{db: db}
}

func (r *userSupplementRepository) AddUserSupplement(ctx context.Context, userSupplement *entities.UserSupplement) error {
	return r.db.WithContext(ctx).Create(userSupplement).Error
}

func (r *userSupplementRepository) GetUserSupplementByID(ctx context.Context, id string) (*entities.UserSupplement, error) {
	var userSupplement entities.UserSupplement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userSupplement).Error; err != nil {
		return nil, err
	}
	return &userSupplement, nil
}

func (r *userSupplementRepository) GetUserSupplementBySupplementID(ctx context.Context, userID, supplementID string) (*entities.UserSupplement, error) {
	var userSupplement entities.UserSupplement
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND supplement_id = ?", userID, supplementID).
		First(&userSupplement).Error; err != nil {
		return nil, err
	}
	return &userSupplement, nil
}

func (r *userSupplementRepository) GetUserSupplements(ctx context.Context, userID string) ([]*entities.UserSupplement, error) {
	var userSupplements []*entities.UserSupplement
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at desc").
		Find(&userSupplements).Error; err != nil {
		return nil, err
	}
	return userSupplements, nil
}

// GetSelectedSupplementIDs returns the supplements the user takes, oldest
// first, so a simulation seeded from them is stable.
func (r *userSupplementRepository) GetSelectedSupplementIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&entities.UserSupplement{}).
		Where("user_id = ? AND is_selected = ?", userID, true).
		Order("added_at asc").
		Pluck("supplement_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *userSupplementRepository) UpdateUserSupplement(ctx context.Context, userSupplement *entities.UserSupplement) error {
	return r.db.WithContext(ctx).Save(userSupplement).Error
}

func (r *userSupplementRepository) DeleteUserSupplement(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.UserSupplement{}).Error
}
