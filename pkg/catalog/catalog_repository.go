package catalog

import (
	"My-Supps-Backend/entities"
	"context"
	"fmt"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// CatalogRepository is the read side of the supplement catalog. It has a
	// database backed and a fixture backed implementation.
	CatalogRepository interface {
		ListNutrients(ctx context.Context) ([]entities.Nutrient, error)
		ListContributions(ctx context.Context, supplementID string) ([]entities.SupplementNutrient, error)
		ListContributionsFor(ctx context.Context, supplementIDs []uuid.UUID) (map[uuid.UUID][]entities.SupplementNutrient, error)
		GetSupplementByID(ctx context.Context, id string) (*entities.Supplement, error)
		GetSupplementByIHerbID(ctx context.Context, iherbID string) (*entities.Supplement, error)
		GetSupplementsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Supplement, error)
		GetSupplements(ctx context.Context, query string, page, limit int) ([]*entities.Supplement, int64, error)
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListNutrients(ctx context.Context) ([]entities.Nutrient, error) {
	var nutrients []entities.Nutrient
	if err := r.db.WithContext(ctx).
		Order("sort_order asc").
		Order("name_ja asc").
		Order("id asc").
		Find(&nutrients).Error; err != nil {
		return nil, fmt.Errorf("list nutrients: %w", err)
	}
	for _, n := range nutrients {
		if err := ValidateNutrient(n); err != nil {
			return nil, err
		}
	}
	return nutrients, nil
}

func (r *catalogRepository) ListContributions(ctx context.Context, supplementID string) ([]entities.SupplementNutrient, error) {
	var rows []entities.SupplementNutrient
	if err := r.db.WithContext(ctx).
		Where("supplement_id = ?", supplementID).
		Order("position asc").
		Order("nutrient_id asc").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list contributions of %s: %w", supplementID, err)
	}
	if err := ValidateContributions(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *catalogRepository) ListContributionsFor(ctx context.Context, supplementIDs []uuid.UUID) (map[uuid.UUID][]entities.SupplementNutrient, error) {
	out := make(map[uuid.UUID][]entities.SupplementNutrient, len(supplementIDs))
	if len(supplementIDs) == 0 {
		return out, nil
	}

	var rows []entities.SupplementNutrient
	if err := r.db.WithContext(ctx).
		Where("supplement_id IN ?", supplementIDs).
		Order("supplement_id asc").
		Order("position asc").
		Order("nutrient_id asc").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}
	if err := ValidateContributions(rows); err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.SupplementID] = append(out[row.SupplementID], row)
	}
	return out, nil
}

func (r *catalogRepository) GetSupplementByID(ctx context.Context, id string) (*entities.Supplement, error) {
	var supplement entities.Supplement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&supplement).Error; err != nil {
		return nil, err
	}
	return &supplement, nil
}

func (r *catalogRepository) GetSupplementByIHerbID(ctx context.Context, iherbID string) (*entities.Supplement, error) {
	var supplement entities.Supplement
	if err := r.db.WithContext(ctx).Where("iherb_id = ?", iherbID).First(&supplement).Error; err != nil {
		return nil, err
	}
	return &supplement, nil
}

func (r *catalogRepository) GetSupplementsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Supplement, error) {
	if len(ids) == 0 {
		return []*entities.Supplement{}, nil
	}

	var found []*entities.Supplement
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}

	// keep the caller's order
	byID := make(map[uuid.UUID]*entities.Supplement, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}
	supplements := make([]*entities.Supplement, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			supplements = append(supplements, s)
		}
	}
	return supplements, nil
}

func (r *catalogRepository) GetSupplements(ctx context.Context, query string, page, limit int) ([]*entities.Supplement, int64, error) {
	var supplements []*entities.Supplement
	var count int64

	offset := (page - 1) * limit

	db := r.db.WithContext(ctx).Model(&entities.Supplement{})
	if query != "" {
		like := "%" + query + "%"
		db = db.Where("name_ja LIKE ? OR name_en LIKE ? OR brand LIKE ?", like, like, like)
	}

	if err := db.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).Order("brand asc").Order("name_en asc").Find(&supplements).Error; err != nil {
		return nil, 0, err
	}

	return supplements, count, nil
}
