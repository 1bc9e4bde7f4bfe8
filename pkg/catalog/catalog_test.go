package catalog

import (
	"My-Supps-Backend/domain"
	"My-Supps-Backend/entities"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entities.Nutrient{}, &entities.Supplement{}, &entities.SupplementNutrient{}))
	return db
}

func seededRepository(t *testing.T) CatalogRepository {
	t.Helper()
	db := newTestDB(t)
	require.NoError(t, Seed(context.Background(), db, DefaultFixtures()))
	return NewCatalogRepository(db)
}

// Both implementations must answer the same questions the same way.
func repositories(t *testing.T) map[string]CatalogRepository {
	return map[string]CatalogRepository{
		"gorm":    seededRepository(t),
		"fixture": NewFixtureCatalog(DefaultFixtures()),
	}
}

func TestListNutrients(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			nutrients, err := repo.ListNutrients(context.Background())
			require.NoError(t, err)
			require.Len(t, nutrients, 5)

			names := make([]string, 0, len(nutrients))
			for _, n := range nutrients {
				names = append(names, n.NameEn)
			}
			assert.Equal(t, []string{"Vitamin D", "Magnesium", "Vitamin C", "Zinc", "Vitamin B12"}, names)
			assert.InDelta(t, 0.0015, *nutrients[0].PerKgUpper, 1e-12)
		})
	}
}

func TestListContributions(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			rows, err := repo.ListContributions(ctx, VitaminD3ID.String())
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, NutrientVitaminDID, rows[0].NutrientID)
			assert.Equal(t, 125.0, rows[0].AmountPerServing)
			assert.Equal(t, 0.8, rows[0].BioavailabilityFactor)

			rows, err = repo.ListContributions(ctx, AshwagandhaID.String())
			require.NoError(t, err)
			assert.Empty(t, rows)

			byID, err := repo.ListContributionsFor(ctx, []uuid.UUID{VitaminD3ID, MagnesiumID})
			require.NoError(t, err)
			assert.Len(t, byID[VitaminD3ID], 1)
			assert.Len(t, byID[MagnesiumID], 1)
			assert.Equal(t, 0.4, byID[MagnesiumID][0].BioavailabilityFactor)
		})
	}
}

func TestGetSupplements(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			all, total, err := repo.GetSupplements(ctx, "", 1, 20)
			require.NoError(t, err)
			assert.Equal(t, int64(3), total)
			assert.Len(t, all, 3)

			page, total, err := repo.GetSupplements(ctx, "", 2, 2)
			require.NoError(t, err)
			assert.Equal(t, int64(3), total)
			assert.Len(t, page, 1)

			filtered, total, err := repo.GetSupplements(ctx, "Thorne", 1, 20)
			require.NoError(t, err)
			assert.Equal(t, int64(1), total)
			require.Len(t, filtered, 1)
			assert.Equal(t, AshwagandhaID, filtered[0].ID)
		})
	}
}

func TestGetSupplementLookups(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			s, err := repo.GetSupplementByIHerbID(ctx, "NOW-00490")
			require.NoError(t, err)
			assert.Equal(t, MagnesiumID, s.ID)

			_, err = repo.GetSupplementByID(ctx, uuid.NewString())
			assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

			ordered, err := repo.GetSupplementsByIDs(ctx, []uuid.UUID{AshwagandhaID, uuid.New(), VitaminD3ID})
			require.NoError(t, err)
			require.Len(t, ordered, 2)
			assert.Equal(t, AshwagandhaID, ordered[0].ID)
			assert.Equal(t, VitaminD3ID, ordered[1].ID)
		})
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, Seed(ctx, db, DefaultFixtures()))
	require.NoError(t, Seed(ctx, db, DefaultFixtures()))

	var count int64
	require.NoError(t, db.Model(&entities.Nutrient{}).Count(&count).Error)
	assert.Equal(t, int64(5), count)
	require.NoError(t, db.Model(&entities.SupplementNutrient{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestRepositoryRejectsInvalidContribution(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, Seed(ctx, db, DefaultFixtures()))
	require.NoError(t, db.Model(&entities.SupplementNutrient{}).
		Where("supplement_id = ?", VitaminD3ID).
		Update("amount_per_serving", -1).Error)

	_, err := NewCatalogRepository(db).ListContributions(ctx, VitaminD3ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidContribution)
}

func TestFixtureCatalogRejectsInvalidNutrient(t *testing.T) {
	fixtures := DefaultFixtures()
	negative := -1.0
	fixtures.Nutrients[1].RDALower = &negative

	_, err := NewFixtureCatalog(fixtures).ListNutrients(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidNutrient)
}

func TestValidateContribution(t *testing.T) {
	valid := entities.SupplementNutrient{
		SupplementID:          uuid.New(),
		NutrientID:            uuid.New(),
		AmountPerServing:      10,
		AmountPerUnit:         10,
		BioavailabilityFactor: 1,
	}

	tests := []struct {
		name   string
		mutate func(row *entities.SupplementNutrient)
		ok     bool
	}{
		{"valid", func(row *entities.SupplementNutrient) {}, true},
		{"zero amount", func(row *entities.SupplementNutrient) { row.AmountPerServing = 0 }, true},
		{"negative amount", func(row *entities.SupplementNutrient) { row.AmountPerServing = -1 }, false},
		{"nan amount", func(row *entities.SupplementNutrient) { row.AmountPerUnit = math.NaN() }, false},
		{"zero factor", func(row *entities.SupplementNutrient) { row.BioavailabilityFactor = 0 }, false},
		{"factor above one", func(row *entities.SupplementNutrient) { row.BioavailabilityFactor = 1.2 }, false},
		{"missing nutrient", func(row *entities.SupplementNutrient) { row.NutrientID = uuid.Nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := valid
			tt.mutate(&row)
			err := ValidateContribution(row)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidContribution)
			}
		})
	}
}

func TestValidateContributionsRejectsDuplicates(t *testing.T) {
	row := entities.SupplementNutrient{
		SupplementID:          uuid.New(),
		NutrientID:            uuid.New(),
		AmountPerServing:      1,
		BioavailabilityFactor: 1,
	}
	assert.NoError(t, ValidateContributions([]entities.SupplementNutrient{row}))
	assert.ErrorIs(t, ValidateContributions([]entities.SupplementNutrient{row, row}), domain.ErrInvalidContribution)
}

func TestValidateNutrient(t *testing.T) {
	negative := -1.0
	inf := math.Inf(1)
	assert.NoError(t, ValidateNutrient(entities.Nutrient{}))
	assert.ErrorIs(t, ValidateNutrient(entities.Nutrient{RDAUpper: &negative}), domain.ErrInvalidNutrient)
	assert.ErrorIs(t, ValidateNutrient(entities.Nutrient{PerKgLower: &inf}), domain.ErrInvalidNutrient)
}

func TestParseIHerbID(t *testing.T) {
	tests := []struct {
		url  string
		want string
		err  error
	}{
		{"https://www.iherb.com/pr/now-foods-vitamin-d-3-5-000-iu-240-softgels/NOW-00733", "NOW-00733", nil},
		{"https://jp.iherb.com/pr/thorne-ashwagandha/THN-01051?rcode=abc", "THN-01051", nil},
		{"https://www.iherb.com/c/vitamins", "", domain.ErrInvalidProductURL},
		{"https://example.com/pr/x/NOW-00733", "", domain.ErrInvalidProductURL},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := ParseIHerbID(tt.url)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogService(t *testing.T) {
	service := NewCatalogService(NewFixtureCatalog(DefaultFixtures()))
	ctx := context.Background()

	nutrients, err := service.GetNutrients(ctx)
	require.NoError(t, err)
	assert.Len(t, nutrients, 5)

	detail, err := service.GetSupplementDetail(ctx, VitaminD3ID.String())
	require.NoError(t, err)
	assert.Equal(t, "NOW Foods", detail.Brand)
	require.Len(t, detail.Nutrients, 1)
	assert.Equal(t, "Vitamin D", detail.Nutrients[0].Nutrient.NameEn)
	assert.JSONEq(t, `{"main":"/images/supplements/vitamin-d3.jpg"}`, string(detail.Images))

	_, err = service.GetSupplementDetail(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	_, err = service.GetSupplementDetail(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrSupplementNotFound)

	found, err := service.LookupByURL(ctx, "https://www.iherb.com/pr/now-foods-magnesium/NOW-00490")
	require.NoError(t, err)
	assert.Equal(t, MagnesiumID.String(), found.ID)

	_, err = service.LookupByURL(ctx, "https://www.iherb.com/pr/unknown/ABC-99999")
	assert.ErrorIs(t, err, domain.ErrSupplementNotFound)
}
