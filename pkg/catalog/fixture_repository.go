package catalog

import (
	"My-Supps-Backend/entities"
	"context"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"sort"
	"strings"
)

// Fixture IDs are stable so seeded databases and the fixture catalog agree.
var (
	VitaminD3ID   = uuid.MustParse("6f1c2d0e-0d4b-4a51-9a4e-1b0a5c7d3e01")
	MagnesiumID   = uuid.MustParse("6f1c2d0e-0d4b-4a51-9a4e-1b0a5c7d3e02")
	AshwagandhaID = uuid.MustParse("6f1c2d0e-0d4b-4a51-9a4e-1b0a5c7d3e03")

	NutrientVitaminDID   = uuid.MustParse("0c9e3f4a-7b21-4c8e-8f0a-2d6b1e9c4a01")
	NutrientMagnesiumID  = uuid.MustParse("0c9e3f4a-7b21-4c8e-8f0a-2d6b1e9c4a02")
	NutrientVitaminCID   = uuid.MustParse("0c9e3f4a-7b21-4c8e-8f0a-2d6b1e9c4a03")
	NutrientZincID       = uuid.MustParse("0c9e3f4a-7b21-4c8e-8f0a-2d6b1e9c4a04")
	NutrientVitaminB12ID = uuid.MustParse("0c9e3f4a-7b21-4c8e-8f0a-2d6b1e9c4a05")
)

func floatPtr(v float64) *float64 { return &v }

// Fixtures is the demo catalog: three products and five nutrients.
type Fixtures struct {
	Nutrients     []entities.Nutrient
	Supplements   []entities.Supplement
	Contributions []entities.SupplementNutrient
}

func DefaultFixtures() Fixtures {
	return Fixtures{
		Nutrients: []entities.Nutrient{
			{ID: NutrientVitaminDID, NameJa: "ビタミンD", NameEn: "Vitamin D", Category: entities.CategoryVitamin, Unit: "μg",
				RDALower: floatPtr(0.015), RDAUpper: floatPtr(0.1), PerKgLower: floatPtr(0.0002), PerKgUpper: floatPtr(0.0015), SortOrder: 1},
			{ID: NutrientMagnesiumID, NameJa: "マグネシウム", NameEn: "Magnesium", Category: entities.CategoryMineral, Unit: "mg",
				RDALower: floatPtr(300), RDAUpper: floatPtr(400), PerKgLower: floatPtr(4.5), PerKgUpper: floatPtr(6), SortOrder: 2},
			{ID: NutrientVitaminCID, NameJa: "ビタミンC", NameEn: "Vitamin C", Category: entities.CategoryVitamin, Unit: "mg",
				RDALower: floatPtr(100), RDAUpper: floatPtr(2000), PerKgLower: floatPtr(1.5), PerKgUpper: floatPtr(30), SortOrder: 3},
			{ID: NutrientZincID, NameJa: "亜鉛", NameEn: "Zinc", Category: entities.CategoryMineral, Unit: "mg",
				RDALower: floatPtr(8), RDAUpper: floatPtr(40), PerKgLower: floatPtr(0.12), PerKgUpper: floatPtr(0.6), SortOrder: 4},
			{ID: NutrientVitaminB12ID, NameJa: "ビタミンB12", NameEn: "Vitamin B12", Category: entities.CategoryVitamin, Unit: "μg",
				RDALower: floatPtr(0.0024), RDAUpper: floatPtr(0.1), PerKgLower: floatPtr(0.00004), PerKgUpper: floatPtr(0.0015), SortOrder: 5},
		},
		Supplements: []entities.Supplement{
			{ID: VitaminD3ID, IHerbID: "NOW-00733", NameJa: "ビタミンD-3 5000IU", NameEn: "Vitamin D-3 5000 IU", Brand: "NOW Foods",
				Images: datatypes.JSON(`{"main":"/images/supplements/vitamin-d3.jpg"}`)},
			{ID: MagnesiumID, IHerbID: "NOW-00490", NameJa: "マグネシウム 400mg", NameEn: "Magnesium 400mg", Brand: "NOW Foods",
				Images: datatypes.JSON(`{"main":"/images/supplements/magnesium.jpg"}`)},
			{ID: AshwagandhaID, IHerbID: "THN-01051", NameJa: "アシュワガンダ KSM-66", NameEn: "Ashwagandha KSM-66", Brand: "Thorne",
				Images: datatypes.JSON(`{"main":"/images/supplements/ashwagandha.jpg"}`)},
		},
		Contributions: []entities.SupplementNutrient{
			{SupplementID: VitaminD3ID, NutrientID: NutrientVitaminDID, AmountPerServing: 125, AmountPerUnit: 125,
				ServingSize: 1, Unit: "μg", BioavailabilityFactor: 0.8},
			{SupplementID: MagnesiumID, NutrientID: NutrientMagnesiumID, AmountPerServing: 400, AmountPerUnit: 400,
				ServingSize: 1, Unit: "mg", BioavailabilityFactor: 0.4},
		},
	}
}

type fixtureCatalog struct {
	fixtures Fixtures
}

// NewFixtureCatalog serves the demo catalog from memory. It is selected with
// DATA_SOURCE=fixture.
func NewFixtureCatalog(fixtures Fixtures) CatalogRepository {
	return &fixtureCatalog{fixtures: fixtures}
}

func (c *fixtureCatalog) ListNutrients(ctx context.Context) ([]entities.Nutrient, error) {
	nutrients := make([]entities.Nutrient, len(c.fixtures.Nutrients))
	copy(nutrients, c.fixtures.Nutrients)
	for _, n := range nutrients {
		if err := ValidateNutrient(n); err != nil {
			return nil, err
		}
	}
	sort.SliceStable(nutrients, func(i, j int) bool {
		return nutrients[i].SortOrder < nutrients[j].SortOrder
	})
	return nutrients, nil
}

func (c *fixtureCatalog) ListContributions(ctx context.Context, supplementID string) ([]entities.SupplementNutrient, error) {
	id, err := uuid.Parse(supplementID)
	if err != nil {
		return []entities.SupplementNutrient{}, nil
	}
	rows := []entities.SupplementNutrient{}
	for _, row := range c.fixtures.Contributions {
		if row.SupplementID == id {
			rows = append(rows, row)
		}
	}
	return rows, ValidateContributions(rows)
}

func (c *fixtureCatalog) ListContributionsFor(ctx context.Context, supplementIDs []uuid.UUID) (map[uuid.UUID][]entities.SupplementNutrient, error) {
	out := make(map[uuid.UUID][]entities.SupplementNutrient, len(supplementIDs))
	for _, id := range supplementIDs {
		rows, err := c.ListContributions(ctx, id.String())
		if err != nil {
			return nil, err
		}
		out[id] = rows
	}
	return out, nil
}

func (c *fixtureCatalog) GetSupplementByID(ctx context.Context, id string) (*entities.Supplement, error) {
	for _, s := range c.fixtures.Supplements {
		if s.ID.String() == id {
			supplement := s
			return &supplement, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (c *fixtureCatalog) GetSupplementByIHerbID(ctx context.Context, iherbID string) (*entities.Supplement, error) {
	for _, s := range c.fixtures.Supplements {
		if strings.EqualFold(s.IHerbID, iherbID) {
			supplement := s
			return &supplement, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (c *fixtureCatalog) GetSupplementsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Supplement, error) {
	supplements := make([]*entities.Supplement, 0, len(ids))
	for _, id := range ids {
		s, err := c.GetSupplementByID(ctx, id.String())
		if err != nil {
			continue
		}
		supplements = append(supplements, s)
	}
	return supplements, nil
}

func (c *fixtureCatalog) GetSupplements(ctx context.Context, query string, page, limit int) ([]*entities.Supplement, int64, error) {
	if page < 1 {
		page = 1
	}
	query = strings.ToLower(query)
	var matched []*entities.Supplement
	for _, s := range c.fixtures.Supplements {
		if query == "" ||
			strings.Contains(strings.ToLower(s.NameEn), query) ||
			strings.Contains(strings.ToLower(s.NameJa), query) ||
			strings.Contains(strings.ToLower(s.Brand), query) {
			supplement := s
			matched = append(matched, &supplement)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Brand != matched[j].Brand {
			return matched[i].Brand < matched[j].Brand
		}
		return matched[i].NameEn < matched[j].NameEn
	})

	total := int64(len(matched))
	start := min((page-1)*limit, len(matched))
	end := min(start+limit, len(matched))
	return matched[start:end], total, nil
}
