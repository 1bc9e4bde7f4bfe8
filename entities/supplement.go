package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Supplement struct {
	ID       uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	IHerbID  string         `gorm:"column:iherb_id;index" json:"iherb_id,omitempty"`
	Barcode  string         `json:"barcode,omitempty"`
	NameJa   string         `gorm:"not null" json:"name_ja"`
	NameEn   string         `json:"name_en,omitempty"`
	Brand    string         `gorm:"not null" json:"brand"`
	Images   datatypes.JSON `json:"images,omitempty"`
	Servings int            `json:"servings_per_container,omitempty"`

	Nutrients []SupplementNutrient `gorm:"foreignKey:SupplementID" json:"nutrients,omitempty"`
	Timestamp
}

func (s *Supplement) BeforeCreate(tx *gorm.DB) error {
	newID(&s.ID)
	return nil
}

// SupplementNutrient is the amount of one nutrient supplied by one product.
// Position keeps the label order so contributions are read back the way
// they were recorded.
type SupplementNutrient struct {
	SupplementID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"supplement_id"`
	NutrientID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"nutrient_id"`
	Position              int       `json:"position"`
	AmountPerServing      float64   `gorm:"not null" json:"amount_per_serving"`
	AmountPerUnit         float64   `json:"amount_per_unit"`
	ServingSize           float64   `gorm:"default:1" json:"serving_size"`
	Unit                  string    `gorm:"not null" json:"unit"`
	BioavailabilityFactor float64   `gorm:"default:1" json:"bioavailability_factor"`

	Nutrient *Nutrient `gorm:"foreignKey:NutrientID" json:"nutrient,omitempty"`
}
