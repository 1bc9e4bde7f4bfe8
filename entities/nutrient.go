package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryVitamin   = "vitamin"
	CategoryMineral   = "mineral"
	CategoryAdaptogen = "adaptogen"
	CategoryAminoAcid = "amino-acid"
	CategoryFattyAcid = "fatty-acid"
	CategoryOther     = "other"
)

// Nutrient is master reference data. Bounds are expressed in the nutrient's
// unit, either as absolute daily amounts or per kilogram of body weight.
type Nutrient struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	NameJa      string    `gorm:"not null" json:"name_ja"`
	NameEn      string    `json:"name_en,omitempty"`
	Category    string    `gorm:"index" json:"category"`
	Unit        string    `gorm:"default:mg" json:"unit"`
	RDALower    *float64  `json:"rda_lower,omitempty"`
	RDAUpper    *float64  `json:"rda_upper,omitempty"`
	PerKgLower  *float64  `json:"per_kg_lower,omitempty"`
	PerKgUpper  *float64  `json:"per_kg_upper,omitempty"`
	SortOrder   int       `gorm:"index" json:"sort_order"`
	Description string    `gorm:"type:text" json:"description,omitempty"`

	Timestamp
}

func (n *Nutrient) BeforeCreate(tx *gorm.DB) error {
	newID(&n.ID)
	return nil
}

// DisplayName prefers the English label and falls back to the Japanese one,
// which is always present in the master list.
func (n Nutrient) DisplayName() string {
	if n.NameEn != "" {
		return n.NameEn
	}
	return n.NameJa
}

// HasPerKgBounds reports whether the nutrient defines body-weight based
// recommendations.
func (n Nutrient) HasPerKgBounds() bool {
	return n.PerKgLower != nil || n.PerKgUpper != nil
}
