package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

// UserProfile holds the body measurements used to personalise recommended
// intakes. The user itself lives in the identity provider.
type UserProfile struct {
	UserID   uuid.UUID `gorm:"type:uuid;primary_key" json:"user_id"`
	WeightKg *float64  `json:"weight_kg,omitempty"`
	HeightCm *float64  `json:"height_cm,omitempty"`
	Age      *int      `json:"age,omitempty"`
	Gender   string    `json:"gender,omitempty"`

	Timestamp
}

// UserSupplement is a product on a user's my-supps list. SupplementID is not
// a foreign key since the catalog may be served from fixtures.
type UserSupplement struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_supplement" json:"user_id"`
	SupplementID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_supplement" json:"supplement_id"`
	IsSelected   bool      `json:"is_selected"`
	DailyIntake  int       `gorm:"default:1" json:"daily_intake"`
	Notes        string    `json:"notes,omitempty"`
	AddedAt      time.Time `gorm:"type:timestamp" json:"added_at"`
}

func (u *UserSupplement) BeforeCreate(tx *gorm.DB) error {
	newID(&u.ID)
	if u.AddedAt.IsZero() {
		u.AddedAt = time.Now()
	}
	return nil
}
