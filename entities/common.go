package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type Timestamp struct {
	CreatedAt time.Time      `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time      `gorm:"type:timestamp" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// newID fills id when the caller left it empty. Keys are generated client
// side since uuid_generate_v4() only exists on postgres.
func newID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
