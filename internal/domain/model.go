package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel is the common base struct for all domain models.
// Identities are opaque UUID strings assigned on insert; gorm.Model is not
// used to avoid the implicit soft delete behavior of DeletedAt.
type BaseModel struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a fresh UUID when none was provided.
func (m *BaseModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// RecordID returns the record identity. It satisfies crud.Record so any
// domain model can be driven by the generic CRUD engine.
func (m BaseModel) RecordID() string {
	return m.ID
}
