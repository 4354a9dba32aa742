package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Composition is a persisted generation: the cantus firmus, the selected
// counterpoint and the engine statistics that produced it
type Composition struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UserID       string    `gorm:"index;not null;default:'anonymous'" json:"user_id"`
	Species      int       `gorm:"not null" json:"species"`
	Preset       string    `json:"preset,omitempty"`
	CantusFirmus []string  `gorm:"serializer:json;not null" json:"cantus_firmus"`
	Counterpoint []string  `gorm:"serializer:json;not null" json:"counterpoint"`
	Solutions    int       `gorm:"not null" json:"solutions"`
	SearchSpace  string    `gorm:"not null" json:"search_space"` // decimal, may exceed 64 bits
	Examined     uint64    `json:"examined"`
	DurationMs   int64     `json:"duration_ms"`
	Seed         string    `json:"seed,omitempty"`
}

// BeforeCreate assigns a random UUID when none is set
func (c *Composition) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
