package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organism represents an institution authors belong to.
type Organism struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Address   string    `json:"address" gorm:"size:255;not null"`
	Country   string    `json:"country" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Authors []Author `json:"-" gorm:"foreignKey:OrganismID"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Organism) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
