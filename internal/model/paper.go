package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Paper represents a published paper. UpdatedAt is refreshed by GORM on every
// write and surfaces as the paper's "updated" timestamp.
type Paper struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	AuthorID  string    `json:"author" gorm:"size:255;not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Author Author `json:"-" gorm:"foreignKey:AuthorID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Paper) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
