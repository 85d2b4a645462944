package model

import (
	"time"

	"github.com/google/uuid"
)

// Author represents a paper author keyed by email address. The namespace is
// separate from User: the same email can identify both a User and an Author.
type Author struct {
	ID         string    `json:"id" gorm:"primaryKey;size:255"`
	Name       string    `json:"name" gorm:"size:255;not null"`
	LastName   string    `json:"lastName" gorm:"size:255;not null"`
	OrganismID uuid.UUID `json:"organism_id" gorm:"type:char(36);not null;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Organism Organism `json:"-" gorm:"foreignKey:OrganismID"`
	Papers   []Paper  `json:"-" gorm:"foreignKey:AuthorID"`
}
