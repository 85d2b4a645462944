package model

import "time"

// User represents an account holder keyed by email address.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:255"`
	Nick         string    `json:"nick,omitempty" gorm:"size:255"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	LastName     string    `json:"lastName" gorm:"size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
