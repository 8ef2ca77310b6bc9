package models

import (
	"time"
)

// User represents an account that owns houses.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Nickname  string    `gorm:"uniqueIndex;not null" json:"nickname"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Houses []House `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"houses,omitempty"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}
