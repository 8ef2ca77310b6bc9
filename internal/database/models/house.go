package models

import (
	"time"
)

// House is the top-level container of the inventory hierarchy. Deleting
// a house removes its cabinets (and their products) through the
// database cascade.
type House struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Cabinets []Cabinet `gorm:"foreignKey:HouseID;constraint:OnDelete:CASCADE" json:"cabinets,omitempty"`
}

// TableName overrides the table name
func (House) TableName() string {
	return "houses"
}
