package models

import (
	"time"
)

// Product is the leaf entity of the hierarchy.
type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	CabinetID   uint      `gorm:"not null;index" json:"cabinet_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Cabinet Cabinet `gorm:"foreignKey:CabinetID" json:"-"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}
