package models

import (
	"time"

	"github.com/google/uuid"
)

// Cabinet belongs to a house and holds products. QRCode is the public
// read-only identifier embedded in scanned deep links; the numeric ID
// never leaves the authenticated surface through a QR URL.
type Cabinet struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description *string   `json:"description,omitempty"`
	HouseID     uint      `gorm:"not null;index" json:"house_id"`
	QRCode      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"qr_code"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	House    House     `gorm:"foreignKey:HouseID" json:"-"`
	Products []Product `gorm:"foreignKey:CabinetID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

// TableName overrides the table name
func (Cabinet) TableName() string {
	return "cabinets"
}
