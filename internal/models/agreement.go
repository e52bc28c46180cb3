package models

import "time"

// Agreement is an unpaid purchase contract. There is no persisted "paid"
// status: paying deletes the row and flips the property's availability.
// The unique index on ClientID enforces at most one open agreement per
// client at the storage boundary.
type Agreement struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	Date     time.Time `gorm:"not null" json:"date"`
	Amount   float64   `json:"amount"`
	Duration string    `gorm:"size:45;not null" json:"duration"`
	Status   string    `gorm:"size:20;default:'unpaid'" json:"status"`

	ClientID uint   `gorm:"uniqueIndex" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	RealEstateID uint       `json:"real_estate_id"`
	RealEstate   RealEstate `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"real_estate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
