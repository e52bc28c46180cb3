package models

import "time"

// Address is a value object embedded into the real estate row; it has no
// independent lifecycle.
type Address struct {
	Country   string `gorm:"size:100" json:"country"`
	Region    string `gorm:"size:100" json:"region"`
	City      string `gorm:"size:100" json:"city"`
	Street    string `gorm:"size:100" json:"street"`
	Building  string `gorm:"size:20" json:"building"`
	Apartment string `gorm:"size:20" json:"apartment"`
}

type RealEstate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SellerID uint   `json:"seller_id"`
	Seller   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"seller"`

	Type        string  `gorm:"size:20;not null" json:"type"`
	Price       float64 `json:"price"`
	Description string  `gorm:"size:255" json:"description"`
	Metrics     string  `gorm:"size:100" json:"metrics"`
	Rooms       int     `json:"rooms"`

	// Available flips to false once an agreement on this row is paid.
	Available bool `gorm:"default:true" json:"available"`

	Address Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
