package models

import "time"

// Meeting is a viewing appointment between a buyer and an employee at a
// real estate. Rows are retracted when the property's agreement is paid.
type Meeting struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MeetingDateTime time.Time `gorm:"not null" json:"meeting_date_time"`
	InquiryDate     time.Time `gorm:"not null" json:"inquiry_date"`

	Status string `gorm:"size:45;not null" json:"status"`

	BuyerID uint   `json:"buyer_id"`
	Buyer   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"buyer"`

	RealEstateID uint       `json:"real_estate_id"`
	RealEstate   RealEstate `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"real_estate"`

	EmployeeID uint     `json:"employee_id"`
	Employee   Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"employee"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
