package models

import "time"

// Client is a registered customer of the agency. Email and phone number
// are unique across all clients; the indexes back up the service guards.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`

	Email       string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PhoneNumber string `gorm:"size:20;uniqueIndex;not null" json:"phone_number"`

	RegistrationDate time.Time `gorm:"not null" json:"registration_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
