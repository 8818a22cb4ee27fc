package models

import (
	"bloodbank/src/types"
	"time"
)

type UserInfo struct {
	ID                 uint       `gorm:"primarykey" json:"id"`
	UserID             uint       `gorm:"uniqueIndex" json:"user_id,omitempty"`
	FirstName          string     `json:"first_name,omitempty"`
	MiddleName         *string    `json:"middle_name,omitempty"`
	LastName           string     `json:"last_name,omitempty"`
	BloodType          string     `json:"blood_type,omitempty"`
	BirthDate          time.Time  `json:"birth_date,omitempty"`
	Gender             string     `json:"gender,omitempty"`
	PhoneNumber        string     `json:"phone_number,omitempty"`
	StreetAddress      string     `json:"street_address,omitempty"`
	StreetAddressLine2 *string    `json:"street_address_line_2,omitempty"`
	City               string     `json:"city,omitempty"`
	State              string     `json:"state,omitempty"`
	PostalCode         string     `json:"postal_code,omitempty"`
	Weight             float32    `json:"weight,omitempty"`
	DonatedPreviously  bool       `json:"donated_previously"`
	LastDonation       *time.Time `json:"last_donation,omitempty"`
	Diseases           string     `json:"diseases,omitempty"`

	types.Timestamps
}
