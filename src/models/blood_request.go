package models

import (
	"bloodbank/src/types"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BloodRequest struct {
	ID               uuid.UUID           `gorm:"primarykey;type:uuid" json:"id"`
	UserID           uint                `json:"user_id,omitempty"`
	BloodTypeID      string              `json:"blood_type_id,omitempty"`
	Quantity         uint                `json:"quantity,omitempty"`
	RequestDate      time.Time           `json:"request_date,omitempty"`
	RequiredBy       time.Time           `json:"required_by,omitempty"`
	Urgent           bool                `json:"urgent"`
	Status           types.RequestStatus `gorm:"default:'Pending'" json:"status,omitempty"`
	IsAccepted       bool                `json:"is_accepted"`
	IsApproved       bool                `json:"is_approved"`
	IsQrSent         bool                `json:"is_qr_sent"`
	IsMailSent       bool                `json:"is_mail_sent"`
	DeliveryAddress  string              `json:"delivery_address,omitempty"`
	ContactNumber    string              `json:"contact_number,omitempty"`
	ReasonForRequest string              `json:"reason_for_request,omitempty"`
	HospitalName     string              `json:"hospital_name,omitempty"`

	User *User `gorm:"foreignKey:user_id" json:"user,omitempty"`

	types.Timestamps
}

func (r *BloodRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
