package models

import (
	"bloodbank/src/types"

	"github.com/google/uuid"
)

type QrCode struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	RequestID uuid.UUID `gorm:"type:uuid;index" json:"request_id,omitempty"`
	UserID    uint      `json:"user_id,omitempty"`
	DataURL   string    `gorm:"type:text" json:"data_url,omitempty"`

	Request *BloodRequest `gorm:"foreignKey:request_id" json:"request,omitempty"`

	types.Timestamps
}
