package models

import (
	"bloodbank/src/types"
	"time"
)

type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Username     string     `gorm:"uniqueIndex" json:"username,omitempty"`
	Email        string     `gorm:"uniqueIndex" json:"email,omitempty"`
	Password     string     `json:"-"`
	Role         string     `gorm:"default:'User'" json:"role,omitempty"`
	RefreshToken *string    `json:"-"`
	Otp          *string    `json:"-"`
	OtpExpiresAt *time.Time `json:"-"`
	IsFilled     bool       `json:"is_filled"`

	Info     *UserInfo      `gorm:"foreignKey:user_id" json:"info,omitempty"`
	Requests []BloodRequest `gorm:"foreignKey:user_id" json:"requests,omitempty"`

	types.Timestamps
}
