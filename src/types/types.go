package types

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type RequestStatus string

const (
	REQUEST_PENDING  RequestStatus = "Pending"
	REQUEST_ACCEPTED RequestStatus = "Accepted"
	REQUEST_REJECTED RequestStatus = "Rejected"
)

const (
	ROLE_USER  = "User"
	ROLE_ADMIN = "Admin"
)

type RegisterUserRequestBody struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequestBody struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type RefreshTokenRequestBody struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type ForgotPasswordRequestBody struct {
	Email string `json:"email" binding:"required,email"`
}

type ValidateOTPRequestBody struct {
	Email string `json:"email" binding:"required,email"`
	Otp   string `json:"otp" binding:"required,len=6"`
}

type ResetPasswordRequestBody struct {
	UserID      uint   `json:"user_id" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type CreateBloodRequestRequestBody struct {
	BloodTypeID      string `json:"blood_type_id" binding:"required"`
	Quantity         uint   `json:"quantity" binding:"required"`
	RequestDate      string `json:"request_date" binding:"required,requestdate" time_format:"2006-01-02 15:04:05 -07:00"`
	RequiredBy       string `json:"required_by" binding:"required,requestdate,gtdate=RequestDate" time_format:"2006-01-02 15:04:05 -07:00"`
	Status           string `json:"status" binding:"required"`
	DeliveryAddress  string `json:"delivery_address" binding:"required"`
	ContactNumber    string `json:"contact_number" binding:"required"`
	ReasonForRequest string `json:"reason_for_request" binding:"required"`
	HospitalName     string `json:"hospital_name" binding:"required"`
	Urgent           bool   `json:"urgent,omitempty"`
}

type DecideRequestRequestBody struct {
	RequestID  string `json:"request_id" binding:"required,uuid"`
	UserID     uint   `json:"user_id" binding:"required"`
	IsAccepted *bool  `json:"is_accepted" binding:"required"`
}

type ApproveRequestRequestBody struct {
	RequestID string `json:"request_id" binding:"required,uuid"`
	UserID    uint   `json:"user_id" binding:"required"`
}

type DecisionResult struct {
	RequestID string        `json:"request_id"`
	Status    RequestStatus `json:"status"`
	QrSent    bool          `json:"qr_sent"`
	MailSent  bool          `json:"mail_sent"`
	Message   string        `json:"message"`
}

type AddUserInfoRequestBody struct {
	FirstName          string  `json:"first_name" binding:"required"`
	MiddleName         *string `json:"middle_name,omitempty"`
	LastName           string  `json:"last_name" binding:"required"`
	BloodType          string  `json:"blood_type" binding:"required"`
	BirthDate          string  `json:"birth_date" binding:"required,requestdate" time_format:"2006-01-02 15:04:05 -07:00"`
	Gender             string  `json:"gender" binding:"required"`
	PhoneNumber        string  `json:"phone_number" binding:"required"`
	StreetAddress      string  `json:"street_address" binding:"required"`
	StreetAddressLine2 *string `json:"street_address_line_2,omitempty"`
	City               string  `json:"city" binding:"required"`
	State              string  `json:"state" binding:"required"`
	PostalCode         string  `json:"postal_code" binding:"required"`
	Weight             float32 `json:"weight" binding:"required"`
	DonatedPreviously  bool    `json:"donated_previously,omitempty"`
	LastDonation       *string `json:"last_donation,omitempty" binding:"omitempty,requestdate" time_format:"2006-01-02 15:04:05 -07:00"`
	Diseases           string  `json:"diseases" binding:"required"`
}

type UpdateUserInfoRequestBody struct {
	ID uint `json:"id" binding:"required"`
	AddUserInfoRequestBody
}

type UserInfoURIParams struct {
	UserID uint `uri:"userId" binding:"required"`
}

type ChangeRoleRequestBody struct {
	UserID uint   `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=User Admin"`
}

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type APIResponseUser struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username,omitempty"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
