package controllers

import "errors"

var (
	ErrRequestNotFound = errors.New("blood request not found")
	ErrNotRequestOwner = errors.New("requested user does not match the record")
	ErrAlreadyAccepted = errors.New("this blood request has already been accepted")
	ErrQrAlreadySent   = errors.New("QR code already sent")
	ErrAlreadyApproved = errors.New("request is already approved")

	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user with username or email already exists")
	ErrBadCredentials      = errors.New("incorrect password")
	ErrInvalidOtp          = errors.New("invalid OTP")
	ErrOtpExpired          = errors.New("OTP has expired")
	ErrInvalidRefreshToken = errors.New("refresh token is expired or invalid")
)
