package controllers

import (
	"bloodbank/src/config"
	"bloodbank/src/db"
	"bloodbank/src/lib"
	"bloodbank/src/models"
	"bloodbank/src/types"
	"bloodbank/src/utils"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterUser creates a new account with the default User role.
func RegisterUser(body *types.RegisterUserRequestBody) (*types.APIResponseUser, int, error) {
	db := db.GetDb()
	username := strings.ToLower(body.Username)
	var existing models.User
	err := db.Where("username = ? OR email = ?", username, body.Email).First(&existing).Error
	if err == nil {
		return nil, http.StatusConflict, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, http.StatusInternalServerError, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), 10)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	user := models.User{
		Username: username,
		Email:    body.Email,
		Password: string(hash),
		Role:     types.ROLE_USER,
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	}); err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return &types.APIResponseUser{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, http.StatusCreated, nil
}

type LoginResult struct {
	AccessToken  string                `json:"access_token"`
	RefreshToken string                `json:"refresh_token"`
	User         types.APIResponseUser `json:"user"`
}

// LoginUser authenticates by username or email and issues a fresh token pair.
// The refresh token is persisted on the account so it can be verified and
// rotated later.
func LoginUser(body *types.LoginRequestBody) (*LoginResult, int, error) {
	db := db.GetDb()
	identifier := strings.ToLower(body.Identifier)
	var user models.User
	if err := db.Where("username = ? OR email = ?", identifier, body.Identifier).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusNotFound, ErrUserNotFound
		}
		return nil, http.StatusInternalServerError, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return nil, http.StatusUnauthorized, ErrBadCredentials
	}
	accessToken, err := utils.GenerateJWT(user.Username, user.ID, user.Role)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if err := db.Model(&user).Updates(map[string]any{"refresh_token": refreshToken}).Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	result := &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: types.APIResponseUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
	}
	cacheUser(&result.User)
	return result, http.StatusOK, nil
}

// cacheUser stores the public profile in redis. Cache misses and failures are
// logged and ignored, the database stays authoritative.
func cacheUser(user *types.APIResponseUser) {
	rdb := lib.GetRedisClient()
	if rdb == nil {
		return
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := rdb.Set(context.Background(), "user:"+user.Username, raw, config.ACCESS_TOKEN_TTL).Err(); err != nil {
		log.Printf("[redis] failed to cache user [%s]: %s\n", user.Username, err.Error())
	}
}

// LogoutUser drops the stored refresh token so the pair can no longer rotate.
func LogoutUser(userId uint) (int, error) {
	db := db.GetDb()
	if err := db.Model(&models.User{}).
		Where(&models.User{ID: userId}).
		Updates(map[string]any{"refresh_token": nil}).Error; err != nil {
		return http.StatusInternalServerError, err
	}
	return http.StatusOK, nil
}

// RefreshAccessToken verifies the presented refresh token against the stored
// one and rotates the pair.
func RefreshAccessToken(body *types.RefreshTokenRequestBody) (*LoginResult, int, error) {
	claims, err := utils.ParseRefreshToken(body.RefreshToken)
	if err != nil {
		return nil, http.StatusForbidden, ErrInvalidRefreshToken
	}
	db := db.GetDb()
	var user models.User
	if err := db.Where("id = ?", claims.Subject).First(&user).Error; err != nil {
		return nil, http.StatusForbidden, ErrInvalidRefreshToken
	}
	if user.RefreshToken == nil || *user.RefreshToken != body.RefreshToken {
		return nil, http.StatusForbidden, ErrInvalidRefreshToken
	}
	accessToken, err := utils.GenerateJWT(user.Username, user.ID, user.Role)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if err := db.Model(&user).Updates(map[string]any{"refresh_token": refreshToken}).Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: types.APIResponseUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
	}, http.StatusOK, nil
}

// ForgotPassword issues a short-lived OTP and mails it to the account owner.
func ForgotPassword(body *types.ForgotPasswordRequestBody) (int, error) {
	db := db.GetDb()
	var user models.User
	if err := db.Where(&models.User{Email: body.Email}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return http.StatusNotFound, ErrUserNotFound
		}
		return http.StatusInternalServerError, err
	}
	otp, err := utils.GenerateOTP()
	if err != nil {
		return http.StatusInternalServerError, err
	}
	expiresAt := time.Now().Add(config.OTP_TTL)
	if err := db.Model(&user).Updates(map[string]any{"otp": otp, "otp_expires_at": expiresAt}).Error; err != nil {
		return http.StatusInternalServerError, err
	}
	subject, mailBody := utils.RenderOtpEmail(&user, otp)
	from, fromName := config.MailFrom()
	if err := lib.SendMail(&lib.SendMailInput{
		From:     from,
		FromName: fromName,
		To:       []string{user.Email},
		Subject:  subject,
		Body:     mailBody,
		Html:     true,
	}); err != nil {
		return http.StatusInternalServerError, err
	}
	return http.StatusOK, nil
}

// ValidateOTP checks the code and consumes it on success. Expired codes are
// cleared so they cannot be retried.
func ValidateOTP(body *types.ValidateOTPRequestBody) (*types.APIResponseUser, int, error) {
	db := db.GetDb()
	var user models.User
	if err := db.Where(&models.User{Email: body.Email}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusNotFound, ErrUserNotFound
		}
		return nil, http.StatusInternalServerError, err
	}
	if user.Otp == nil || *user.Otp != body.Otp {
		return nil, http.StatusBadRequest, ErrInvalidOtp
	}
	clear := map[string]any{"otp": nil, "otp_expires_at": nil}
	if user.OtpExpiresAt == nil || time.Now().After(*user.OtpExpiresAt) {
		db.Model(&user).Updates(clear)
		return nil, http.StatusBadRequest, ErrOtpExpired
	}
	if err := db.Model(&user).Updates(clear).Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return &types.APIResponseUser{ID: user.ID, Email: user.Email}, http.StatusOK, nil
}

// ResetPassword replaces the password after a successful OTP validation.
func ResetPassword(body *types.ResetPasswordRequestBody) (int, error) {
	db := db.GetDb()
	var user models.User
	if err := db.Where(&models.User{ID: body.UserID}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return http.StatusNotFound, ErrUserNotFound
		}
		return http.StatusInternalServerError, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), 10)
	if err != nil {
		return http.StatusInternalServerError, err
	}
	if err := db.Model(&user).Updates(map[string]any{"password": string(hash), "refresh_token": nil}).Error; err != nil {
		return http.StatusInternalServerError, err
	}
	return http.StatusOK, nil
}

// GetUserFormStatus reports whether the donor profile has been completed.
func GetUserFormStatus(userId uint) (bool, int, error) {
	db := db.GetDb()
	var user models.User
	if err := db.Select("is_filled").Where(&models.User{ID: userId}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, http.StatusNotFound, ErrUserNotFound
		}
		return false, http.StatusInternalServerError, err
	}
	return user.IsFilled, http.StatusOK, nil
}
