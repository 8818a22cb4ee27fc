package controllers

import (
	"bloodbank/src/config"
	"bloodbank/src/db"
	"bloodbank/src/models"
	"bloodbank/src/types"
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("donor profile not found")

func parseProfileDates(body *types.AddUserInfoRequestBody) (birthDate time.Time, lastDonation *time.Time, err error) {
	birthDate, err = time.Parse(config.TIME_PARSE_FORMAT, body.BirthDate)
	if err != nil {
		return
	}
	if body.LastDonation != nil {
		var parsed time.Time
		parsed, err = time.Parse(config.TIME_PARSE_FORMAT, *body.LastDonation)
		if err != nil {
			return
		}
		lastDonation = &parsed
	}
	return
}

// AddUserInfo records the donor profile and marks the account as filled, in
// one transaction so a half-written profile never flips the flag.
func AddUserInfo(body *types.AddUserInfoRequestBody, actingUserId uint) (*models.UserInfo, int, error) {
	birthDate, lastDonation, err := parseProfileDates(body)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	info := models.UserInfo{
		UserID:             actingUserId,
		FirstName:          body.FirstName,
		MiddleName:         body.MiddleName,
		LastName:           body.LastName,
		BloodType:          body.BloodType,
		BirthDate:          birthDate,
		Gender:             body.Gender,
		PhoneNumber:        body.PhoneNumber,
		StreetAddress:      body.StreetAddress,
		StreetAddressLine2: body.StreetAddressLine2,
		City:               body.City,
		State:              body.State,
		PostalCode:         body.PostalCode,
		Weight:             body.Weight,
		DonatedPreviously:  body.DonatedPreviously,
		LastDonation:       lastDonation,
		Diseases:           body.Diseases,
	}
	db := db.GetDb()
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&info).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where(&models.User{ID: actingUserId}).
			Updates(map[string]any{"is_filled": true}).Error
	}); err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return &info, http.StatusCreated, nil
}

// UpdateUserInfo rewrites an existing profile owned by the acting user.
func UpdateUserInfo(body *types.UpdateUserInfoRequestBody, actingUserId uint) (*models.UserInfo, int, error) {
	birthDate, lastDonation, err := parseProfileDates(&body.AddUserInfoRequestBody)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	db := db.GetDb()
	var info models.UserInfo
	if err := db.Where(&models.UserInfo{ID: body.ID}).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusNotFound, ErrProfileNotFound
		}
		return nil, http.StatusInternalServerError, err
	}
	if info.UserID != actingUserId {
		return nil, http.StatusForbidden, ErrNotRequestOwner
	}
	updates := map[string]any{
		"first_name":            body.FirstName,
		"middle_name":           body.MiddleName,
		"last_name":             body.LastName,
		"blood_type":            body.BloodType,
		"birth_date":            birthDate,
		"gender":                body.Gender,
		"phone_number":          body.PhoneNumber,
		"street_address":        body.StreetAddress,
		"street_address_line2":  body.StreetAddressLine2,
		"city":                  body.City,
		"state":                 body.State,
		"postal_code":           body.PostalCode,
		"weight":                body.Weight,
		"donated_previously":    body.DonatedPreviously,
		"last_donation":         lastDonation,
		"diseases":              body.Diseases,
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&info).Updates(updates).Error
	}); err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return &info, http.StatusOK, nil
}

// GetUserInfoByUserID fetches the donor profile for an account.
func GetUserInfoByUserID(userId uint) (*models.UserInfo, int, error) {
	db := db.GetDb()
	var info models.UserInfo
	if err := db.Where(&models.UserInfo{UserID: userId}).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusNotFound, ErrProfileNotFound
		}
		return nil, http.StatusInternalServerError, err
	}
	return &info, http.StatusOK, nil
}
