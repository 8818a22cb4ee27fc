package controllers

import (
	"bloodbank/src/config"
	"bloodbank/src/db"
	"bloodbank/src/models"
	"bloodbank/src/types"
	"net/http"
	"time"

	"gorm.io/gorm"
)

// SubmitRequest records a new blood request for the acting user. Every new
// request starts Pending with all decision flags cleared, regardless of what
// the caller put in the status field.
func SubmitRequest(body *types.CreateBloodRequestRequestBody, actingUserId uint) (*models.BloodRequest, int, error) {
	requestDate, err := time.Parse(config.TIME_PARSE_FORMAT, body.RequestDate)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	requiredBy, err := time.Parse(config.TIME_PARSE_FORMAT, body.RequiredBy)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	request := models.BloodRequest{
		UserID:           actingUserId,
		BloodTypeID:      body.BloodTypeID,
		Quantity:         body.Quantity,
		RequestDate:      requestDate,
		RequiredBy:       requiredBy,
		Urgent:           body.Urgent,
		Status:           types.REQUEST_PENDING,
		DeliveryAddress:  body.DeliveryAddress,
		ContactNumber:    body.ContactNumber,
		ReasonForRequest: body.ReasonForRequest,
		HospitalName:     body.HospitalName,
	}
	db := db.GetDb()
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&request).Error
	}); err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return &request, http.StatusCreated, nil
}

// GetOwnRequests lists the acting user's requests, newest first.
func GetOwnRequests(actingUserId uint) ([]models.BloodRequest, int, error) {
	db := db.GetDb()
	requests := []models.BloodRequest{}
	if err := db.
		Where(&models.BloodRequest{UserID: actingUserId}).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return requests, http.StatusOK, nil
}

// GetAllRequests lists every request with its requester preloaded.
func GetAllRequests() ([]models.BloodRequest, int, error) {
	db := db.GetDb()
	requests := []models.BloodRequest{}
	if err := db.
		Preload("User").
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return requests, http.StatusOK, nil
}
