package controllers

import (
	"bloodbank/src/config"
	"bloodbank/src/db"
	"bloodbank/src/lib"
	"bloodbank/src/models"
	"bloodbank/src/types"
	"bloodbank/src/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const qrEmbedName = "qrcode.jpeg"

// DecideRequest accepts or rejects a pending blood request. Acceptance is
// written durably before any QR or mail work happens, so a crash between the
// two leaves a retriable record instead of a lost decision. Once the QR has
// gone out the decision is final and further calls conflict.
func DecideRequest(requestId uuid.UUID, actingUserId uint, accept bool) (*types.DecisionResult, int, error) {
	db := db.GetDb()
	var request models.BloodRequest
	if err := db.Where("id = ?", requestId).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusNotFound, ErrRequestNotFound
		}
		return nil, http.StatusInternalServerError, err
	}
	if request.UserID != actingUserId {
		return nil, http.StatusForbidden, ErrNotRequestOwner
	}

	if !accept {
		if request.IsAccepted {
			return nil, http.StatusConflict, ErrAlreadyAccepted
		}
		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Model(&models.BloodRequest{}).
				Where("id = ?", requestId).
				Updates(map[string]any{"status": types.REQUEST_REJECTED}).Error
		}); err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return &types.DecisionResult{
			RequestID: requestId.String(),
			Status:    types.REQUEST_REJECTED,
			Message:   "Blood request rejected.",
		}, http.StatusOK, nil
	}

	if request.IsAccepted && request.IsQrSent {
		return nil, http.StatusConflict, ErrQrAlreadySent
	}

	// Durable acceptance first. The flag re-read inside the transaction is
	// the idempotency guard against a concurrent accept that already got
	// its QR out.
	if err := db.Transaction(func(tx *gorm.DB) error {
		var current models.BloodRequest
		if err := tx.Where("id = ?", requestId).First(&current).Error; err != nil {
			return err
		}
		if current.IsQrSent {
			return ErrQrAlreadySent
		}
		return tx.Model(&models.BloodRequest{}).
			Where("id = ?", requestId).
			Updates(map[string]any{"status": types.REQUEST_ACCEPTED, "is_accepted": true}).Error
	}); err != nil {
		if errors.Is(err, ErrQrAlreadySent) {
			return nil, http.StatusConflict, ErrQrAlreadySent
		}
		return nil, http.StatusInternalServerError, err
	}

	// Past this point the request stays accepted no matter what fails.
	degraded := func(cause error) (*types.DecisionResult, int, error) {
		log.Printf("notification incomplete for request [%s]: %s\n", requestId, cause.Error())
		return &types.DecisionResult{
			RequestID: requestId.String(),
			Status:    types.REQUEST_ACCEPTED,
			Message:   "Request accepted, but QR code delivery failed. Retry the decision to resend.",
		}, http.StatusInternalServerError, cause
	}

	var user models.User
	if err := db.Where(&models.User{ID: request.UserID}).First(&user).Error; err != nil {
		return degraded(err)
	}

	payload, err := utils.BuildQrPayload(requestId, request.UserID)
	if err != nil {
		return degraded(err)
	}
	img, err := utils.GenerateQrImage(payload)
	if err != nil {
		return degraded(err)
	}
	dataURL := utils.QrImageDataURL(img)

	qr := models.QrCode{
		RequestID: requestId,
		UserID:    request.UserID,
		DataURL:   dataURL,
	}
	if err := db.Create(&qr).Error; err != nil {
		return degraded(err)
	}

	if rdb := lib.GetRedisClient(); rdb != nil {
		key := fmt.Sprintf("qrcode:%s", requestId)
		if err := rdb.SetEx(context.Background(), key, dataURL, 2*time.Hour).Err(); err != nil {
			log.Printf("[redis] failed to cache qr code [%s]: %s\n", key, err.Error())
		}
	}

	subject, mailBody := utils.RenderAcceptanceEmail(&user, &request, qrEmbedName)
	from, fromName := config.MailFrom()
	if err := lib.SendMail(&lib.SendMailInput{
		From:     from,
		FromName: fromName,
		To:       []string{user.Email},
		Subject:  subject,
		Body:     mailBody,
		Html:     true,
		Embeds:   []lib.MailEmbed{{Name: qrEmbedName, Data: img}},
	}); err != nil {
		return degraded(err)
	}

	// Mark delivery only after the mail went out. Both flags flip together.
	if err := db.Model(&models.BloodRequest{}).
		Where("id = ?", requestId).
		Updates(map[string]any{"is_qr_sent": true, "is_mail_sent": true}).Error; err != nil {
		return degraded(err)
	}

	return &types.DecisionResult{
		RequestID: requestId.String(),
		Status:    types.REQUEST_ACCEPTED,
		QrSent:    true,
		MailSent:  true,
		Message:   "Blood request accepted. QR code sent via email.",
	}, http.StatusOK, nil
}

// ApproveRequest flips the administrative approval flag. Approval is
// monotonic and independent of the accept/reject decision.
func ApproveRequest(requestId uuid.UUID, actingUserId uint) (*models.BloodRequest, int, error) {
	db := db.GetDb()
	var request models.BloodRequest
	if err := db.Where("id = ?", requestId).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusNotFound, ErrRequestNotFound
		}
		return nil, http.StatusInternalServerError, err
	}
	if request.UserID != actingUserId {
		return nil, http.StatusForbidden, ErrNotRequestOwner
	}
	if request.IsApproved {
		return nil, http.StatusConflict, ErrAlreadyApproved
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.BloodRequest{}).
			Where("id = ?", requestId).
			Updates(map[string]any{"is_approved": true}).Error
	}); err != nil {
		return nil, http.StatusInternalServerError, err
	}
	request.IsApproved = true
	return &request, http.StatusOK, nil
}

// GetAllUsers lists registered accounts for the admin dashboard.
func GetAllUsers() ([]types.APIResponseUser, int, error) {
	db := db.GetDb()
	users := []models.User{}
	if err := db.Order("created_at asc").Find(&users).Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	out := make([]types.APIResponseUser, 0, len(users))
	for _, u := range users {
		out = append(out, types.APIResponseUser{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return out, http.StatusOK, nil
}

// ChangeRole promotes or demotes an account.
func ChangeRole(userId uint, role string) (*types.APIResponseUser, int, error) {
	db := db.GetDb()
	var user models.User
	if err := db.Where(&models.User{ID: userId}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusNotFound, ErrUserNotFound
		}
		return nil, http.StatusInternalServerError, err
	}
	if err := db.Model(&user).Updates(map[string]any{"role": role}).Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return &types.APIResponseUser{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     role,
	}, http.StatusOK, nil
}
