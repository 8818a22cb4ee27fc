package utils

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/yeqown/go-qrcode"
)

// QrPayload binds a blood request to its requester. Field order is fixed:
// requestId first, userId second — scanners rely on the canonical form.
type QrPayload struct {
	RequestID string `json:"requestId"`
	UserID    uint   `json:"userId"`
}

func BuildQrPayload(requestId uuid.UUID, userId uint) (string, error) {
	payload := QrPayload{
		RequestID: requestId.String(),
		UserID:    userId,
	}
	raw, err := json.Marshal(&payload)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func ParseQrPayload(raw string) (*QrPayload, error) {
	var payload QrPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GenerateQrImage encodes the payload as a JPEG buffer. The encoder defaults
// pin the error-correction level at Quart so a printed code survives minor
// degradation.
func GenerateQrImage(payload string) ([]byte, error) {
	qrc, err := qrcode.New(payload)
	if err != nil {
		return nil, fmt.Errorf("qr encoding failed: %s", err.Error())
	}
	var buf bytes.Buffer
	if err := qrc.SaveTo(&buf); err != nil {
		return nil, fmt.Errorf("qr encoding failed: %s", err.Error())
	}
	return buf.Bytes(), nil
}

// QrImageDataURL wraps an already-encoded image buffer as a base64 data-URL
// for inline <img> embedding.
func QrImageDataURL(img []byte) string {
	return fmt.Sprintf("data:image/jpeg;base64,%s", base64.StdEncoding.EncodeToString(img))
}

// GenerateQrDataURL renders the artifact straight to its data-URL form.
func GenerateQrDataURL(payload string) (string, error) {
	img, err := GenerateQrImage(payload)
	if err != nil {
		return "", err
	}
	return QrImageDataURL(img), nil
}
