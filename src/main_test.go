package main

import (
	"bloodbank/src/config"
	"bloodbank/src/db"
	"bloodbank/src/lib"
	"bloodbank/src/middlewares"
	"bloodbank/src/models"
	"bloodbank/src/types"
	"bloodbank/src/utils"
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testPassword = "s3cret-pass"

type TestSuite struct {
	suite.Suite
	DB *gorm.DB

	Sent    []*lib.SendMailInput
	MailErr error

	User       models.User
	Admin      models.User
	Token      string
	AdminToken string
}

var dbi *gorm.DB

func (s *TestSuite) SetupSuite() {
	os.Setenv("JWT_SECRET", "test-jwt-secret")
	os.Setenv("REFRESH_TOKEN_SECRET", "test-refresh-secret")
	gin.SetMode(gin.TestMode)

	registerCustomValidators()

	d, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("error opening test database: %s", err.Error())
	}
	db.NewDB(d)
	s.DB = d
	dbi = d

	err = dbi.AutoMigrate(
		&models.User{},
		&models.UserInfo{},
		&models.BloodRequest{},
		&models.QrCode{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	lib.NewMailSender(func(in *lib.SendMailInput) error {
		if s.MailErr != nil {
			return s.MailErr
		}
		s.Sent = append(s.Sent, in)
		return nil
	})

	s.User, s.Token = s.createUser("donor", types.ROLE_USER)
	s.Admin, s.AdminToken = s.createUser("overseer", types.ROLE_ADMIN)
}

func (s *TestSuite) TearDownSuite() {
	inner, err := s.DB.DB()
	if err != nil {
		log.Printf("Error accessing inner db instance: %s\n", err.Error())
		return
	}
	inner.Exec(`
	DELETE FROM qr_codes WHERE true;
	DELETE FROM blood_requests WHERE true;
	DELETE FROM user_infos WHERE true;
	DELETE FROM users WHERE true;
	`)
	inner.Close()
}

func (s *TestSuite) createUser(username, role string) (models.User, string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(testPassword), 10)
	user := models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: string(hash),
		Role:     role,
	}
	if err := dbi.Create(&user).Error; err != nil {
		log.Fatalf("Could not create user due to error: %s\n", err.Error())
	}
	token, err := utils.GenerateJWT(user.Username, user.ID, user.Role)
	if err != nil {
		log.Fatalf("Error generating JWT token: %s\n", err.Error())
	}
	return user, token
}

func (s *TestSuite) createRequest(userId uint) *models.BloodRequest {
	request := models.BloodRequest{
		UserID:           userId,
		BloodTypeID:      "O+",
		Quantity:         2,
		RequestDate:      time.Now(),
		RequiredBy:       time.Now().Add(72 * time.Hour),
		Status:           types.REQUEST_PENDING,
		DeliveryAddress:  "12 Hill St",
		ContactNumber:    "09171234567",
		ReasonForRequest: "Surgery",
		HospitalName:     "St. Luke's",
	}
	if err := dbi.Create(&request).Error; err != nil {
		log.Fatalf("Could not create blood request: %s\n", err.Error())
	}
	return &request
}

func (s *TestSuite) reloadRequest(id uuid.UUID) *models.BloodRequest {
	var request models.BloodRequest
	err := dbi.Where("id = ?", id).First(&request).Error
	s.Require().NoError(err)
	return &request
}

// authRouter builds the full authenticated surface the way main does.
func (s *TestSuite) authRouter() *gin.Engine {
	router := setupRouter()
	guestAuthRoutes(router)
	apiv1 := apiv1Group(router)
	apiv1.Use(middlewares.AuthMiddleware)
	accountHandlers(apiv1)
	requestHandlers(apiv1)
	userInfoHandlers(apiv1)
	adminHandlers(apiv1)
	return router
}

func (s *TestSuite) do(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validRequestBody() map[string]any {
	return map[string]any{
		"blood_type_id":      "A+",
		"quantity":           3,
		"request_date":       time.Now().Format(config.TIME_PARSE_FORMAT),
		"required_by":        time.Now().Add(48 * time.Hour).Format(config.TIME_PARSE_FORMAT),
		"status":             "Pending",
		"delivery_address":   "45 Main Ave",
		"contact_number":     "09179876543",
		"reason_for_request": "Transfusion",
		"hospital_name":      "General Hospital",
	}
}

func (s *TestSuite) TestPingRoute() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestMaintenanceMode() {
	os.Setenv("MAINTENANCE_MODE", "true")
	defer os.Setenv("MAINTENANCE_MODE", "false")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	apiv1Group(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 503, w.Code)
}

func (s *TestSuite) TestRegisterAndLogin() {
	router := s.authRouter()

	s.Run("Should register a new account", func() {
		w := s.do(router, "POST", "/api/v1/auth/register", "", map[string]any{
			"username": "Newcomer",
			"email":    "newcomer@example.com",
			"password": testPassword,
		})
		assert.Equal(s.T(), http.StatusCreated, w.Code)
		body := w.Body.String()
		assert.Equal(s.T(), "newcomer", gjson.Get(body, "data.username").String())
		assert.Equal(s.T(), "User", gjson.Get(body, "data.role").String())
	})

	s.Run("Should reject a duplicate registration", func() {
		w := s.do(router, "POST", "/api/v1/auth/register", "", map[string]any{
			"username": "newcomer",
			"email":    "other@example.com",
			"password": testPassword,
		})
		assert.Equal(s.T(), http.StatusConflict, w.Code)
	})

	s.Run("Should reject a wrong password", func() {
		w := s.do(router, "POST", "/api/v1/auth/login", "", map[string]any{
			"identifier": "newcomer",
			"password":   "wrong-password",
		})
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("Should login by username or email", func() {
		w := s.do(router, "POST", "/api/v1/auth/login", "", map[string]any{
			"identifier": "newcomer",
			"password":   testPassword,
		})
		assert.Equal(s.T(), http.StatusOK, w.Code)
		body := w.Body.String()
		assert.NotEmpty(s.T(), gjson.Get(body, "access_token").String())
		assert.NotEmpty(s.T(), gjson.Get(body, "refresh_token").String())

		w = s.do(router, "POST", "/api/v1/auth/login", "", map[string]any{
			"identifier": "newcomer@example.com",
			"password":   testPassword,
		})
		assert.Equal(s.T(), http.StatusOK, w.Code)
	})
}

func (s *TestSuite) TestRefreshAndLogout() {
	router := s.authRouter()

	user, token := s.createUser("rotator", types.ROLE_USER)
	w := s.do(router, "POST", "/api/v1/auth/login", "", map[string]any{
		"identifier": user.Username,
		"password":   testPassword,
	})
	s.Require().Equal(http.StatusOK, w.Code)
	refreshToken := gjson.Get(w.Body.String(), "refresh_token").String()

	s.Run("Should rotate the token pair", func() {
		w := s.do(router, "POST", "/api/v1/auth/refresh", "", map[string]any{
			"refresh_token": refreshToken,
		})
		assert.Equal(s.T(), http.StatusOK, w.Code)
		rotated := gjson.Get(w.Body.String(), "refresh_token").String()
		assert.NotEmpty(s.T(), rotated)

		// the replaced token no longer matches the stored one
		w = s.do(router, "POST", "/api/v1/auth/refresh", "", map[string]any{
			"refresh_token": refreshToken,
		})
		if rotated != refreshToken {
			assert.Equal(s.T(), http.StatusForbidden, w.Code)
		}
		refreshToken = rotated
	})

	s.Run("Should drop the stored token on logout", func() {
		w := s.do(router, "POST", "/api/v1/auth/logout", token, nil)
		assert.Equal(s.T(), http.StatusOK, w.Code)

		w = s.do(router, "POST", "/api/v1/auth/refresh", "", map[string]any{
			"refresh_token": refreshToken,
		})
		assert.Equal(s.T(), http.StatusForbidden, w.Code)
	})
}

func (s *TestSuite) TestPasswordResetFlow() {
	router := s.authRouter()
	user, _ := s.createUser("forgetful", types.ROLE_USER)

	before := len(s.Sent)
	w := s.do(router, "POST", "/api/v1/auth/forgot-password", "", map[string]any{
		"email": user.Email,
	})
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().Len(s.Sent, before+1)
	assert.Equal(s.T(), []string{user.Email}, s.Sent[before].To)

	var stored models.User
	s.Require().NoError(dbi.Where("id = ?", user.ID).First(&stored).Error)
	s.Require().NotNil(stored.Otp)
	assert.Contains(s.T(), s.Sent[before].Body, *stored.Otp)

	s.Run("Should reject a wrong code", func() {
		w := s.do(router, "POST", "/api/v1/auth/validate-otp", "", map[string]any{
			"email": user.Email,
			"otp":   "000000",
		})
		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})

	s.Run("Should consume the code on success", func() {
		w := s.do(router, "POST", "/api/v1/auth/validate-otp", "", map[string]any{
			"email": user.Email,
			"otp":   *stored.Otp,
		})
		assert.Equal(s.T(), http.StatusOK, w.Code)

		// single use
		w = s.do(router, "POST", "/api/v1/auth/validate-otp", "", map[string]any{
			"email": user.Email,
			"otp":   *stored.Otp,
		})
		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})

	s.Run("Should login with the new password", func() {
		w := s.do(router, "POST", "/api/v1/auth/reset-password", "", map[string]any{
			"user_id":      user.ID,
			"new_password": "brand-new-pass",
		})
		assert.Equal(s.T(), http.StatusOK, w.Code)

		w = s.do(router, "POST", "/api/v1/auth/login", "", map[string]any{
			"identifier": user.Username,
			"password":   "brand-new-pass",
		})
		assert.Equal(s.T(), http.StatusOK, w.Code)
	})

	s.Run("Should reject an expired code", func() {
		w := s.do(router, "POST", "/api/v1/auth/forgot-password", "", map[string]any{
			"email": user.Email,
		})
		s.Require().Equal(http.StatusOK, w.Code)
		var fresh models.User
		s.Require().NoError(dbi.Where("id = ?", user.ID).First(&fresh).Error)
		s.Require().NotNil(fresh.Otp)

		expired := time.Now().Add(-time.Minute)
		dbi.Model(&fresh).Updates(map[string]any{"otp_expires_at": expired})

		w = s.do(router, "POST", "/api/v1/auth/validate-otp", "", map[string]any{
			"email": user.Email,
			"otp":   *fresh.Otp,
		})
		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}

func (s *TestSuite) TestSubmitRequest() {
	router := s.authRouter()

	s.Run("Should create a pending request with cleared flags", func() {
		w := s.do(router, "POST", "/api/v1/requests", s.Token, validRequestBody())
		assert.Equal(s.T(), http.StatusCreated, w.Code)
		body := w.Body.String()
		assert.Equal(s.T(), "Pending", gjson.Get(body, "data.status").String())
		assert.False(s.T(), gjson.Get(body, "data.is_accepted").Bool())
		assert.False(s.T(), gjson.Get(body, "data.is_approved").Bool())
		assert.False(s.T(), gjson.Get(body, "data.is_qr_sent").Bool())
		assert.False(s.T(), gjson.Get(body, "data.is_mail_sent").Bool())
		assert.False(s.T(), gjson.Get(body, "data.urgent").Bool())
	})

	s.Run("Should reject a request with a missing field", func() {
		body := validRequestBody()
		delete(body, "contact_number")
		w := s.do(router, "POST", "/api/v1/requests", s.Token, body)
		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})

	s.Run("Should reject a required-by date before the request date", func() {
		body := validRequestBody()
		body["required_by"] = time.Now().Add(-48 * time.Hour).Format(config.TIME_PARSE_FORMAT)
		w := s.do(router, "POST", "/api/v1/requests", s.Token, body)
		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})

	s.Run("Should require authentication", func() {
		w := s.do(router, "POST", "/api/v1/requests", "", validRequestBody())
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("Should list own requests", func() {
		w := s.do(router, "POST", "/api/v1/requests/status", s.Token, nil)
		assert.Equal(s.T(), http.StatusOK, w.Code)
		assert.GreaterOrEqual(s.T(), gjson.Get(w.Body.String(), "count").Int(), int64(1))
	})
}

func (s *TestSuite) TestDecideAccept() {
	router := s.authRouter()
	request := s.createRequest(s.User.ID)

	before := len(s.Sent)
	w := s.do(router, "POST", "/api/v1/requests/decide", s.Token, map[string]any{
		"request_id":  request.ID.String(),
		"user_id":     s.User.ID,
		"is_accepted": true,
	})
	s.Require().Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(s.T(), "Accepted", gjson.Get(body, "data.status").String())
	assert.True(s.T(), gjson.Get(body, "data.qr_sent").Bool())
	assert.True(s.T(), gjson.Get(body, "data.mail_sent").Bool())

	stored := s.reloadRequest(request.ID)
	assert.Equal(s.T(), types.REQUEST_ACCEPTED, stored.Status)
	assert.True(s.T(), stored.IsAccepted)
	assert.True(s.T(), stored.IsQrSent)
	assert.True(s.T(), stored.IsMailSent)

	s.Require().Len(s.Sent, before+1)
	mail := s.Sent[before]
	assert.Equal(s.T(), []string{s.User.Email}, mail.To)
	s.Require().Len(mail.Embeds, 1)
	assert.NotEmpty(s.T(), mail.Embeds[0].Data)
	assert.Contains(s.T(), mail.Body, fmt.Sprintf(`cid:%s`, mail.Embeds[0].Name))

	var qr models.QrCode
	s.Require().NoError(dbi.Where("request_id = ?", request.ID).First(&qr).Error)
	assert.Equal(s.T(), s.User.ID, qr.UserID)
	assert.Contains(s.T(), qr.DataURL, "data:image/jpeg;base64,")

	s.Run("Should conflict once the QR has been sent", func() {
		w := s.do(router, "POST", "/api/v1/requests/decide", s.Token, map[string]any{
			"request_id":  request.ID.String(),
			"user_id":     s.User.ID,
			"is_accepted": true,
		})
		assert.Equal(s.T(), http.StatusConflict, w.Code)
	})

	s.Run("Should conflict on reject after accept", func() {
		w := s.do(router, "POST", "/api/v1/requests/decide", s.Token, map[string]any{
			"request_id":  request.ID.String(),
			"user_id":     s.User.ID,
			"is_accepted": false,
		})
		assert.Equal(s.T(), http.StatusConflict, w.Code)
		stored := s.reloadRequest(request.ID)
		assert.Equal(s.T(), types.REQUEST_ACCEPTED, stored.Status)
	})
}

func (s *TestSuite) TestDecideReject() {
	router := s.authRouter()
	request := s.createRequest(s.User.ID)

	before := len(s.Sent)
	w := s.do(router, "POST", "/api/v1/requests/decide", s.Token, map[string]any{
		"request_id":  request.ID.String(),
		"user_id":     s.User.ID,
		"is_accepted": false,
	})
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(s.T(), "Rejected", gjson.Get(w.Body.String(), "data.status").String())

	stored := s.reloadRequest(request.ID)
	assert.Equal(s.T(), types.REQUEST_REJECTED, stored.Status)
	assert.False(s.T(), stored.IsAccepted)
	assert.False(s.T(), stored.IsQrSent)
	assert.False(s.T(), stored.IsMailSent)
	assert.Len(s.T(), s.Sent, before)

	var count int64
	dbi.Model(&models.QrCode{}).Where("request_id = ?", request.ID).Count(&count)
	assert.Zero(s.T(), count)
}

func (s *TestSuite) TestDecideGuards() {
	router := s.authRouter()

	s.Run("Should return 404 for an unknown request", func() {
		w := s.do(router, "POST", "/api/v1/requests/decide", s.Token, map[string]any{
			"request_id":  uuid.NewString(),
			"user_id":     s.User.ID,
			"is_accepted": true,
		})
		assert.Equal(s.T(), http.StatusNotFound, w.Code)
	})

	s.Run("Should return 403 when the caller does not own the request", func() {
		request := s.createRequest(s.User.ID)
		w := s.do(router, "POST", "/api/v1/requests/decide", s.AdminToken, map[string]any{
			"request_id":  request.ID.String(),
			"user_id":     s.Admin.ID,
			"is_accepted": true,
		})
		assert.Equal(s.T(), http.StatusForbidden, w.Code)

		stored := s.reloadRequest(request.ID)
		assert.Equal(s.T(), types.REQUEST_PENDING, stored.Status)
		assert.False(s.T(), stored.IsAccepted)
	})

	s.Run("Should return 403 when the body user does not match the session", func() {
		request := s.createRequest(s.User.ID)
		w := s.do(router, "POST", "/api/v1/requests/decide", s.Token, map[string]any{
			"request_id":  request.ID.String(),
			"user_id":     s.Admin.ID,
			"is_accepted": true,
		})
		assert.Equal(s.T(), http.StatusForbidden, w.Code)

		stored := s.reloadRequest(request.ID)
		assert.Equal(s.T(), types.REQUEST_PENDING, stored.Status)
		assert.False(s.T(), stored.IsAccepted)
	})

	s.Run("Should return 400 for a malformed request id", func() {
		w := s.do(router, "POST", "/api/v1/requests/decide", s.Token, map[string]any{
			"request_id":  "not-a-uuid",
			"user_id":     s.User.ID,
			"is_accepted": true,
		})
		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}

func (s *TestSuite) TestDecideMailFailureIsRetriable() {
	router := s.authRouter()
	request := s.createRequest(s.User.ID)

	s.MailErr = fmt.Errorf("smtp connection refused")
	w := s.do(router, "POST", "/api/v1/requests/decide", s.Token, map[string]any{
		"request_id":  request.ID.String(),
		"user_id":     s.User.ID,
		"is_accepted": true,
	})
	s.MailErr = nil
	assert.Equal(s.T(), http.StatusInternalServerError, w.Code)

	// the acceptance survived, delivery did not
	stored := s.reloadRequest(request.ID)
	assert.Equal(s.T(), types.REQUEST_ACCEPTED, stored.Status)
	assert.True(s.T(), stored.IsAccepted)
	assert.False(s.T(), stored.IsQrSent)
	assert.False(s.T(), stored.IsMailSent)

	s.Run("Should complete delivery on retry", func() {
		before := len(s.Sent)
		w := s.do(router, "POST", "/api/v1/requests/decide", s.Token, map[string]any{
			"request_id":  request.ID.String(),
			"user_id":     s.User.ID,
			"is_accepted": true,
		})
		assert.Equal(s.T(), http.StatusOK, w.Code)
		assert.Len(s.T(), s.Sent, before+1)

		stored := s.reloadRequest(request.ID)
		assert.True(s.T(), stored.IsQrSent)
		assert.True(s.T(), stored.IsMailSent)
	})
}

func (s *TestSuite) TestApproveRequest() {
	router := s.authRouter()
	request := s.createRequest(s.User.ID)

	w := s.do(router, "POST", "/api/v1/requests/approve", s.Token, map[string]any{
		"request_id": request.ID.String(),
		"user_id":    s.User.ID,
	})
	s.Require().Equal(http.StatusOK, w.Code)
	assert.True(s.T(), gjson.Get(w.Body.String(), "data.is_approved").Bool())

	s.Run("Should conflict on repeat approval", func() {
		w := s.do(router, "POST", "/api/v1/requests/approve", s.Token, map[string]any{
			"request_id": request.ID.String(),
			"user_id":    s.User.ID,
		})
		assert.Equal(s.T(), http.StatusConflict, w.Code)
	})

	s.Run("Should return 404 for an unknown request", func() {
		w := s.do(router, "POST", "/api/v1/requests/approve", s.Token, map[string]any{
			"request_id": uuid.NewString(),
			"user_id":    s.User.ID,
		})
		assert.Equal(s.T(), http.StatusNotFound, w.Code)
	})

	s.Run("Should return 403 when the body user does not match the session", func() {
		other := s.createRequest(s.User.ID)
		w := s.do(router, "POST", "/api/v1/requests/approve", s.Token, map[string]any{
			"request_id": other.ID.String(),
			"user_id":    s.Admin.ID,
		})
		assert.Equal(s.T(), http.StatusForbidden, w.Code)

		stored := s.reloadRequest(other.ID)
		assert.False(s.T(), stored.IsApproved)
	})
}

func (s *TestSuite) TestAdminSurface() {
	router := s.authRouter()

	s.Run("Should hide the request list from regular users", func() {
		w := s.do(router, "GET", "/api/v1/requests", s.Token, nil)
		assert.Equal(s.T(), http.StatusForbidden, w.Code)
	})

	s.Run("Should list all requests for admins", func() {
		s.createRequest(s.User.ID)
		w := s.do(router, "GET", "/api/v1/requests", s.AdminToken, nil)
		assert.Equal(s.T(), http.StatusOK, w.Code)
		assert.GreaterOrEqual(s.T(), gjson.Get(w.Body.String(), "count").Int(), int64(1))
	})

	s.Run("Should list users for admins", func() {
		w := s.do(router, "POST", "/api/v1/users", s.AdminToken, nil)
		assert.Equal(s.T(), http.StatusOK, w.Code)
		assert.GreaterOrEqual(s.T(), gjson.Get(w.Body.String(), "count").Int(), int64(2))
	})

	s.Run("Should change a user's role", func() {
		user, _ := s.createUser("promotee", types.ROLE_USER)
		w := s.do(router, "PATCH", "/api/v1/users/role", s.AdminToken, map[string]any{
			"user_id": user.ID,
			"role":    "Admin",
		})
		assert.Equal(s.T(), http.StatusOK, w.Code)

		var stored models.User
		s.Require().NoError(dbi.Where("id = ?", user.ID).First(&stored).Error)
		assert.Equal(s.T(), "Admin", stored.Role)
	})

	s.Run("Should reject an unknown role", func() {
		w := s.do(router, "PATCH", "/api/v1/users/role", s.AdminToken, map[string]any{
			"user_id": s.User.ID,
			"role":    "Superuser",
		})
		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}

func (s *TestSuite) TestProfileFlow() {
	router := s.authRouter()
	user, token := s.createUser("profiled", types.ROLE_USER)

	profile := map[string]any{
		"first_name":     "Jamie",
		"last_name":      "Cruz",
		"blood_type":     "B+",
		"birth_date":     "1994-05-20 00:00:00 +08:00",
		"gender":         "Female",
		"phone_number":   "09170001111",
		"street_address": "7 Acacia Rd",
		"city":           "Quezon City",
		"state":          "Metro Manila",
		"postal_code":    "1100",
		"weight":         58.5,
		"diseases":       "None",
	}

	s.Run("Should report an unfilled profile", func() {
		w := s.do(router, "POST", "/api/v1/users/status", token, nil)
		assert.Equal(s.T(), http.StatusOK, w.Code)
		assert.False(s.T(), gjson.Get(w.Body.String(), "is_filled").Bool())
	})

	var infoId int64
	s.Run("Should create the profile and flip the flag", func() {
		w := s.do(router, "POST", "/api/v1/profile", token, profile)
		s.Require().Equal(http.StatusCreated, w.Code)
		infoId = gjson.Get(w.Body.String(), "data.id").Int()

		var stored models.User
		s.Require().NoError(dbi.Where("id = ?", user.ID).First(&stored).Error)
		assert.True(s.T(), stored.IsFilled)
	})

	s.Run("Should fetch the profile by user id", func() {
		w := s.do(router, "GET", fmt.Sprintf("/api/v1/profile/%d", user.ID), token, nil)
		assert.Equal(s.T(), http.StatusOK, w.Code)
		assert.Equal(s.T(), "Jamie", gjson.Get(w.Body.String(), "data.first_name").String())
	})

	s.Run("Should update the profile", func() {
		update := map[string]any{"id": infoId}
		for k, v := range profile {
			update[k] = v
		}
		update["city"] = "Pasig"
		w := s.do(router, "PUT", "/api/v1/profile", token, update)
		assert.Equal(s.T(), http.StatusOK, w.Code)
		assert.Equal(s.T(), "Pasig", gjson.Get(w.Body.String(), "data.city").String())
	})

	s.Run("Should return 404 for a missing profile", func() {
		w := s.do(router, "GET", fmt.Sprintf("/api/v1/profile/%d", 99999), token, nil)
		assert.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}

func TestSuiteRun(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
