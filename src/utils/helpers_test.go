package utils

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-jwt-secret")
	os.Setenv("REFRESH_TOKEN_SECRET", "test-refresh-secret")
	os.Exit(m.Run())
}

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateJWT("donor", 12, "User")
	assert.Nil(t, err)

	claims, err := ParseAccessToken(token)
	assert.Nil(t, err)
	assert.Equal(t, "donor", claims.Username)
	assert.Equal(t, "User", claims.Role)
	assert.Equal(t, "12", claims.Subject)
}

func TestAccessTokenRejectsRefreshSecret(t *testing.T) {
	token, err := GenerateRefreshToken(12)
	assert.Nil(t, err)

	_, err = ParseAccessToken(token)
	assert.NotNil(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken(34)
	assert.Nil(t, err)

	claims, err := ParseRefreshToken(token)
	assert.Nil(t, err)
	assert.Equal(t, "34", claims.Subject)
}

func TestGenerateOTP(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 50; i++ {
		otp, err := GenerateOTP()
		assert.Nil(t, err)
		assert.Regexp(t, pattern, otp)
	}
}
