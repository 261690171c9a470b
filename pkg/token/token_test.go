package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestGenerateAndValidateJWT(t *testing.T) {
	signed, err := GenerateJWT(7, "admin", testSecret, 15)
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := ValidateJWT(signed, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	signed, err := GenerateJWT(7, "admin", testSecret, 15)
	assert.NoError(t, err)

	_, err = ValidateJWT(signed, "other-secret")
	assert.Error(t, err)
}

func TestValidateJWTExpired(t *testing.T) {
	signed, err := GenerateJWT(7, "admin", testSecret, -1)
	assert.NoError(t, err)

	_, err = ValidateJWT(signed, testSecret)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestValidateJWTEmpty(t *testing.T) {
	_, err := ValidateJWT("", testSecret)
	assert.Error(t, err)

	_, err = ValidateJWT("not-a-token", "")
	assert.Error(t, err)
}
