package util

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sakialabs/RiseUp/config"
)

func TestMain(m *testing.M) {
	config.AppConfig.JWTSecret = "test-secret"
	config.AppConfig.TokenTTL = time.Hour
	os.Exit(m.Run())
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)

	_, err = ValidateToken("")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(7)
	assert.NoError(t, err)

	orig := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = "another-secret"
	defer func() { config.AppConfig.JWTSecret = orig }()

	_, err = ValidateToken(token)
	assert.Error(t, err)
}
