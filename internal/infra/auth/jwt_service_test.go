package auth

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/stretchr/testify/assert"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{AccessTokenTTL: time.Hour},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	// Generate a token
	token, err := jwtService.Generate("42", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validate it
	claims, err := jwtService.Validate(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	// Clearly non-JWT format
	claims, err := jwtService.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	token, err := jwtService.Generate("7", "user")
	assert.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_value"
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	claims, err := otherService.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := &jwtService{
		secret:    "test_access_secret_key_very_long_for_testing",
		accessTTL: -time.Minute,
	}

	token, err := svc.Generate("7", "user")
	assert.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.SecretKey.Access = ""

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
