package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cy-rus404/sms-backend/internal/app/models"
)

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)

	assert.True(t, CheckPassword(hashed, "secret123"))
	assert.False(t, CheckPassword(hashed, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "secret123"))
}

func testJWTService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "sms.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService()
	user := &models.User{ID: 7, Username: "jsmith", Role: models.RoleTeacher}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, int(time.Hour.Seconds()), expiresIn)
	assert.Equal(t, int((24 * time.Hour).Seconds()), refreshExpiresIn)

	claims, err := svc.ValidateAndExtractClaims(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "jsmith", claims.Username)
	assert.Equal(t, models.RoleTeacher, claims.Role)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: 7, Username: "jsmith", Role: models.RoleTeacher}
	accessToken, _, _, _, err := testJWTService().GenerateTokenPair(user)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "sms.test",
	})
	_, err = other.ValidateAndExtractClaims(accessToken)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// A raw token without the Bearer prefix passes through unchanged
	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
