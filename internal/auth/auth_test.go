package auth

import (
	"os"
	"strconv"
	"testing"

	"nexivo_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLHours = 1
	config.AppConfig = cfg

	os.Exit(m.Run())
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "u@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "u@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)

	_, err = ParseToken("")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", "u@example.com", "user")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "some-other-secret"
	defer func() { config.AppConfig.JWT.Secret = "test-secret" }()

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestGenerateOTP(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1, "codes vary")
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
