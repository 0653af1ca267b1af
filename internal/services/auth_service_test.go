package services

import (
	"context"
	"fmt"
	"testing"

	"nexivo_backend/internal/models"
	"nexivo_backend/internal/services/dto"
	"nexivo_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAccountLimit(t *testing.T) {
	db := newTestDB(t)
	provider := newFakeEmailProvider()
	c := newTestContainer(t, provider)
	ctx := context.Background()

	for i := 0; i < models.MaxAccountsPerEmail; i++ {
		resp, err := c.Auth.Register(ctx, db, &dto.RegisterRequest{
			Username: fmt.Sprintf("shared-user-%d", i),
			Email:    "shared@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), resp.AccountCount)
		assert.Equal(t, int64(models.MaxAccountsPerEmail-i-1), resp.AccountsRemaining)
	}

	_, err := c.Auth.Register(ctx, db, &dto.RegisterRequest{
		Username: "one-too-many",
		Email:    "shared@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrAccountLimitReached))

	// The limit is per email; other emails are unaffected.
	_, err = c.Auth.Register(ctx, db, &dto.RegisterRequest{
		Username: "someone-else",
		Email:    "other@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)
}

func TestRegisterUsernameTaken(t *testing.T) {
	db := newTestDB(t)
	c := newTestContainer(t, newFakeEmailProvider())
	ctx := context.Background()

	_, err := c.Auth.Register(ctx, db, &dto.RegisterRequest{
		Username: "taken",
		Email:    "a@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = c.Auth.Register(ctx, db, &dto.RegisterRequest{
		Username: "taken",
		Email:    "b@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrUsernameTaken))
}

func TestSendOTPSharedAcrossAccounts(t *testing.T) {
	db := newTestDB(t)
	provider := newFakeEmailProvider()
	c := newTestContainer(t, provider)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := c.Auth.Register(ctx, db, &dto.RegisterRequest{
			Username: fmt.Sprintf("sibling-%d", i),
			Email:    "family@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
	}

	accounts, err := c.Auth.SendOTP(ctx, db, "family@example.com")
	require.NoError(t, err)

	// One projection per sibling account, enough to pick a userId for login.
	require.Len(t, accounts, 3)
	for _, a := range accounts {
		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, a.Username)
		assert.Equal(t, models.UserRoleUser, a.Role)
		assert.Equal(t, models.UserStatusPending, a.Status)
	}

	var users []models.User
	require.NoError(t, db.Where("email = ?", "family@example.com").Find(&users).Error)
	require.Len(t, users, 3)

	code := users[0].VerificationCode
	assert.Len(t, code, 6)
	for _, u := range users {
		assert.Equal(t, code, u.VerificationCode, "all sibling accounts share one code")
	}

	// The code in the mail is the code in the database.
	mails := provider.sentTo("family@example.com")
	require.NotEmpty(t, mails)
	assert.Equal(t, "otp", mails[len(mails)-1].Template)
	assert.Equal(t, code, mails[len(mails)-1].Data["Code"])
}

func TestSendOTPUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	c := newTestContainer(t, newFakeEmailProvider())

	_, err := c.Auth.SendOTP(context.Background(), db, "nobody@example.com")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrAccountNotFound))
}

func TestSendOTPDeliveryFailureSurfaces(t *testing.T) {
	db := newTestDB(t)
	provider := newFakeEmailProvider()
	c := newTestContainer(t, provider)
	ctx := context.Background()

	provider.failTo["user@example.com"] = false
	_, err := c.Auth.Register(ctx, db, &dto.RegisterRequest{
		Username: "flaky",
		Email:    "user@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	provider.failTo["user@example.com"] = true
	_, err = c.Auth.SendOTP(ctx, db, "user@example.com")
	require.Error(t, err, "the login code is the one mail whose failure fails the call")
}

func TestLoginSingleAccount(t *testing.T) {
	db := newTestDB(t)
	provider := newFakeEmailProvider()
	c := newTestContainer(t, provider)
	ctx := context.Background()

	_, err := c.Auth.Register(ctx, db, &dto.RegisterRequest{
		Username: "solo",
		Email:    "solo@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	_, err = c.Auth.SendOTP(ctx, db, "solo@example.com")
	require.NoError(t, err)

	code := provider.last().Data["Code"].(string)

	resp, err := c.Auth.Login(ctx, db, &dto.LoginRequest{Email: "solo@example.com", Code: code})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "solo", resp.User.Username)

	var user models.User
	require.NoError(t, db.First(&user, "username = ?", "solo").Error)
	assert.True(t, user.IsVerified)
	assert.Empty(t, user.VerificationCode, "code is spent after login")

	// Spent codes do not work twice.
	_, err = c.Auth.Login(ctx, db, &dto.LoginRequest{Email: "solo@example.com", Code: code})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidOTP))
}

func TestLoginWrongCodeDoesNotMutate(t *testing.T) {
	db := newTestDB(t)
	provider := newFakeEmailProvider()
	c := newTestContainer(t, provider)
	ctx := context.Background()

	_, err := c.Auth.Register(ctx, db, &dto.RegisterRequest{
		Username: "careful",
		Email:    "careful@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	_, err = c.Auth.SendOTP(ctx, db, "careful@example.com")
	require.NoError(t, err)

	code := provider.last().Data["Code"].(string)
	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	_, err = c.Auth.Login(ctx, db, &dto.LoginRequest{Email: "careful@example.com", Code: wrong})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidOTP))

	// The stored code survives a failed attempt and still works.
	resp, err := c.Auth.Login(ctx, db, &dto.LoginRequest{Email: "careful@example.com", Code: code})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginMultiAccountDisambiguation(t *testing.T) {
	db := newTestDB(t)
	provider := newFakeEmailProvider()
	c := newTestContainer(t, provider)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := c.Auth.Register(ctx, db, &dto.RegisterRequest{
			Username: fmt.Sprintf("twin-%d", i),
			Email:    "twins@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
	}
	_, err := c.Auth.SendOTP(ctx, db, "twins@example.com")
	require.NoError(t, err)
	code := provider.last().Data["Code"].(string)

	// Without userId a valid code returns the account list, no token.
	resp, err := c.Auth.Login(ctx, db, &dto.LoginRequest{Email: "twins@example.com", Code: code})
	require.NoError(t, err)
	assert.Empty(t, resp.Token)
	require.Len(t, resp.Accounts, 2)

	// Nothing was consumed by the listing step.
	var user models.User
	require.NoError(t, db.First(&user, "username = ?", "twin-0").Error)
	assert.Equal(t, code, user.VerificationCode)

	// Picking an account completes the login and spends the code everywhere.
	picked := resp.Accounts[1]
	resp, err = c.Auth.Login(ctx, db, &dto.LoginRequest{Email: "twins@example.com", Code: code, UserID: picked.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, picked.Username, resp.User.Username)

	var users []models.User
	require.NoError(t, db.Where("email = ?", "twins@example.com").Find(&users).Error)
	for _, u := range users {
		assert.Empty(t, u.VerificationCode)
	}
}

func TestLoginWithForeignUserID(t *testing.T) {
	db := newTestDB(t)
	provider := newFakeEmailProvider()
	c := newTestContainer(t, provider)
	ctx := context.Background()

	_, err := c.Auth.Register(ctx, db, &dto.RegisterRequest{
		Username: "owner",
		Email:    "owner@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	reg, err := c.Auth.Register(ctx, db, &dto.RegisterRequest{
		Username: "intruder",
		Email:    "intruder@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = c.Auth.SendOTP(ctx, db, "owner@example.com")
	require.NoError(t, err)
	code := provider.last().Data["Code"].(string)

	// A userId belonging to another email must not be accepted.
	_, err = c.Auth.Login(ctx, db, &dto.LoginRequest{Email: "owner@example.com", Code: code, UserID: reg.User.ID})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrAccountNotFound))
}

func TestVerifyEmail(t *testing.T) {
	db := newTestDB(t)
	provider := newFakeEmailProvider()
	c := newTestContainer(t, provider)
	ctx := context.Background()

	_, err := c.Auth.Register(ctx, db, &dto.RegisterRequest{
		Username: "verifyme",
		Email:    "verify@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	code := provider.last().Data["Code"].(string)

	require.NoError(t, c.Auth.VerifyEmail(ctx, db, &dto.VerifyEmailRequest{Email: "verify@example.com", Code: code}))

	var user models.User
	require.NoError(t, db.First(&user, "username = ?", "verifyme").Error)
	assert.True(t, user.IsVerified)
	assert.Equal(t, models.UserStatusVerified, user.Status)
	assert.Empty(t, user.VerificationCode)
}
