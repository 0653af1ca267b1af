package services

import (
	"context"
	"errors"

	"nexivo_backend/internal/auth"
	"nexivo_backend/internal/logger"
	"nexivo_backend/internal/models"
	"nexivo_backend/internal/repositories"
	"nexivo_backend/internal/services/dto"
	"nexivo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AuthService implements registration and the email-code login flow. One
// email may own up to models.MaxAccountsPerEmail accounts; they share a
// single active login code, so whichever account redeems it, the code is
// spent for all of them.
type AuthService struct {
	users    repositories.UserRepository
	notifier *NotificationService
}

func NewAuthService(users repositories.UserRepository, notifier *NotificationService) *AuthService {
	return &AuthService{users: users, notifier: notifier}
}

func (s *AuthService) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	count, err := s.users.CountByEmail(db, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if count >= models.MaxAccountsPerEmail {
		return nil, apperrors.ErrAccountLimitReached
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Role:         models.UserRoleUser,
		Status:       models.UserStatusPending,
	}
	if err := s.users.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, apperrors.InternalError(err)
	}

	// New accounts verify the same way logins work: a code shared by
	// every account on the email.
	code, err := auth.GenerateOTP()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.users.SetVerificationCode(db, req.Email, code); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.notifier.SendOTP(ctx, req.Email, code); err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "username", user.Username)

	return &dto.RegisterResponse{
		User:              user.Projection(),
		AccountCount:      count + 1,
		AccountsRemaining: models.MaxAccountsPerEmail - count - 1,
	}, nil
}

// SendOTP issues a fresh code and returns the projection of every account
// on the email, so the caller knows up front whether login needs a userId.
func (s *AuthService) SendOTP(ctx context.Context, db *gorm.DB, email string) ([]models.PublicProjection, error) {
	accounts, err := s.users.FindAllByEmail(db, email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(accounts) == 0 {
		return nil, apperrors.ErrAccountNotFound
	}

	code, err := auth.GenerateOTP()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.users.SetVerificationCode(db, email, code); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.notifier.SendOTP(ctx, email, code); err != nil {
		return nil, err
	}

	projections := make([]models.PublicProjection, 0, len(accounts))
	for i := range accounts {
		projections = append(projections, accounts[i].Projection())
	}
	return projections, nil
}

// Login redeems a code. When the email owns several accounts and the
// caller did not name one, a valid code returns the account list instead
// of a token; nothing is mutated until an account is actually picked.
func (s *AuthService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	accounts, err := s.users.FindAllByEmail(db, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(accounts) == 0 {
		return nil, apperrors.ErrInvalidOTP
	}
	if accounts[0].VerificationCode == "" || accounts[0].VerificationCode != req.Code {
		return nil, apperrors.ErrInvalidOTP
	}

	var user *models.User
	switch {
	case req.UserID != "":
		for i := range accounts {
			if accounts[i].ID == req.UserID {
				user = &accounts[i]
				break
			}
		}
		if user == nil {
			return nil, apperrors.ErrAccountNotFound
		}
	case len(accounts) == 1:
		user = &accounts[0]
	default:
		options := make([]models.PublicProjection, 0, len(accounts))
		for i := range accounts {
			options = append(options, accounts[i].Projection())
		}
		return &dto.LoginResponse{Accounts: options}, nil
	}

	user.IsVerified = true
	if user.Status == models.UserStatusPending {
		user.Status = models.UserStatusVerified
	}
	if err := s.users.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	// The code is single-use for the whole email, not just this account.
	if err := s.users.SetVerificationCode(db, req.Email, ""); err != nil {
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)
	projection := user.Projection()
	return &dto.LoginResponse{Token: token, User: &projection}, nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, db *gorm.DB, req *dto.VerifyEmailRequest) error {
	accounts, err := s.users.FindAllByEmail(db, req.Email)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if len(accounts) == 0 {
		return apperrors.ErrInvalidOTP
	}
	if accounts[0].VerificationCode == "" || accounts[0].VerificationCode != req.Code {
		return apperrors.ErrInvalidOTP
	}

	for i := range accounts {
		accounts[i].IsVerified = true
		if accounts[i].Status == models.UserStatusPending {
			accounts[i].Status = models.UserStatusVerified
		}
		if err := s.users.Update(db, &accounts[i]); err != nil {
			return apperrors.InternalError(err)
		}
	}
	if err := s.users.SetVerificationCode(db, req.Email, ""); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "email verified", "email", req.Email, "accounts", len(accounts))
	return nil
}
