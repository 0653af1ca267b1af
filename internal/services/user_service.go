package services

import (
	"context"
	"errors"

	"nexivo_backend/internal/auth"
	"nexivo_backend/internal/logger"
	"nexivo_backend/internal/models"
	"nexivo_backend/internal/repositories"
	"nexivo_backend/internal/services/dto"
	"nexivo_backend/internal/storage"
	"nexivo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService struct {
	users   repositories.UserRepository
	catalog repositories.ServiceRepository
	uploads *storage.Gateway
}

func NewUserService(users repositories.UserRepository, catalog repositories.ServiceRepository, uploads *storage.Gateway) *UserService {
	return &UserService{users: users, catalog: catalog, uploads: uploads}
}

func (s *UserService) GetProfile(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.users.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateProfile changes phone and password, and swaps the profile image
// when a new one is supplied. Usernames stay fixed.
func (s *UserService) UpdateProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest, image []byte, imageName, imageMime string) (*models.User, error) {
	user, err := s.GetProfile(db, userID)
	if err != nil {
		return nil, err
	}

	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hash
	}

	if len(image) > 0 {
		ref, err := s.uploads.Store(ctx, image, imageName, imageMime)
		if err != nil {
			return nil, apperrors.ErrUploadFailed(err, "Failed to upload profile image")
		}
		user.ProfileImage = ref
	}

	if err := s.users.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "profile updated", "user_id", userID)
	return user, nil
}

// ChooseServices records which catalog services the user is interested
// in and marks the onboarding as completed.
func (s *UserService) ChooseServices(ctx context.Context, db *gorm.DB, userID string, serviceIDs []string) (*models.User, error) {
	user, err := s.GetProfile(db, userID)
	if err != nil {
		return nil, err
	}

	services, err := s.catalog.FindByIDs(db, serviceIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(services) != len(serviceIDs) {
		return nil, apperrors.ValidationError(map[string]string{"services": "One or more services do not exist"})
	}

	if err := s.users.ReplaceServices(db, user, services); err != nil {
		return nil, apperrors.InternalError(err)
	}
	// Keep the in-memory association in step with what Replace just wrote,
	// otherwise Save would resurrect the old join rows.
	user.Services = services
	user.Status = models.UserStatusCompleted
	if err := s.users.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "services chosen", "user_id", userID, "count", len(services))
	return user, nil
}

// DeleteAccount removes a user. The handler decides whether the caller
// may delete this particular account (self or admin).
func (s *UserService) DeleteAccount(ctx context.Context, db *gorm.DB, userID string) error {
	if err := s.users.Delete(db, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) || errors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "account deleted", "user_id", userID)
	return nil
}

func (s *UserService) ListUsers(db *gorm.DB) ([]models.User, error) {
	users, err := s.users.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}
