package services

import (
	"context"

	"nexivo_backend/internal/logger"
	"nexivo_backend/internal/models"
	"nexivo_backend/internal/repositories"
	"nexivo_backend/internal/services/dto"
	"nexivo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Join requests are the one submission type with no mail side effect; the
// admin panel is expected to poll the list.
type JoinService struct {
	requests repositories.JoinRequestRepository
}

func NewJoinService(requests repositories.JoinRequestRepository) *JoinService {
	return &JoinService{requests: requests}
}

func (s *JoinService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateJoinRequest) (*models.JoinRequest, error) {
	request := &models.JoinRequest{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Education: req.Education,
		Message:   req.Message,
		Status:    models.SubmissionStatusPending,
	}
	if err := s.requests.Create(db, request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "join request created", "request_id", request.ID)
	return request, nil
}

func (s *JoinService) List(db *gorm.DB) ([]models.JoinRequest, error) {
	requests, err := s.requests.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return requests, nil
}
