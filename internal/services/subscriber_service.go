package services

import (
	"context"
	"errors"

	"nexivo_backend/internal/email"
	"nexivo_backend/internal/logger"
	"nexivo_backend/internal/models"
	"nexivo_backend/internal/repositories"
	"nexivo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SubscriberService struct {
	subscribers repositories.SubscriberRepository
	notifier    *NotificationService
}

func NewSubscriberService(subscribers repositories.SubscriberRepository, notifier *NotificationService) *SubscriberService {
	return &SubscriberService{subscribers: subscribers, notifier: notifier}
}

// Subscribe opts an address into broadcasts. Subscribing twice is not an
// error; the existing record is returned with created=false and no welcome
// mail is re-sent.
func (s *SubscriberService) Subscribe(ctx context.Context, db *gorm.DB, address string) (*models.Subscriber, bool, error) {
	existing, err := s.subscribers.FindByEmail(db, address)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repositories.ErrRecordNotFound) {
		return nil, false, apperrors.InternalError(err)
	}

	subscriber := &models.Subscriber{Email: address}
	if err := s.subscribers.Create(db, subscriber); err != nil {
		if errors.Is(err, repositories.ErrSubscriberExists) {
			// Lost a race with a concurrent subscribe; treat it the same.
			existing, err := s.subscribers.FindByEmail(db, address)
			return existing, false, err
		}
		return nil, false, apperrors.InternalError(err)
	}

	s.notifier.Notify(ctx, address, "Welcome to our updates", "welcome", email.TemplateData{})

	logger.CtxInfo(ctx, "subscriber added", "subscriber_id", subscriber.ID)
	return subscriber, true, nil
}

func (s *SubscriberService) List(db *gorm.DB) ([]models.Subscriber, error) {
	subscribers, err := s.subscribers.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return subscribers, nil
}
