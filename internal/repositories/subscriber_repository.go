package repositories

import (
	"errors"
	"strings"

	"nexivo_backend/internal/models"

	"gorm.io/gorm"
)

type SubscriberRepository interface {
	FindAll(db *gorm.DB) ([]models.Subscriber, error)
	FindByEmail(db *gorm.DB, email string) (*models.Subscriber, error)
	Create(db *gorm.DB, subscriber *models.Subscriber) error
}

type SubscriberRepositoryImpl struct{}

func NewSubscriberRepository() SubscriberRepository {
	return &SubscriberRepositoryImpl{}
}

func (r *SubscriberRepositoryImpl) FindAll(db *gorm.DB) ([]models.Subscriber, error) {
	var subscribers []models.Subscriber
	if err := db.Order("created_at asc").Find(&subscribers).Error; err != nil {
		return nil, err
	}
	return subscribers, nil
}

func (r *SubscriberRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	err := db.Where("email = ?", email).First(&subscriber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &subscriber, nil
}

func (r *SubscriberRepositoryImpl) Create(db *gorm.DB, subscriber *models.Subscriber) error {
	err := db.Create(subscriber).Error
	if err != nil && isUniqueViolation(err) {
		return ErrSubscriberExists
	}
	return err
}

// isUniqueViolation matches the duplicate-key errors of both postgres and
// sqlite without depending on driver error types.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
