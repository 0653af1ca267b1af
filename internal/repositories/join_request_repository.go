package repositories

import (
	"nexivo_backend/internal/models"

	"gorm.io/gorm"
)

type JoinRequestRepository interface {
	FindAll(db *gorm.DB) ([]models.JoinRequest, error)
	Create(db *gorm.DB, request *models.JoinRequest) error
}

type JoinRequestRepositoryImpl struct{}

func NewJoinRequestRepository() JoinRequestRepository {
	return &JoinRequestRepositoryImpl{}
}

func (r *JoinRequestRepositoryImpl) FindAll(db *gorm.DB) ([]models.JoinRequest, error) {
	var requests []models.JoinRequest
	if err := db.Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *JoinRequestRepositoryImpl) Create(db *gorm.DB, request *models.JoinRequest) error {
	return db.Create(request).Error
}
