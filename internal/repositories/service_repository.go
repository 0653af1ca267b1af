package repositories

import (
	"errors"

	"nexivo_backend/internal/models"

	"gorm.io/gorm"
)

type ServiceRepository interface {
	FindAll(db *gorm.DB) ([]models.Service, error)
	FindByID(db *gorm.DB, id string) (*models.Service, error)
	FindByIDs(db *gorm.DB, ids []string) ([]models.Service, error)
	Create(db *gorm.DB, service *models.Service) error
	Update(db *gorm.DB, service *models.Service) error
	Delete(db *gorm.DB, id string) error
}

type ServiceRepositoryImpl struct{}

func NewServiceRepository() ServiceRepository {
	return &ServiceRepositoryImpl{}
}

func (r *ServiceRepositoryImpl) FindAll(db *gorm.DB) ([]models.Service, error) {
	var services []models.Service
	if err := db.Order("created_at desc").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Service, error) {
	var service models.Service
	err := db.First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepositoryImpl) FindByIDs(db *gorm.DB, ids []string) ([]models.Service, error) {
	var services []models.Service
	if err := db.Where("id IN ?", ids).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepositoryImpl) Create(db *gorm.DB, service *models.Service) error {
	return db.Create(service).Error
}

func (r *ServiceRepositoryImpl) Update(db *gorm.DB, service *models.Service) error {
	return db.Save(service).Error
}

func (r *ServiceRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
