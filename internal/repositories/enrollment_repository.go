package repositories

import (
	"errors"

	"nexivo_backend/internal/models"

	"gorm.io/gorm"
)

type EnrollmentRepository interface {
	FindAll(db *gorm.DB) ([]models.Enrollment, error)
	FindByID(db *gorm.DB, id string) (*models.Enrollment, error)
	Create(db *gorm.DB, enrollment *models.Enrollment) error
	Update(db *gorm.DB, enrollment *models.Enrollment) error
}

type EnrollmentRepositoryImpl struct{}

func NewEnrollmentRepository() EnrollmentRepository {
	return &EnrollmentRepositoryImpl{}
}

func (r *EnrollmentRepositoryImpl) FindAll(db *gorm.DB) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := db.Order("created_at desc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *EnrollmentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := db.First(&enrollment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &enrollment, nil
}

func (r *EnrollmentRepositoryImpl) Create(db *gorm.DB, enrollment *models.Enrollment) error {
	return db.Create(enrollment).Error
}

func (r *EnrollmentRepositoryImpl) Update(db *gorm.DB, enrollment *models.Enrollment) error {
	return db.Save(enrollment).Error
}
