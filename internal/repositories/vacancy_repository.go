package repositories

import (
	"errors"

	"nexivo_backend/internal/models"

	"gorm.io/gorm"
)

type VacancyRepository interface {
	FindAll(db *gorm.DB) ([]models.Vacancy, error)
	FindByID(db *gorm.DB, id string) (*models.Vacancy, error)
	Create(db *gorm.DB, vacancy *models.Vacancy) error
	Update(db *gorm.DB, vacancy *models.Vacancy) error
	Delete(db *gorm.DB, id string) error
}

type VacancyRepositoryImpl struct{}

func NewVacancyRepository() VacancyRepository {
	return &VacancyRepositoryImpl{}
}

func (r *VacancyRepositoryImpl) FindAll(db *gorm.DB) ([]models.Vacancy, error) {
	var vacancies []models.Vacancy
	if err := db.Order("created_at desc").Find(&vacancies).Error; err != nil {
		return nil, err
	}
	return vacancies, nil
}

func (r *VacancyRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Vacancy, error) {
	var vacancy models.Vacancy
	err := db.First(&vacancy, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &vacancy, nil
}

func (r *VacancyRepositoryImpl) Create(db *gorm.DB, vacancy *models.Vacancy) error {
	return db.Create(vacancy).Error
}

func (r *VacancyRepositoryImpl) Update(db *gorm.DB, vacancy *models.Vacancy) error {
	return db.Save(vacancy).Error
}

func (r *VacancyRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Vacancy{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
