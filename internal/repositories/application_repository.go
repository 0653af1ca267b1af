package repositories

import (
	"errors"

	"nexivo_backend/internal/models"

	"gorm.io/gorm"
)

type ApplicationRepository interface {
	FindAll(db *gorm.DB) ([]models.VacancyApplication, error)
	FindByID(db *gorm.DB, id string) (*models.VacancyApplication, error)
	FindByVacancyID(db *gorm.DB, vacancyID string) ([]models.VacancyApplication, error)
	Create(db *gorm.DB, application *models.VacancyApplication) error
	Update(db *gorm.DB, application *models.VacancyApplication) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) FindAll(db *gorm.DB) ([]models.VacancyApplication, error) {
	var applications []models.VacancyApplication
	err := db.Preload("Vacancy").Order("created_at desc").Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.VacancyApplication, error) {
	var application models.VacancyApplication
	err := db.Preload("Vacancy").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByVacancyID(db *gorm.DB, vacancyID string) ([]models.VacancyApplication, error) {
	var applications []models.VacancyApplication
	err := db.Where("vacancy_id = ?", vacancyID).Order("created_at desc").Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.VacancyApplication) error {
	return db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) Update(db *gorm.DB, application *models.VacancyApplication) error {
	return db.Save(application).Error
}
