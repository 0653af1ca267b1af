package repositories

import (
	"errors"

	"nexivo_backend/internal/models"

	"gorm.io/gorm"
)

type BlogRepository interface {
	FindAll(db *gorm.DB) ([]models.Blog, error)
	FindByID(db *gorm.DB, id string) (*models.Blog, error)
	Create(db *gorm.DB, blog *models.Blog) error
	Update(db *gorm.DB, blog *models.Blog) error
	Delete(db *gorm.DB, id string) error
	// IncrementReaction bumps one counter atomically.
	IncrementReaction(db *gorm.DB, id string, kind models.ReactionKind) error
}

type BlogRepositoryImpl struct{}

func NewBlogRepository() BlogRepository {
	return &BlogRepositoryImpl{}
}

func (r *BlogRepositoryImpl) FindAll(db *gorm.DB) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := db.Order("created_at desc").Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *BlogRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Blog, error) {
	var blog models.Blog
	err := db.First(&blog, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepositoryImpl) Create(db *gorm.DB, blog *models.Blog) error {
	return db.Create(blog).Error
}

func (r *BlogRepositoryImpl) Update(db *gorm.DB, blog *models.Blog) error {
	return db.Save(blog).Error
}

func (r *BlogRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Blog{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *BlogRepositoryImpl) IncrementReaction(db *gorm.DB, id string, kind models.ReactionKind) error {
	column := models.ReactionColumn(kind)
	if column == "" {
		return errors.New("unknown reaction kind")
	}

	result := db.Model(&models.Blog{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
