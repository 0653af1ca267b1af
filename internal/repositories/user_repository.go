package repositories

import (
	"errors"

	"nexivo_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrSubscriberExists = errors.New("subscriber already exists")
	ErrRecordNotFound   = errors.New("record not found")
)

// UserRepository owns Account persistence. The *gorm.DB is request-scoped
// (pool or test transaction) and always passed in by the caller.
type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByUsername(db *gorm.DB, username string) (*models.User, error)
	// FindAllByEmail returns every sibling account sharing the email.
	FindAllByEmail(db *gorm.DB, email string) ([]models.User, error)
	FindByEmailAndID(db *gorm.DB, email, id string) (*models.User, error)
	CountByEmail(db *gorm.DB, email string) (int64, error)
	Create(db *gorm.DB, user *models.User) error
	Update(db *gorm.DB, user *models.User) error
	// SetVerificationCode stamps one code onto every account with the email.
	SetVerificationCode(db *gorm.DB, email, code string) error
	ReplaceServices(db *gorm.DB, user *models.User, services []models.Service) error
	Delete(db *gorm.DB, id string) error
	FindAll(db *gorm.DB) ([]models.User, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Preload("Services").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindAllByEmail(db *gorm.DB, email string) ([]models.User, error) {
	var users []models.User
	if err := db.Where("email = ?", email).Order("created_at asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepositoryImpl) FindByEmailAndID(db *gorm.DB, email, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ? AND id = ?", email, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) CountByEmail(db *gorm.DB, email string) (int64, error) {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	var existing models.User
	err := db.Where("username = ?", user.Username).First(&existing).Error
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	err = db.Create(user).Error
	// The uniqueIndex catches the race the lookup above cannot see.
	if err != nil && isUniqueViolation(err) {
		return ErrUsernameTaken
	}
	return err
}

func (r *UserRepositoryImpl) Update(db *gorm.DB, user *models.User) error {
	return db.Save(user).Error
}

func (r *UserRepositoryImpl) SetVerificationCode(db *gorm.DB, email, code string) error {
	return db.Model(&models.User{}).
		Where("email = ?", email).
		Update("verification_code", code).Error
}

func (r *UserRepositoryImpl) ReplaceServices(db *gorm.DB, user *models.User, services []models.Service) error {
	return db.Model(user).Association("Services").Replace(services)
}

func (r *UserRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindAll(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
