package auth

import (
	"errors"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// AuthRepository defines database operations for admin accounts
type AuthRepository interface {
	GetUserByUsername(username string) (*AdminUser, error)
	GetUserByID(id uint) (*AdminUser, error)
	CreateUser(user *AdminUser) error
	CountUsers() (int64, error)
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) GetUserByUsername(username string) (*AdminUser, error) {
	var user AdminUser
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *authRepository) GetUserByID(id uint) (*AdminUser, error) {
	var user AdminUser
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *authRepository) CreateUser(user *AdminUser) error {
	return r.db.Create(user).Error
}

func (r *authRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&AdminUser{}).Count(&count).Error
	return count, err
}
