package repository

import (
	"errors"
	"fmt"

	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(id string) (model.User, error)
	Create(user model.User) (model.User, error)
	Save(user model.User) (model.User, error)
}

type user struct {
	db *gorm.DB
}

func newUserRepository(db *gorm.DB) UserRepository {
	return &user{
		db: db,
	}
}

func (u *user) GetByID(id string) (model.User, error) {
	var found model.User
	result := u.db.First(&found, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("%w: user %s", dto.ErrNotFound, id)
		}
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (u *user) Create(user model.User) (model.User, error) {
	result := u.db.Create(&user)
	if result.Error != nil {
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return user, nil
}

func (u *user) Save(user model.User) (model.User, error) {
	result := u.db.Save(&user)
	if result.Error != nil {
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return user, nil
}
