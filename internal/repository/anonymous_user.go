package repository

import (
	"errors"
	"fmt"

	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/model"
	"gorm.io/gorm"
)

type AnonymousUserRepository interface {
	Create(guest model.AnonymousUser) (model.AnonymousUser, error)
	GetByToken(token string) (model.AnonymousUser, error)
}

type anonymousUser struct {
	db *gorm.DB
}

func newAnonymousUserRepository(db *gorm.DB) AnonymousUserRepository {
	return &anonymousUser{
		db: db,
	}
}

func (a *anonymousUser) Create(guest model.AnonymousUser) (model.AnonymousUser, error) {
	result := a.db.Create(&guest)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.AnonymousUser{}, fmt.Errorf("%w: display name %q is taken in this party", dto.ErrConflict, guest.DisplayName)
		}
		return model.AnonymousUser{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return guest, nil
}

func (a *anonymousUser) GetByToken(token string) (model.AnonymousUser, error) {
	var found model.AnonymousUser
	result := a.db.First(&found, "token = ?", token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.AnonymousUser{}, fmt.Errorf("%w: invalid user token", dto.ErrNotAuthorized)
		}
		return model.AnonymousUser{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}
