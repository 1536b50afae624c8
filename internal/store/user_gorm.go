package store

import (
	"context"
	"errors"

	"catalog-service/internal/model"

	"gorm.io/gorm"
)

// UserGormStore is the GORM-backed UserStore.
type UserGormStore struct {
	db *gorm.DB
}

func NewUserGormStore(db *gorm.DB) *UserGormStore {
	return &UserGormStore{db: db}
}

func (s *UserGormStore) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := s.db.WithContext(ctx).Order("name asc").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserGormStore) Find(ctx context.Context, id uint) (model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (s *UserGormStore) FindByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}
