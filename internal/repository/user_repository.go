package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Leganyst/hotel-booking/internal/model"
)

type UserRepository interface {
	// Создать пользователя API.
	Create(ctx context.Context, user *model.User) error
	// Найти пользователя по ID.
	GetByID(ctx context.Context, id string) (*model.User, error)
	// Найти пользователя по email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// Существует ли пользователь с таким email.
	EmailTaken(ctx context.Context, email string) (bool, error)
}

type SessionRepository interface {
	// Сохранить сессию выданного токена.
	Create(ctx context.Context, session *model.Session) error
	// Найти живую сессию по ID (jti токена).
	Get(ctx context.Context, id string) (*model.Session, error)
	// Удалить сессию (logout).
	Delete(ctx context.Context, id string) error
	// Удалить истёкшие сессии.
	DeleteExpired(ctx context.Context, now time.Time) error
}

// Реализация на GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *GormUserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Реализация на GORM.
type GormSessionRepository struct {
	db *gorm.DB
}

func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

func (r *GormSessionRepository) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *GormSessionRepository) Get(ctx context.Context, id string) (*model.Session, error) {
	var s model.Session
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormSessionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Session{}, "id = ?", id).Error
}

func (r *GormSessionRepository) DeleteExpired(ctx context.Context, now time.Time) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&model.Session{}).Error
}
