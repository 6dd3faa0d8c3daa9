package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/hotel-booking/internal/model"
)

type CustomerRepository interface {
	// Вернуть копию репозитория, привязанную к транзакции.
	WithTx(tx *gorm.DB) CustomerRepository
	// Создать гостя.
	Create(ctx context.Context, customer *model.Customer) error
	// Найти гостя по ID.
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	// Найти гостя по email.
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
	// Все гости.
	List(ctx context.Context) ([]model.Customer, error)
	// Существует ли гость с таким ID.
	Exists(ctx context.Context, id string) (bool, error)
}

// Реализация на GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) WithTx(tx *gorm.DB) CustomerRepository {
	return &GormCustomerRepository{db: tx}
}

func (r *GormCustomerRepository) Create(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *GormCustomerRepository) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	var c model.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var c model.Customer
	if err := r.db.WithContext(ctx).First(&c, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepository) List(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *GormCustomerRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
