package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Leganyst/hotel-booking/internal/model"
)

type PaymentRepository interface {
	// Вернуть копию репозитория, привязанную к транзакции.
	WithTx(tx *gorm.DB) PaymentRepository
	// Создать платёж.
	Create(ctx context.Context, payment *model.Payment) error
	// Найти платёж по ID.
	GetByID(ctx context.Context, id string) (*model.Payment, error)
	// Все платежи.
	List(ctx context.Context) ([]model.Payment, error)
	// Есть ли уже платёж по бронированию на эту дату.
	ExistsForBookingAndDate(ctx context.Context, bookingID string, date time.Time) (bool, error)
}

// Реализация на GORM.
type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) WithTx(tx *gorm.DB) PaymentRepository {
	return &GormPaymentRepository{db: tx}
}

func (r *GormPaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *GormPaymentRepository) GetByID(ctx context.Context, id string) (*model.Payment, error) {
	var p model.Payment
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormPaymentRepository) List(ctx context.Context) ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.db.WithContext(ctx).Order("payment_date DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *GormPaymentRepository) ExistsForBookingAndDate(
	ctx context.Context,
	bookingID string,
	date time.Time,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("booking_id = ?", bookingID).
		Where("payment_date = ?", date).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
