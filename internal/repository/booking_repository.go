package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Leganyst/hotel-booking/internal/model"
)

type BookingRepository interface {
	// Вернуть копию репозитория, привязанную к транзакции.
	WithTx(tx *gorm.DB) BookingRepository
	// Создать новое бронирование.
	Create(ctx context.Context, booking *model.Booking) error
	// Получить бронирование по ID.
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	// Все бронирования.
	List(ctx context.Context) ([]model.Booking, error)
	// Бронирования номера.
	ListByRoom(ctx context.Context, roomID string) ([]model.Booking, error)
	// Есть ли бронирование номера, пересекающее интервал [checkIn, checkOut).
	ExistsOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
	// Есть ли бронирование номера с датой выезда не раньше today.
	ExistsActiveForRoom(ctx context.Context, roomID string, today time.Time) (bool, error)
	// Удалить бронирование (отмена; история не хранится).
	Delete(ctx context.Context, id string) error
}

// Реализация на GORM.
type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) WithTx(tx *gorm.DB) BookingRepository {
	return &GormBookingRepository{db: tx}
}

func (r *GormBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *GormBookingRepository) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var b model.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) List(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).Order("check_in_date ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormBookingRepository) ListByRoom(ctx context.Context, roomID string) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("check_in_date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormBookingRepository) ExistsOverlapping(
	ctx context.Context,
	roomID string,
	checkIn, checkOut time.Time,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("room_id = ?", roomID).
		Where("check_out_date > ? AND check_in_date < ?", checkIn, checkOut).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormBookingRepository) ExistsActiveForRoom(
	ctx context.Context,
	roomID string,
	today time.Time,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("room_id = ?", roomID).
		Where("check_out_date >= ?", today).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormBookingRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Booking{}, "id = ?", id).Error
}
