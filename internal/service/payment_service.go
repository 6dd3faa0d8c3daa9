package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/hotel-booking/internal/model"
	"github.com/Leganyst/hotel-booking/internal/repository"
	"github.com/Leganyst/hotel-booking/internal/stay"
)

type CreatePaymentInput struct {
	BookingID   string
	Amount      float64
	PaymentDate time.Time
	Status      model.PaymentStatus
}

// PaymentService — платежи по бронированиям.
type PaymentService struct {
	bookings repository.BookingRepository
	payments repository.PaymentRepository
}

func NewPaymentService(
	bookings repository.BookingRepository,
	payments repository.PaymentRepository,
) *PaymentService {
	return &PaymentService{bookings: bookings, payments: payments}
}

// Validate проверяет, допустим ли новый платёж по бронированию на дату.
// Чистая проверка уникальности пары (бронирование, дата): сумма и статус
// не участвуют.
func (s *PaymentService) Validate(ctx context.Context, bookingID string, date time.Time) (bool, error) {
	exists, err := s.payments.ExistsForBookingAndDate(ctx, bookingID, stay.Day(date))
	if err != nil {
		return false, fmt.Errorf("check payment uniqueness: %w", err)
	}
	return !exists, nil
}

// Create регистрирует платёж.
func (s *PaymentService) Create(ctx context.Context, in CreatePaymentInput) (*model.Payment, error) {
	bookingID, err := uuid.Parse(in.BookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	if _, err := s.bookings.GetByID(ctx, in.BookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}

	ok, err := s.Validate(ctx, in.BookingID, in.PaymentDate)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDuplicatePayment
	}

	payment := &model.Payment{
		BookingID:   bookingID,
		Amount:      in.Amount,
		PaymentDate: stay.Day(in.PaymentDate),
		Status:      in.Status,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	return payment, nil
}

// GetByID возвращает платёж по ID.
func (s *PaymentService) GetByID(ctx context.Context, id string) (*model.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return p, nil
}

// List возвращает все платежи.
func (s *PaymentService) List(ctx context.Context) ([]model.Payment, error) {
	return s.payments.List(ctx)
}

// DownPaymentHook возвращает хук ядра бронирования, создающий авансовый
// платёж в половину стоимости внутри транзакции создания.
func DownPaymentHook(payments repository.PaymentRepository) PostCreateHook {
	return func(ctx context.Context, tx *gorm.DB, booking *model.Booking, _ *model.Room) error {
		p := &model.Payment{
			BookingID:   booking.ID,
			Amount:      booking.TotalPrice / 2,
			PaymentDate: stay.Day(time.Now()),
			Status:      model.PaymentStatusDownPayment,
		}
		return payments.WithTx(tx).Create(ctx, p)
	}
}
