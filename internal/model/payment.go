package model

import (
	"time"

	"github.com/google/uuid"
)

// Статус платежа.
type PaymentStatus string

const (
	PaymentStatusPending     PaymentStatus = "pending"
	PaymentStatusComplete    PaymentStatus = "complete"
	PaymentStatusFailed      PaymentStatus = "failed"
	PaymentStatusDownPayment PaymentStatus = "down_payment"
)

// payments
//
// Не более одного платежа на пару (бронирование, дата) — составной уникальный индекс.
type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_payments_booking_date" json:"booking_id"`

	Amount      float64       `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaymentDate time.Time     `gorm:"type:date;not null;uniqueIndex:idx_payments_booking_date" json:"payment_date"`
	Status      PaymentStatus `gorm:"type:varchar(32);not null" json:"status"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"-"`

	Booking *Booking `gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"booking,omitempty"`
}
