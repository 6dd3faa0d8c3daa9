package model

import (
	"time"

	"github.com/google/uuid"
)

// bookings
//
// Бронирование занимает номер на полуоткрытом интервале [CheckInDate, CheckOutDate).
type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RoomID     uuid.UUID `gorm:"type:uuid;not null;index" json:"room_id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`

	CheckInDate  time.Time `gorm:"type:date;not null;index" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"type:date;not null" json:"check_out_date"`

	// Производное поле: ночи × цена номера за ночь.
	TotalPrice float64 `gorm:"type:numeric(10,2);not null" json:"total_price"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"-"`

	Room     *Room     `gorm:"foreignKey:RoomID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"room,omitempty"`
	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"customer,omitempty"`
}
