package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Статус номера. Производное поле: проекция активных бронирований.
type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "available"
	RoomStatusOccupied  RoomStatus = "occupied"
)

// Тип номера.
type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeFlat   RoomType = "flat"
)

// rooms
type Room struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Number        int        `gorm:"not null;uniqueIndex" json:"number"`
	Type          RoomType   `gorm:"type:varchar(32);not null" json:"type"`
	PricePerNight float64    `gorm:"type:numeric(10,2);not null" json:"price_per_night"`
	Status        RoomStatus `gorm:"type:varchar(32);not null;default:'available';index" json:"status"`

	Amenities datatypes.JSON `gorm:"type:jsonb" json:"amenities,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"-"`
}
