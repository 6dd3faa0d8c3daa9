package model

import (
	"time"

	"github.com/google/uuid"
)

// customers
type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Email       string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PhoneNumber string `gorm:"type:varchar(32);not null" json:"phone_number"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"-"`
}
