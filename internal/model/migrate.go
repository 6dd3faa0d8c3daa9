package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей гостиничного ядра.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Session{},
		&Customer{},
		&Room{},
		&Booking{},
		&Payment{},
	)
}
