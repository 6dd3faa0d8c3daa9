package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Leganyst/hotel-booking/internal/model"
)

// openTestDB поднимает sqlite в памяти со схемой, дружелюбной к sqlite.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Один коннект: каждый новый коннект sqlite :memory: — новая пустая БД.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	schema := []string{
		`CREATE TABLE rooms (
			id TEXT PRIMARY KEY,
			number INTEGER NOT NULL UNIQUE,
			type TEXT NOT NULL,
			price_per_night REAL NOT NULL,
			status TEXT NOT NULL,
			amenities TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE customers (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			phone_number TEXT NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE bookings (
			id TEXT PRIMARY KEY,
			room_id TEXT NOT NULL,
			customer_id TEXT NOT NULL,
			check_in_date DATETIME NOT NULL,
			check_out_date DATETIME NOT NULL,
			total_price REAL NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE payments (
			id TEXT PRIMARY KEY,
			booking_id TEXT NOT NULL,
			amount REAL NOT NULL,
			payment_date DATETIME NOT NULL,
			status TEXT NOT NULL,
			created_at DATETIME,
			updated_at DATETIME,
			UNIQUE (booking_id, payment_date)
		);`,
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE sessions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			expires_at DATETIME NOT NULL,
			created_at DATETIME
		);`,
	}
	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	return db
}

func seedRoom(t *testing.T, db *gorm.DB, number int, price float64, status model.RoomStatus) *model.Room {
	t.Helper()

	room := &model.Room{
		ID:            uuid.New(),
		Number:        number,
		Type:          model.RoomTypeDouble,
		PricePerNight: price,
		Status:        status,
	}
	if err := db.Create(room).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}
	return room
}

func seedCustomer(t *testing.T, db *gorm.DB, email string) *model.Customer {
	t.Helper()

	customer := &model.Customer{
		ID:          uuid.New(),
		Name:        "Test Guest",
		Email:       email,
		PhoneNumber: "+1234567890",
	}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return customer
}

func seedBooking(t *testing.T, db *gorm.DB, room *model.Room, customer *model.Customer, checkIn, checkOut time.Time, total float64) *model.Booking {
	t.Helper()

	booking := &model.Booking{
		ID:           uuid.New(),
		RoomID:       room.ID,
		CustomerID:   customer.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalPrice:   total,
	}
	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return booking
}
