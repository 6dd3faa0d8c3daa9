package service

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/Leganyst/hotel-booking/internal/model"
	"github.com/Leganyst/hotel-booking/internal/repository"
)

func newStatusService(db *gorm.DB) *RoomStatusService {
	return NewRoomStatusService(
		db,
		repository.NewGormRoomRepository(db),
		repository.NewGormBookingRepository(db),
	)
}

func roomStatus(t *testing.T, db *gorm.DB, id string) model.RoomStatus {
	t.Helper()

	var room model.Room
	if err := db.First(&room, "id = ?", id).Error; err != nil {
		t.Fatalf("reload room: %v", err)
	}
	return room.Status
}

func TestRoomStatusService_RecomputeAll(t *testing.T) {
	db := openTestDB(t)
	svc := newStatusService(db)
	customer := seedCustomer(t, db, "guest@example.com")

	now := time.Now().UTC()

	// Активное бронирование (выезд в будущем) — номер должен стать занятым.
	activeRoom := seedRoom(t, db, 101, 100, model.RoomStatusAvailable)
	seedBooking(t, db, activeRoom, customer, now.AddDate(0, 0, -1), now.AddDate(0, 0, 2), 300)

	// Только истёкшие бронирования — номер должен освободиться.
	expiredRoom := seedRoom(t, db, 102, 100, model.RoomStatusOccupied)
	seedBooking(t, db, expiredRoom, customer, now.AddDate(0, 0, -10), now.AddDate(0, 0, -5), 500)

	// Без бронирований — остаётся свободным.
	emptyRoom := seedRoom(t, db, 103, 100, model.RoomStatusAvailable)

	changed, err := svc.RecomputeAll(context.Background())
	if err != nil {
		t.Fatalf("recompute all: %v", err)
	}
	if changed != 2 {
		t.Fatalf("expected 2 rooms changed, got %d", changed)
	}

	if got := roomStatus(t, db, activeRoom.ID.String()); got != model.RoomStatusOccupied {
		t.Fatalf("active room: expected occupied, got %s", got)
	}
	if got := roomStatus(t, db, expiredRoom.ID.String()); got != model.RoomStatusAvailable {
		t.Fatalf("expired room: expected available, got %s", got)
	}
	if got := roomStatus(t, db, emptyRoom.ID.String()); got != model.RoomStatusAvailable {
		t.Fatalf("empty room: expected available, got %s", got)
	}
}

func TestRoomStatusService_RecomputeAll_Idempotent(t *testing.T) {
	db := openTestDB(t)
	svc := newStatusService(db)
	customer := seedCustomer(t, db, "guest@example.com")

	now := time.Now().UTC()
	room := seedRoom(t, db, 101, 100, model.RoomStatusAvailable)
	seedBooking(t, db, room, customer, now.AddDate(0, 0, 1), now.AddDate(0, 0, 3), 200)

	if _, err := svc.RecomputeAll(context.Background()); err != nil {
		t.Fatalf("first sweep: %v", err)
	}

	// Повторный проход ничего не меняет.
	changed, err := svc.RecomputeAll(context.Background())
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if changed != 0 {
		t.Fatalf("expected idempotent sweep, changed %d", changed)
	}
}

func TestRoomStatusService_RecomputeRoom(t *testing.T) {
	db := openTestDB(t)
	svc := newStatusService(db)
	customer := seedCustomer(t, db, "guest@example.com")

	now := time.Now().UTC()
	room := seedRoom(t, db, 101, 100, model.RoomStatusAvailable)
	// Выезд сегодня: бронирование ещё считается активным (>= today).
	seedBooking(t, db, room, customer, now.AddDate(0, 0, -2), now, 200)

	if err := svc.RecomputeRoom(context.Background(), room.ID.String()); err != nil {
		t.Fatalf("recompute room: %v", err)
	}
	if got := roomStatus(t, db, room.ID.String()); got != model.RoomStatusOccupied {
		t.Fatalf("expected occupied (check-out today counts as active), got %s", got)
	}
}
