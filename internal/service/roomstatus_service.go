package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Leganyst/hotel-booking/internal/model"
	"github.com/Leganyst/hotel-booking/internal/repository"
	"github.com/Leganyst/hotel-booking/internal/stay"
)

// RoomStatusService пересчитывает производный статус номеров.
//
// Номер OCCUPIED тогда и только тогда, когда у него есть хотя бы одно
// бронирование с датой выезда не раньше сегодняшнего дня; иначе AVAILABLE.
type RoomStatusService struct {
	db       *gorm.DB
	rooms    repository.RoomRepository
	bookings repository.BookingRepository
}

func NewRoomStatusService(
	db *gorm.DB,
	rooms repository.RoomRepository,
	bookings repository.BookingRepository,
) *RoomStatusService {
	return &RoomStatusService{db: db, rooms: rooms, bookings: bookings}
}

// RecomputeAll — полный проход по всем номерам. Идемпотентен, безопасен при
// любой частоте запуска и параллельно с мутациями бронирований.
// Возвращает количество номеров, у которых статус изменился.
func (s *RoomStatusService) RecomputeAll(ctx context.Context) (int, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list rooms: %w", err)
	}

	changed := 0
	for _, room := range rooms {
		status, err := s.computeStatus(ctx, s.bookings, room.ID.String())
		if err != nil {
			return changed, fmt.Errorf("room %s: %w", room.ID, err)
		}
		if status == room.Status {
			continue
		}
		if err := s.rooms.UpdateStatus(ctx, room.ID.String(), status); err != nil {
			return changed, fmt.Errorf("update room %s: %w", room.ID, err)
		}
		changed++
	}

	return changed, nil
}

// RecomputeRoom пересчитывает статус одного номера.
func (s *RoomStatusService) RecomputeRoom(ctx context.Context, roomID string) error {
	return s.recomputeInTx(ctx, s.db, roomID)
}

// recomputeInTx — пересчёт внутри чужой транзакции; вызывается ядром
// бронирования, чтобы статус менялся атомарно с созданием/отменой.
func (s *RoomStatusService) recomputeInTx(ctx context.Context, tx *gorm.DB, roomID string) error {
	bookings := s.bookings.WithTx(tx)
	rooms := s.rooms.WithTx(tx)

	status, err := s.computeStatus(ctx, bookings, roomID)
	if err != nil {
		return err
	}
	return rooms.UpdateStatus(ctx, roomID, status)
}

func (s *RoomStatusService) computeStatus(
	ctx context.Context,
	bookings repository.BookingRepository,
	roomID string,
) (model.RoomStatus, error) {
	today := stay.Day(time.Now())
	active, err := bookings.ExistsActiveForRoom(ctx, roomID, today)
	if err != nil {
		return "", err
	}
	if active {
		return model.RoomStatusOccupied, nil
	}
	return model.RoomStatusAvailable, nil
}
