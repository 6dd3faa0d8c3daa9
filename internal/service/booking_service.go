package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/hotel-booking/internal/model"
	"github.com/Leganyst/hotel-booking/internal/notification"
	"github.com/Leganyst/hotel-booking/internal/repository"
	"github.com/Leganyst/hotel-booking/internal/stay"
)

// RoomSelector выбирает номер из списка свободных. Стратегия инжектируется,
// чтобы в тестах подбор был детерминированным.
type RoomSelector func(rooms []model.Room) model.Room

// RandomRoomSelector — подбор равномерно случайного свободного номера.
func RandomRoomSelector(rooms []model.Room) model.Room {
	return rooms[rand.Intn(len(rooms))]
}

// PostCreateHook выполняется внутри транзакции создания бронирования.
// Ошибка хука откатывает бронирование целиком.
type PostCreateHook func(ctx context.Context, tx *gorm.DB, booking *model.Booking, room *model.Room) error

type CreateBookingInput struct {
	CustomerID string
	// Пустой RoomID — автоподбор случайного свободного номера.
	RoomID   string
	CheckIn  time.Time
	CheckOut time.Time
	// Адрес получателя уведомления; передаётся явно, ядро не читает сессию.
	NotifyEmail string
}

// BookingService — ядро бронирования: проверка доступности, расчёт цены,
// транзакционный пересчёт статуса номера и побочные эффекты.
type BookingService struct {
	db         *gorm.DB
	rooms      repository.RoomRepository
	bookings   repository.BookingRepository
	customers  repository.CustomerRepository
	status     *RoomStatusService
	notifier   notification.Notifier
	selector   RoomSelector
	postCreate PostCreateHook
}

func NewBookingService(
	db *gorm.DB,
	rooms repository.RoomRepository,
	bookings repository.BookingRepository,
	customers repository.CustomerRepository,
	status *RoomStatusService,
	notifier notification.Notifier,
) *BookingService {
	return &BookingService{
		db:        db,
		rooms:     rooms,
		bookings:  bookings,
		customers: customers,
		status:    status,
		notifier:  notifier,
		selector:  RandomRoomSelector,
	}
}

// SetRoomSelector заменяет стратегию подбора свободного номера.
func (s *BookingService) SetRoomSelector(sel RoomSelector) {
	if sel != nil {
		s.selector = sel
	}
}

// SetPostCreateHook устанавливает хук, выполняемый в транзакции создания
// (например, автоматический аванс).
func (s *BookingService) SetPostCreateHook(hook PostCreateHook) {
	s.postCreate = hook
}

// Create создаёт бронирование.
//
// Проверка пересечения, вставка и пересчёт статуса номера выполняются в одной
// транзакции под блокировкой строки номера: два конкурентных запроса на один
// номер сериализуются и второй увидит бронирование первого.
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (*model.Booking, error) {
	rng, err := stay.NewRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}

	customerID, err := uuid.Parse(in.CustomerID)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	if in.RoomID != "" {
		if _, err := uuid.Parse(in.RoomID); err != nil {
			return nil, ErrRoomNotFound
		}
	}

	var (
		booking *model.Booking
		room    *model.Room
	)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rooms := s.rooms.WithTx(tx)
		bookings := s.bookings.WithTx(tx)
		customers := s.customers.WithTx(tx)

		ok, err := customers.Exists(ctx, in.CustomerID)
		if err != nil {
			return fmt.Errorf("check customer: %w", err)
		}
		if !ok {
			return ErrCustomerNotFound
		}

		room, err = s.pickRoom(ctx, rooms, in.RoomID)
		if err != nil {
			return err
		}

		// Перечитываем под блокировкой: подбор мог идти по незаблокированной копии.
		room, err = rooms.LockByID(ctx, room.ID.String())
		if err != nil {
			return fmt.Errorf("lock room: %w", err)
		}

		overlap, err := bookings.ExistsOverlapping(ctx, room.ID.String(), rng.CheckIn, rng.CheckOut)
		if err != nil {
			return fmt.Errorf("check overlap: %w", err)
		}
		if overlap {
			return ErrRoomUnavailableForRange
		}

		booking = &model.Booking{
			RoomID:       room.ID,
			CustomerID:   customerID,
			CheckInDate:  rng.CheckIn,
			CheckOutDate: rng.CheckOut,
			TotalPrice:   rng.TotalPrice(room.PricePerNight),
		}
		if err := bookings.Create(ctx, booking); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		// Статус номера пересчитывается здесь же, а не в фоновом проходе:
		// после коммита статус не бывает устаревшим.
		if err := s.status.recomputeInTx(ctx, tx, room.ID.String()); err != nil {
			return fmt.Errorf("recompute room status: %w", err)
		}

		if s.postCreate != nil {
			if err := s.postCreate(ctx, tx, booking, room); err != nil {
				return fmt.Errorf("post-create hook: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, notification.EventBookingCreated, booking, room, in.NotifyEmail)

	return booking, nil
}

// Cancel отменяет бронирование: строка удаляется, статус номера
// пересчитывается в той же транзакции.
func (s *BookingService) Cancel(ctx context.Context, bookingID, notifyEmail string) error {
	var (
		booking *model.Booking
		room    *model.Room
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rooms := s.rooms.WithTx(tx)
		bookings := s.bookings.WithTx(tx)

		var err error
		booking, err = bookings.GetByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("find booking: %w", err)
		}

		room, err = rooms.LockByID(ctx, booking.RoomID.String())
		if err != nil {
			return fmt.Errorf("lock room: %w", err)
		}

		if err := bookings.Delete(ctx, bookingID); err != nil {
			return fmt.Errorf("delete booking: %w", err)
		}

		if err := s.status.recomputeInTx(ctx, tx, room.ID.String()); err != nil {
			return fmt.Errorf("recompute room status: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.notify(ctx, notification.EventBookingCanceled, booking, room, notifyEmail)

	return nil
}

// GetByID возвращает бронирование по ID.
func (s *BookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// List возвращает все бронирования.
func (s *BookingService) List(ctx context.Context) ([]model.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *BookingService) pickRoom(
	ctx context.Context,
	rooms repository.RoomRepository,
	roomID string,
) (*model.Room, error) {
	if roomID != "" {
		room, err := rooms.GetByID(ctx, roomID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRoomNotFound
			}
			return nil, fmt.Errorf("find room: %w", err)
		}
		return room, nil
	}

	available, err := rooms.ListByStatus(ctx, model.RoomStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("list available rooms: %w", err)
	}
	if len(available) == 0 {
		return nil, ErrNoAvailableRoom
	}

	room := s.selector(available)
	return &room, nil
}

// notify отправляет уведомление после коммита. Отказ канала доставки не
// влияет на уже зафиксированное бронирование.
func (s *BookingService) notify(
	ctx context.Context,
	event notification.Event,
	booking *model.Booking,
	room *model.Room,
	email string,
) {
	if s.notifier == nil || email == "" {
		return
	}
	if err := s.notifier.Notify(ctx, event, booking, room, email); err != nil {
		log.Printf("notify %s: %v", event, err)
	}
}
