package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/hotel-booking/internal/model"
)

type RoomRepository interface {
	// Вернуть копию репозитория, привязанную к транзакции.
	WithTx(tx *gorm.DB) RoomRepository
	// Создать номер.
	Create(ctx context.Context, room *model.Room) error
	// Найти номер по ID.
	GetByID(ctx context.Context, id string) (*model.Room, error)
	// Найти номер по ID с блокировкой строки до конца транзакции.
	LockByID(ctx context.Context, id string) (*model.Room, error)
	// Найти номер по уникальному номеру комнаты.
	GetByNumber(ctx context.Context, number int) (*model.Room, error)
	// Все номера.
	List(ctx context.Context) ([]model.Room, error)
	// Номера в заданном статусе.
	ListByStatus(ctx context.Context, status model.RoomStatus) ([]model.Room, error)
	// Обновить статус номера.
	UpdateStatus(ctx context.Context, id string, status model.RoomStatus) error
}

// Реализация на GORM.
type GormRoomRepository struct {
	db *gorm.DB
}

func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

func (r *GormRoomRepository) WithTx(tx *gorm.DB) RoomRepository {
	return &GormRoomRepository{db: tx}
}

func (r *GormRoomRepository) Create(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *GormRoomRepository) GetByID(ctx context.Context, id string) (*model.Room, error) {
	var room model.Room
	if err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *GormRoomRepository) LockByID(ctx context.Context, id string) (*model.Room, error) {
	q := r.db.WithContext(ctx)
	// sqlite не поддерживает FOR UPDATE, но и так сериализует писателей.
	if r.db.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var room model.Room
	if err := q.First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *GormRoomRepository) GetByNumber(ctx context.Context, number int) (*model.Room, error) {
	var room model.Room
	if err := r.db.WithContext(ctx).First(&room, "number = ?", number).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *GormRoomRepository) List(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	if err := r.db.WithContext(ctx).Order("number ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *GormRoomRepository) ListByStatus(ctx context.Context, status model.RoomStatus) ([]model.Room, error) {
	var rooms []model.Room
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("number ASC").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *GormRoomRepository) UpdateStatus(ctx context.Context, id string, status model.RoomStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.Room{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}
