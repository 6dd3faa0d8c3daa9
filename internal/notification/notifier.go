package notification

import (
	"context"
	"log"

	"github.com/Leganyst/hotel-booking/internal/model"
)

// Событие, достойное уведомления.
type Event string

const (
	EventBookingCreated  Event = "booking_created"
	EventBookingCanceled Event = "booking_canceled"
)

// Notifier — внешний канал доставки уведомлений. Fire-and-forget:
// ошибка доставки логируется вызывающей стороной и не откатывает операцию.
type Notifier interface {
	Notify(ctx context.Context, event Event, booking *model.Booking, room *model.Room, email string) error
}

// LogNotifier пишет уведомления в лог. Используется, когда внешний
// канал не сконфигурирован.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(_ context.Context, event Event, booking *model.Booking, room *model.Room, email string) error {
	log.Printf("notification %s to %s: booking %s, room %d, %s — %s, total %.2f",
		event, email, booking.ID, room.Number,
		booking.CheckInDate.Format("2006-01-02"),
		booking.CheckOutDate.Format("2006-01-02"),
		booking.TotalPrice,
	)
	return nil
}
