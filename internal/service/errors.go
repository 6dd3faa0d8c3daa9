package service

import "errors"

// Ошибки гостиничного ядра. Все терминальны для текущего запроса,
// внутренних ретраев нет.
var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrPaymentNotFound  = errors.New("payment not found")

	// Номер занят на запрошенном интервале дат.
	ErrRoomUnavailableForRange = errors.New("room is unavailable for the specified date range")
	// Нет ни одного свободного номера для автоподбора.
	ErrNoAvailableRoom = errors.New("no available room")
	// Платёж по этому бронированию на эту дату уже существует.
	ErrDuplicatePayment = errors.New("payment for this booking on this date already exists")

	ErrEmailTaken         = errors.New("email is already taken")
	ErrInvalidCredentials = errors.New("wrong email or password")
	ErrInvalidToken       = errors.New("invalid or revoked token")
)
