// Package web — тонкая HTTP-обёртка над гостиничным ядром.
package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Leganyst/hotel-booking/internal/repository"
	"github.com/Leganyst/hotel-booking/internal/service"
	"github.com/Leganyst/hotel-booking/internal/stay"
)

type Server struct {
	identity *service.IdentityService
	bookings *service.BookingService
	payments *service.PaymentService
	status   *service.RoomStatusService

	rooms     repository.RoomRepository
	customers repository.CustomerRepository
}

func New(
	identity *service.IdentityService,
	bookings *service.BookingService,
	payments *service.PaymentService,
	status *service.RoomStatusService,
	rooms repository.RoomRepository,
	customers repository.CustomerRepository,
) *Server {
	registerCustomValidators()
	return &Server{
		identity:  identity,
		bookings:  bookings,
		payments:  payments,
		status:    status,
		rooms:     rooms,
		customers: customers,
	}
}

// renderError переводит ошибки ядра в HTTP-статусы:
// not found — 404, конфликтующий ввод — 422, плохие кредлы — 401.
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, service.ErrRoomUnavailableForRange),
		errors.Is(err, service.ErrNoAvailableRoom),
		errors.Is(err, service.ErrDuplicatePayment),
		errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

	case errors.Is(err, stay.ErrInvalidRange):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors": gin.H{"check_out_date": "check-out date must be after check-in date"},
		})

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})

	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// pageParams читает ?page= и ?page_size= (дефолты внутри stay.Paginate).
func pageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.Query("page"))
	pageSize, _ = strconv.Atoi(c.Query("page_size"))
	return page, pageSize
}
