package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Leganyst/hotel-booking/internal/service"
	"github.com/Leganyst/hotel-booking/internal/stay"
)

type storeBookingRequest struct {
	RoomID       string `json:"room_id" binding:"omitempty,uuid"`
	CustomerID   string `json:"customer_id" binding:"required,uuid"`
	CheckInDate  string `json:"check_in_date" binding:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" binding:"required,datetime=2006-01-02"`
}

func (s *Server) listBookings(c *gin.Context) {
	bookings, err := s.bookings.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	page, size := pageParams(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "bookings",
		"data":    stay.Paginate(bookings, page, size),
	})
}

func (s *Server) showBooking(c *gin.Context) {
	booking, err := s.bookings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking found!", "data": booking})
}

func (s *Server) storeBooking(c *gin.Context) {
	var req storeBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	// Формат дат уже проверен биндингом.
	checkIn, _ := time.Parse("2006-01-02", req.CheckInDate)
	checkOut, _ := time.Parse("2006-01-02", req.CheckOutDate)

	in := service.CreateBookingInput{
		CustomerID: req.CustomerID,
		RoomID:     req.RoomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}
	if user := currentUser(c); user != nil {
		in.NotifyEmail = user.Email
	}

	booking, err := s.bookings.Create(c.Request.Context(), in)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking created successfully!", "data": booking})
}

func (s *Server) destroyBooking(c *gin.Context) {
	var email string
	if user := currentUser(c); user != nil {
		email = user.Email
	}

	if err := s.bookings.Cancel(c.Request.Context(), c.Param("id"), email); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking canceled successfully."})
}
