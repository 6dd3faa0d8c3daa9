package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Leganyst/hotel-booking/internal/model"
	"github.com/Leganyst/hotel-booking/internal/service"
	"github.com/Leganyst/hotel-booking/internal/stay"
)

type storePaymentRequest struct {
	BookingID   string   `json:"booking_id" binding:"required,uuid"`
	Amount      *float64 `json:"amount" binding:"required,gte=0"`
	PaymentDate string   `json:"payment_date" binding:"required,datetime=2006-01-02"`
	Status      string   `json:"status" binding:"required,paymentstatus"`
}

func (s *Server) listPayments(c *gin.Context) {
	payments, err := s.payments.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	page, size := pageParams(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "payments",
		"data":    stay.Paginate(payments, page, size),
	})
}

func (s *Server) showPayment(c *gin.Context) {
	payment, err := s.payments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment found!", "data": payment})
}

func (s *Server) storePayment(c *gin.Context) {
	var req storePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	paymentDate, _ := time.Parse("2006-01-02", req.PaymentDate)

	payment, err := s.payments.Create(c.Request.Context(), service.CreatePaymentInput{
		BookingID:   req.BookingID,
		Amount:      *req.Amount,
		PaymentDate: paymentDate,
		Status:      model.PaymentStatus(req.Status),
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Payment proceeded!", "data": payment})
}
