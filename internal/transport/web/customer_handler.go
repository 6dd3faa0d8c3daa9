package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Leganyst/hotel-booking/internal/model"
	"github.com/Leganyst/hotel-booking/internal/service"
	"github.com/Leganyst/hotel-booking/internal/stay"
)

type storeCustomerRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required,min=10"`
}

func (s *Server) listCustomers(c *gin.Context) {
	customers, err := s.customers.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	page, size := pageParams(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "customers",
		"data":    stay.Paginate(customers, page, size),
	})
}

func (s *Server) showCustomer(c *gin.Context) {
	customer, err := s.customers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderError(c, service.ErrCustomerNotFound)
			return
		}
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

func (s *Server) storeCustomer(c *gin.Context) {
	var req storeCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := s.customers.GetByEmail(c.Request.Context(), req.Email); err == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors": gin.H{"email": "the email has already been taken"},
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		renderError(c, err)
		return
	}

	customer := &model.Customer{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.customers.Create(c.Request.Context(), customer); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Customer created successfully!", "data": customer})
}
