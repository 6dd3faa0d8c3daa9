package web

import "github.com/gin-gonic/gin"

// Router собирает маршруты API.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.POST("/register", s.register)
	r.POST("/login", s.login)

	r.GET("/room", s.listRooms)
	r.GET("/room/:id", s.showRoom)
	r.GET("/booking", s.listBookings)
	r.GET("/booking/:id", s.showBooking)
	r.GET("/customer", s.listCustomers)
	r.GET("/customer/:id", s.showCustomer)
	r.GET("/payment", s.listPayments)
	r.GET("/payment/:id", s.showPayment)

	auth := r.Group("/", s.authRequired())
	{
		auth.POST("/logout", s.logout)
		auth.POST("/room", s.storeRoom)
		auth.POST("/booking", s.storeBooking)
		auth.DELETE("/booking/:id", s.destroyBooking)
		auth.POST("/customer", s.storeCustomer)
		auth.POST("/payment", s.storePayment)
		auth.POST("/room-status/recompute", s.recomputeRoomStatuses)
	}

	return r
}
