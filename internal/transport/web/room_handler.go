package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Leganyst/hotel-booking/internal/model"
	"github.com/Leganyst/hotel-booking/internal/service"
	"github.com/Leganyst/hotel-booking/internal/stay"
)

type storeRoomRequest struct {
	Number        *int            `json:"number" binding:"required,gt=0"`
	Type          string          `json:"type" binding:"required,roomtype"`
	PricePerNight *float64        `json:"price_per_night" binding:"required,gte=0"`
	Status        string          `json:"status" binding:"omitempty,oneof=available occupied"`
	Amenities     json.RawMessage `json:"amenities"`
}

func (s *Server) listRooms(c *gin.Context) {
	rooms, err := s.rooms.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	page, size := pageParams(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "rooms",
		"data":    stay.Paginate(rooms, page, size),
	})
}

func (s *Server) showRoom(c *gin.Context) {
	room, err := s.rooms.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderError(c, service.ErrRoomNotFound)
			return
		}
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room found!", "data": room})
}

func (s *Server) storeRoom(c *gin.Context) {
	var req storeRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	// Уникальность номера комнаты проверяем заранее, чтобы отдать
	// ошибку по полю, а не голую ошибку БД.
	if _, err := s.rooms.GetByNumber(c.Request.Context(), *req.Number); err == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors": gin.H{"number": "the room number is already taken"},
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		renderError(c, err)
		return
	}

	status := model.RoomStatus(req.Status)
	if status == "" {
		status = model.RoomStatusAvailable
	}

	room := &model.Room{
		Number:        *req.Number,
		Type:          model.RoomType(req.Type),
		PricePerNight: *req.PricePerNight,
		Status:        status,
		Amenities:     datatypes.JSON(req.Amenities),
	}
	if err := s.rooms.Create(c.Request.Context(), room); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Room created successfully!", "data": room})
}

func (s *Server) recomputeRoomStatuses(c *gin.Context) {
	changed, err := s.status.RecomputeAll(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room statuses recomputed.", "changed": changed})
}
