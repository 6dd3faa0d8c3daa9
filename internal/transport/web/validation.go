package web

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Leganyst/hotel-booking/internal/model"
)

// registerCustomValidators добавляет доменные правила к валидатору gin
// и переключает имена полей в сообщениях на json-теги.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("roomtype", func(fl validator.FieldLevel) bool {
		switch model.RoomType(fl.Field().String()) {
		case model.RoomTypeSingle, model.RoomTypeDouble, model.RoomTypeFlat:
			return true
		}
		return false
	})

	_ = v.RegisterValidation("paymentstatus", func(fl validator.FieldLevel) bool {
		switch model.PaymentStatus(fl.Field().String()) {
		case model.PaymentStatusPending, model.PaymentStatusComplete,
			model.PaymentStatusFailed, model.PaymentStatusDownPayment:
			return true
		}
		return false
	})
}

// bindJSON парсит тело запроса; при ошибке отвечает 422 с картой
// ошибок по полям и возвращает false.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrors(err)})
		return false
	}
	return true
}

func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": "invalid request payload"}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "min":
		return "too short (min " + fe.Param() + ")"
	case "gte":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "roomtype":
		return "must be one of: single, double, flat"
	case "paymentstatus":
		return "must be one of: pending, complete, failed, down_payment"
	case "eqfield":
		return "does not match " + fe.Param()
	}
	return "is invalid"
}
