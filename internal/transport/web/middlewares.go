package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Leganyst/hotel-booking/internal/model"
)

const (
	ctxUserKey    = "authUser"
	ctxSessionKey = "authSession"
)

// authRequired проверяет bearer-токен и кладёт пользователя и ID сессии
// в контекст запроса.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, sessionID, err := s.identity.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or revoked token"})
			return
		}

		c.Set(ctxUserKey, user)
		c.Set(ctxSessionKey, sessionID)
		c.Next()
	}
}

// currentUser возвращает аутентифицированного пользователя запроса.
func currentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(ctxUserKey); ok {
		if u, ok := v.(*model.User); ok {
			return u
		}
	}
	return nil
}
