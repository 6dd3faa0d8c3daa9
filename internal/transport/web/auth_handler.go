package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name                 string `json:"name" binding:"required,min=3"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := s.identity.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": res.User, "token": res.Token})
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := s.identity.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": res.User, "token": res.Token})
}

func (s *Server) logout(c *gin.Context) {
	sessionID := c.GetString(ctxSessionKey)
	if err := s.identity.Logout(c.Request.Context(), sessionID); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out!"})
}
