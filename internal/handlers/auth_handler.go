package handler

import (
	"errors"
	"net/http"

	"invoice-dashboard-backend/internal/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service *auth.Service
	log     *zap.Logger
}

func NewAuthHandler(s *auth.Service, log *zap.Logger) *AuthHandler {
	return &AuthHandler{service: s, log: log}
}

// Login handles the credentials form. A credential mismatch is the one
// failure kind reported explicitly; everything else is a server error.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	callbackURL := c.PostForm("callbackUrl")

	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	session, err := h.service.Authenticate(c.Request.Context(), email, password, callbackURL)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
