package handlers

import (
	"net/http"

	"disputeresolver/internal/controller/apperror"
	"disputeresolver/internal/domain/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *auth.Service
}

func NewAuthHandler(s *auth.Service) AuthHandler {
	return AuthHandler{service: s}
}

type phoneLoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password"`
}

func (h *AuthHandler) PhoneLogin(c *gin.Context) {
	var req phoneLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.service.PhoneLogin(c, req.Phone, req.Password)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}
