package handler

import (
	"net/http"

	"invoice-dashboard-backend/internal/services/customers"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	service *customers.Service
	log     *zap.Logger
}

func NewCustomerHandler(s *customers.Service, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{service: s, log: log}
}

// List serves the id/name pairs for customer selection lists.
func (h *CustomerHandler) List(c *gin.Context) {
	fields, err := h.service.All(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": fields})
}

// Filtered serves the customer table with invoice aggregates.
func (h *CustomerHandler) Filtered(c *gin.Context) {
	summaries, err := h.service.Filtered(c.Request.Context(), c.Query("query"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": summaries})
}
