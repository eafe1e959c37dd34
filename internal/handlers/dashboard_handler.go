package handler

import (
	"net/http"

	"invoice-dashboard-backend/internal/services/dashboard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	service *dashboard.Service
	log     *zap.Logger
}

func NewDashboardHandler(s *dashboard.Service, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: s, log: log}
}

func (h *DashboardHandler) Cards(c *gin.Context) {
	cards, err := h.service.CardData(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *DashboardHandler) Revenue(c *gin.Context) {
	rows, err := h.service.Revenue(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue": rows})
}

func (h *DashboardHandler) LatestInvoices(c *gin.Context) {
	latest, err := h.service.LatestInvoices(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"latest_invoices": latest})
}
