package handler

import (
	"net/http"
	"strconv"

	"invoice-dashboard-backend/internal/services/invoices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InvoiceHandler struct {
	service *invoices.Service
	log     *zap.Logger
}

func NewInvoiceHandler(s *invoices.Service, log *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{service: s, log: log}
}

// List serves the filtered, paginated invoice table.
func (h *InvoiceHandler) List(c *gin.Context) {
	query := c.Query("query")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	rows, err := h.service.Filtered(c.Request.Context(), query, page)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": rows, "page": page})
}

// Pages serves the total page count for the current filter.
func (h *InvoiceHandler) Pages(c *gin.Context) {
	pages, err := h.service.Pages(c.Request.Context(), c.Query("query"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_pages": pages})
}

// GetByID serves the edit-form record.
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	form, err := h.service.ByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// Create handles the new-invoice form submission.
func (h *InvoiceHandler) Create(c *gin.Context) {
	form := invoices.Form{
		CustomerID: c.PostForm("customerId"),
		Amount:     c.PostForm("amount"),
		Status:     c.PostForm("status"),
	}

	redirectTo, err := h.service.Create(c.Request.Context(), form)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "invoice created",
		"redirect_to": redirectTo,
	})
}

// Update handles the edit-invoice form submission.
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	form := invoices.Form{
		CustomerID: c.PostForm("customerId"),
		Amount:     c.PostForm("amount"),
		Status:     c.PostForm("status"),
	}

	redirectTo, err := h.service.Update(c.Request.Context(), id, form)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "invoice updated",
		"redirect_to": redirectTo,
	})
}

// Delete removes an invoice; no redirect since deletion happens from
// within the listing.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice deleted"})
}
