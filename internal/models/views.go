package models

import (
	"time"

	"github.com/google/uuid"
)

// Per-request view rows. Computed for a single response, never persisted.

// LatestInvoiceRow is an invoice joined with customer display fields,
// amount still in cents.
type LatestInvoiceRow struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url"`
	Email    string    `json:"email"`
	Amount   int64     `json:"amount"`
}

// LatestInvoice is the display variant with the amount pre-formatted.
type LatestInvoice struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url"`
	Email    string    `json:"email"`
	Amount   string    `json:"amount"`
}

// InvoiceTableRow backs the filtered invoice listing.
type InvoiceTableRow struct {
	ID       uuid.UUID `json:"id"`
	Amount   int64     `json:"amount"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
}

// CustomerTableRow is a customer annotated with invoice aggregates,
// sums still in cents.
type CustomerTableRow struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  int64     `json:"-"`
	TotalPaid     int64     `json:"-"`
}

// CustomerSummary is the display variant of CustomerTableRow.
type CustomerSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  string    `json:"total_pending"`
	TotalPaid     string    `json:"total_paid"`
}

// CustomerField populates customer selection lists.
type CustomerField struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// InvoiceForm is the edit-form record; amount in dollars, not cents.
type InvoiceForm struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
}

// StatusTotals are the paid/pending amount sums in cents.
type StatusTotals struct {
	Paid    int64 `json:"paid"`
	Pending int64 `json:"pending"`
}

// CardData holds the four dashboard summary figures.
type CardData struct {
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	NumberOfCustomers    int64  `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}
