// Package invoices implements the invoice read and write paths: search
// with pagination, the edit-form record, and the validated mutations.
package invoices

import (
	"context"
	"errors"
	"strings"
	"time"

	"invoice-dashboard-backend/internal/apperr"
	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// ListingPath is where create/update send the caller after a
// successful write.
const ListingPath = "/dashboard/invoices"

// Form is the flat key-value payload of an invoice submission.
// Validation runs strictly before any storage call.
type Form struct {
	CustomerID string `form:"customerId" validate:"required,uuid"`
	Amount     string `form:"amount" validate:"required"`
	Status     string `form:"status" validate:"required,oneof=pending paid"`
}

var formFieldNames = map[string]string{
	"CustomerID": "customerId",
	"Amount":     "amount",
	"Status":     "status",
}

type Repository interface {
	FilteredPage(ctx context.Context, query string, page int) ([]models.InvoiceTableRow, error)
	CountFiltered(ctx context.Context, query string) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	Create(ctx context.Context, invoice *models.Invoice) error
	Update(ctx context.Context, id uuid.UUID, customerID uuid.UUID, amount int64, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo     Repository
	listings *cache.ListingCache
	validate *validator.Validate
	log      *zap.Logger
}

func NewService(repo Repository, listings *cache.ListingCache, log *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		listings: listings,
		validate: validator.New(),
		log:      log,
	}
}

// Filtered returns one page (at most 6 rows) of invoices matching query.
func (s *Service) Filtered(ctx context.Context, query string, page int) ([]models.InvoiceTableRow, error) {
	return s.repo.FilteredPage(ctx, query, page)
}

// Pages returns the total page count for the same filter predicate.
func (s *Service) Pages(ctx context.Context, query string) (int64, error) {
	count, err := s.repo.CountFiltered(ctx, query)
	if err != nil {
		return 0, err
	}
	return (count + repository.PageSize - 1) / repository.PageSize, nil
}

// ByID returns the edit-form record, with the amount converted back to
// dollars. A missing invoice is apperr.ErrNotFound.
func (s *Service) ByID(ctx context.Context, id uuid.UUID) (*models.InvoiceForm, error) {
	invoice, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.InvoiceForm{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     float64(invoice.Amount) / 100,
		Status:     invoice.Status,
	}, nil
}

// Create validates the form, stores the invoice with the amount in
// cents and today's date, and invalidates the cached listing. It
// returns the listing path for the caller to redirect to.
func (s *Service) Create(ctx context.Context, form Form) (string, error) {
	customerID, cents, err := s.parseForm(form)
	if err != nil {
		return "", err
	}

	invoice := &models.Invoice{
		ID:         uuid.New(),
		CustomerID: customerID,
		Amount:     cents,
		Status:     form.Status,
		Date:       datatypes.Date(time.Now().UTC()),
	}
	if err := s.repo.Create(ctx, invoice); err != nil {
		return "", err
	}

	s.listings.InvalidateInvoiceListing(ctx)
	s.log.Info("invoice created", zap.String("id", invoice.ID.String()))
	return ListingPath, nil
}

// Update applies the same validation and unit conversion to an existing
// invoice.
func (s *Service) Update(ctx context.Context, id uuid.UUID, form Form) (string, error) {
	customerID, cents, err := s.parseForm(form)
	if err != nil {
		return "", err
	}

	if err := s.repo.Update(ctx, id, customerID, cents, form.Status); err != nil {
		return "", err
	}

	s.listings.InvalidateInvoiceListing(ctx)
	s.log.Info("invoice updated", zap.String("id", id.String()))
	return ListingPath, nil
}

// Delete removes an invoice and invalidates the cached listing. No
// redirect: deletion is triggered from within the listing itself.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.listings.InvalidateInvoiceListing(ctx)
	s.log.Info("invoice deleted", zap.String("id", id.String()))
	return nil
}

// parseForm validates the submission and coerces the amount to cents.
// "42.50" becomes 4250; decimal arithmetic avoids float drift.
func (s *Service) parseForm(form Form) (uuid.UUID, int64, error) {
	if err := s.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		fields := map[string]string{}
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[formFieldNames[fe.Field()]] = validationMessage(fe)
			}
		} else {
			fields["form"] = err.Error()
		}
		return uuid.Nil, 0, &apperr.ValidationError{Fields: fields}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(form.Amount))
	if err != nil {
		return uuid.Nil, 0, apperr.Validation("amount", "must be a number")
	}
	if amount.IsNegative() {
		return uuid.Nil, 0, apperr.Validation("amount", "must not be negative")
	}
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	customerID, err := uuid.Parse(form.CustomerID)
	if err != nil {
		return uuid.Nil, 0, apperr.Validation("customerId", "must be a valid id")
	}
	return customerID, cents, nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "uuid":
		return "must be a valid id"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
