package invoices

import (
	"context"
	"errors"
	"testing"
	"time"

	"invoice-dashboard-backend/internal/apperr"
	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	created    *models.Invoice
	createErr  error
	updatedID  uuid.UUID
	updatedCID uuid.UUID
	updatedAmt int64
	updatedSt  string
	updateErr  error
	deletedID  uuid.UUID
	deleteErr  error
	invoice    *models.Invoice
	getErr     error
	count      int64
	countErr   error
	rows       []models.InvoiceTableRow
	rowsErr    error
}

func (f *fakeRepo) FilteredPage(ctx context.Context, query string, page int) ([]models.InvoiceTableRow, error) {
	return f.rows, f.rowsErr
}

func (f *fakeRepo) CountFiltered(ctx context.Context, query string) (int64, error) {
	return f.count, f.countErr
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	return f.invoice, f.getErr
}

func (f *fakeRepo) Create(ctx context.Context, invoice *models.Invoice) error {
	f.created = invoice
	return f.createErr
}

func (f *fakeRepo) Update(ctx context.Context, id uuid.UUID, customerID uuid.UUID, amount int64, status string) error {
	f.updatedID, f.updatedCID, f.updatedAmt, f.updatedSt = id, customerID, amount, status
	return f.updateErr
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deletedID = id
	return f.deleteErr
}

func newTestService(repo *fakeRepo) *Service {
	log := zap.NewNop()
	return NewService(repo, cache.NewListingCache(nil, log), log)
}

func validForm() Form {
	return Form{
		CustomerID: uuid.NewString(),
		Amount:     "42.50",
		Status:     models.InvoiceStatusPending,
	}
}

func TestService_Create(t *testing.T) {
	t.Run("stores the amount in cents and redirects to the listing", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		form := validForm()
		redirectTo, err := svc.Create(context.Background(), form)

		require.NoError(t, err)
		assert.Equal(t, ListingPath, redirectTo)
		require.NotNil(t, repo.created)
		assert.Equal(t, int64(4250), repo.created.Amount)
		assert.Equal(t, models.InvoiceStatusPending, repo.created.Status)
		assert.Equal(t, form.CustomerID, repo.created.CustomerID.String())
		assert.NotEqual(t, uuid.Nil, repo.created.ID)

		today := time.Now().UTC()
		date := time.Time(repo.created.Date)
		assert.Equal(t, today.Year(), date.Year())
		assert.Equal(t, today.YearDay(), date.YearDay())
	})

	t.Run("accepts whole-dollar amounts", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		form := validForm()
		form.Amount = "250"
		_, err := svc.Create(context.Background(), form)

		require.NoError(t, err)
		assert.Equal(t, int64(25000), repo.created.Amount)
	})

	t.Run("rounds sub-cent input", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		form := validForm()
		form.Amount = "10.005"
		_, err := svc.Create(context.Background(), form)

		require.NoError(t, err)
		assert.Equal(t, int64(1001), repo.created.Amount)
	})

	t.Run("rejects an unknown status and performs no write", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		form := validForm()
		form.Status = "overdue"
		_, err := svc.Create(context.Background(), form)

		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "status")
		assert.Nil(t, repo.created)
	})

	t.Run("rejects a missing customer reference", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		form := validForm()
		form.CustomerID = ""
		_, err := svc.Create(context.Background(), form)

		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "customerId")
		assert.Nil(t, repo.created)
	})

	t.Run("rejects a non-numeric amount", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		form := validForm()
		form.Amount = "forty two"
		_, err := svc.Create(context.Background(), form)

		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "must be a number", verr.Fields["amount"])
		assert.Nil(t, repo.created)
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		form := validForm()
		form.Amount = "-5.00"
		_, err := svc.Create(context.Background(), form)

		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "must not be negative", verr.Fields["amount"])
		assert.Nil(t, repo.created)
	})

	t.Run("surfaces storage failures", func(t *testing.T) {
		repo := &fakeRepo{createErr: apperr.Storage("create invoice", errors.New("down"))}
		svc := newTestService(repo)

		_, err := svc.Create(context.Background(), validForm())

		var serr *apperr.StorageError
		assert.ErrorAs(t, err, &serr)
	})
}

func TestService_Update(t *testing.T) {
	t.Run("applies the same coercion to an existing invoice", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		id := uuid.New()
		form := validForm()
		form.Amount = "99.99"
		form.Status = models.InvoiceStatusPaid

		redirectTo, err := svc.Update(context.Background(), id, form)

		require.NoError(t, err)
		assert.Equal(t, ListingPath, redirectTo)
		assert.Equal(t, id, repo.updatedID)
		assert.Equal(t, int64(9999), repo.updatedAmt)
		assert.Equal(t, models.InvoiceStatusPaid, repo.updatedSt)
	})

	t.Run("passes not-found through", func(t *testing.T) {
		repo := &fakeRepo{updateErr: apperr.ErrNotFound}
		svc := newTestService(repo)

		_, err := svc.Update(context.Background(), uuid.New(), validForm())

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("does not touch storage on invalid input", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		form := validForm()
		form.Status = ""
		_, err := svc.Update(context.Background(), uuid.New(), form)

		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, uuid.Nil, repo.updatedID)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("deletes by id", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		id := uuid.New()
		require.NoError(t, svc.Delete(context.Background(), id))
		assert.Equal(t, id, repo.deletedID)
	})

	t.Run("passes not-found through", func(t *testing.T) {
		repo := &fakeRepo{deleteErr: apperr.ErrNotFound}
		svc := newTestService(repo)

		err := svc.Delete(context.Background(), uuid.New())
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestService_ByID(t *testing.T) {
	t.Run("converts cents back to dollars for the edit form", func(t *testing.T) {
		invoice := &models.Invoice{
			ID:         uuid.New(),
			CustomerID: uuid.New(),
			Amount:     4250,
			Status:     models.InvoiceStatusPending,
		}
		svc := newTestService(&fakeRepo{invoice: invoice})

		form, err := svc.ByID(context.Background(), invoice.ID)

		require.NoError(t, err)
		assert.Equal(t, 42.50, form.Amount)
		assert.Equal(t, invoice.CustomerID, form.CustomerID)
	})

	t.Run("passes not-found through", func(t *testing.T) {
		svc := newTestService(&fakeRepo{getErr: apperr.ErrNotFound})

		_, err := svc.ByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestService_Pages(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		want  int64
	}{
		{"empty table", 0, 0},
		{"partial page", 5, 1},
		{"exact pages", 12, 2},
		{"one past the boundary", 13, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakeRepo{count: tt.count})

			pages, err := svc.Pages(context.Background(), "")

			require.NoError(t, err)
			assert.Equal(t, tt.want, pages)
		})
	}
}
