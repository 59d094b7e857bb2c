package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/heartman0001/ForeCase/internal/apperrors"
	"github.com/heartman0001/ForeCase/internal/finance"
	"github.com/heartman0001/ForeCase/internal/models"
)

type InvoiceRepo struct {
	db *gorm.DB
}

// InvoiceRow is an invoice record joined with project and customer names.
type InvoiceRow struct {
	models.InvoiceRecord
	ProjectName  string `json:"projectName"`
	CustomerName string `json:"customerName"`
}

// InvoiceFilter narrows List. Zero values mean "no filter".
type InvoiceFilter struct {
	CustomerID *uuid.UUID
	ProjectID  *uuid.UUID
	Status     string
}

// InvoicePatch carries a partial update. Nil fields are left untouched.
type InvoicePatch struct {
	Year         *int
	Month        *int
	Phase        *int
	Amount       *float64
	VatPercent   *float64
	WhtPercent   *float64
	RealReceived *float64
	BillingDate  *time.Time
	PaymentDate  *time.Time
	Status       *string
	Note         *string
	RefDoc       *string
}

func NewInvoiceRepo(db *gorm.DB) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

func (r *InvoiceRepo) List(ctx context.Context, filter InvoiceFilter) ([]InvoiceRow, error) {
	q := r.db.WithContext(ctx).Model(&models.InvoiceRecord{}).
		Select("invoice_records.*, projects.name AS project_name, customers.name AS customer_name").
		Joins("LEFT JOIN projects ON projects.id = invoice_records.project_id").
		Joins("LEFT JOIN customers ON customers.id = invoice_records.customer_id").
		Order("invoice_records.billing_date asc")
	if filter.CustomerID != nil {
		q = q.Where("invoice_records.customer_id = ?", *filter.CustomerID)
	}
	if filter.ProjectID != nil {
		q = q.Where("invoice_records.project_id = ?", *filter.ProjectID)
	}
	if filter.Status != "" {
		q = q.Where("invoice_records.status = ?", filter.Status)
	}
	var rows []InvoiceRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, wrap(err)
	}
	return rows, nil
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (models.InvoiceRecord, error) {
	var invoice models.InvoiceRecord
	if err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error; err != nil {
		return models.InvoiceRecord{}, wrap(err)
	}
	return invoice, nil
}

// Create persists a new invoice record. The calculator runs first; the
// customer id is denormalized from the owning project, and the credit term
// comes from the customer record, falling back to creditTermDays.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *models.InvoiceRecord, creditTermDays *int) error {
	if invoice.ProjectID == uuid.Nil {
		return apperrors.InvalidInput("project id is required")
	}
	if invoice.Amount <= 0 {
		return apperrors.InvalidInput("amount must be positive, got %v", invoice.Amount)
	}
	if invoice.Status == "" {
		invoice.Status = finance.StatusPending
	} else if !finance.ValidStatus(invoice.Status) {
		return apperrors.InvalidInput("unknown status %q", invoice.Status)
	} else if invoice.Status == finance.StatusOverdue {
		return apperrors.InvalidInput("%s is derived at read time, not writable", finance.StatusOverdue)
	}

	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, "id = ?", invoice.ProjectID).Error; err != nil {
		return wrap(err)
	}
	invoice.CustomerID = project.CustomerID

	var customer models.Customer
	lookupErr := r.db.WithContext(ctx).First(&customer, "id = ?", project.CustomerID).Error
	customerDays, err := customerCreditTerm(customer, lookupErr)
	if err != nil {
		return err
	}

	if err := r.applyCalc(invoice, customerDays, creditTermDays); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(invoice).Error; err != nil {
		return wrap(err)
	}
	return nil
}

// Update applies a partial update. The status change is validated against
// the lifecycle before anything is written, and the derived fields are
// recomputed only when an input of the calculation changed.
func (r *InvoiceRepo) Update(ctx context.Context, id uuid.UUID, patch InvoicePatch) (models.InvoiceRecord, error) {
	invoice, err := r.GetByID(ctx, id)
	if err != nil {
		return models.InvoiceRecord{}, err
	}

	received := invoice.RealReceived
	if patch.RealReceived != nil {
		received = patch.RealReceived
	}
	if patch.Status != nil {
		if err := finance.CheckTransition(invoice.Status, *patch.Status, received); err != nil {
			return models.InvoiceRecord{}, err
		}
	}
	if patch.Amount != nil && *patch.Amount <= 0 {
		return models.InvoiceRecord{}, apperrors.InvalidInput("amount must be positive, got %v", *patch.Amount)
	}

	recalc := false
	if patch.Amount != nil && *patch.Amount != invoice.Amount {
		invoice.Amount = *patch.Amount
		recalc = true
	}
	if patch.VatPercent != nil && *patch.VatPercent != invoice.VatPercent {
		invoice.VatPercent = *patch.VatPercent
		recalc = true
	}
	if patch.WhtPercent != nil && *patch.WhtPercent != invoice.WhtPercent {
		invoice.WhtPercent = *patch.WhtPercent
		recalc = true
	}
	if patch.BillingDate != nil {
		if invoice.BillingDate == nil || !patch.BillingDate.Equal(*invoice.BillingDate) {
			invoice.BillingDate = patch.BillingDate
			recalc = true
		}
	}
	if patch.Year != nil {
		invoice.Year = *patch.Year
	}
	if patch.Month != nil {
		invoice.Month = *patch.Month
	}
	if patch.Phase != nil {
		invoice.Phase = *patch.Phase
	}
	if patch.RealReceived != nil {
		invoice.RealReceived = patch.RealReceived
	}
	if patch.PaymentDate != nil {
		invoice.PaymentDate = patch.PaymentDate
	}
	if patch.Status != nil {
		invoice.Status = *patch.Status
	}
	if patch.Note != nil {
		invoice.Note = *patch.Note
	}
	if patch.RefDoc != nil {
		invoice.RefDoc = *patch.RefDoc
	}

	if recalc {
		var customer models.Customer
		lookupErr := r.db.WithContext(ctx).First(&customer, "id = ?", invoice.CustomerID).Error
		customerDays, termErr := customerCreditTerm(customer, lookupErr)
		if termErr != nil {
			return models.InvoiceRecord{}, termErr
		}
		if err := r.applyCalc(&invoice, customerDays, nil); err != nil {
			return models.InvoiceRecord{}, err
		}
	}

	if err := r.db.WithContext(ctx).Save(&invoice).Error; err != nil {
		return models.InvoiceRecord{}, wrap(err)
	}
	return invoice, nil
}

func (r *InvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.InvoiceRecord{}, "id = ?", id)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// customerCreditTerm classifies the customer lookup result. A missing
// customer falls back to the caller-supplied term; any other failure is a
// backend error and must not silently degrade the credit term to zero.
func customerCreditTerm(customer models.Customer, lookupErr error) (*int, error) {
	switch {
	case lookupErr == nil:
		return &customer.CreditTermDays, nil
	case errors.Is(lookupErr, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, wrap(lookupErr)
	}
}

func (r *InvoiceRepo) applyCalc(invoice *models.InvoiceRecord, customerDays, callerDays *int) error {
	term := finance.ResolveCreditTerm(customerDays, callerDays)
	result, err := finance.Calculate(finance.CalcInput{
		Amount:         invoice.Amount,
		VatPercent:     invoice.VatPercent,
		WhtPercent:     invoice.WhtPercent,
		BillingDate:    invoice.BillingDate,
		CreditTermDays: &term,
	})
	if err != nil {
		return err
	}
	invoice.VatAmount = result.VatAmount
	invoice.WhtAmount = result.WhtAmount
	invoice.TotalWithVat = result.TotalWithVat
	invoice.NetAmount = result.NetAmount
	invoice.ExpectedCollectionDate = result.ExpectedCollectionDate
	return nil
}
