package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/heartman0001/ForeCase/internal/apperrors"
	"github.com/heartman0001/ForeCase/internal/finance"
	"github.com/heartman0001/ForeCase/internal/models"
)

func TestCustomerCreditTerm(t *testing.T) {
	customer := models.Customer{CreditTermDays: 45}

	days, err := customerCreditTerm(customer, nil)
	if err != nil {
		t.Fatalf("customerCreditTerm(nil) error = %v", err)
	}
	if days == nil || *days != 45 {
		t.Errorf("customerCreditTerm(nil) days = %v, want 45", days)
	}

	days, err = customerCreditTerm(models.Customer{}, gorm.ErrRecordNotFound)
	if err != nil {
		t.Fatalf("customerCreditTerm(not found) error = %v, want nil", err)
	}
	if days != nil {
		t.Errorf("customerCreditTerm(not found) days = %v, want nil fallback", days)
	}

	// A transient backend failure must propagate, not degrade the term.
	_, err = customerCreditTerm(models.Customer{}, errors.New("dial tcp: connection refused"))
	if !errors.Is(err, apperrors.ErrBackendUnavailable) {
		t.Errorf("customerCreditTerm(backend failure) error = %v, want ErrBackendUnavailable", err)
	}
}

func TestCreateRejectsOverdueStatus(t *testing.T) {
	// Status validation runs before any query, so no database is needed.
	repo := NewInvoiceRepo(nil)
	invoice := models.InvoiceRecord{
		ProjectID: uuid.New(),
		Amount:    1000,
		Status:    finance.StatusOverdue,
	}
	err := repo.Create(context.Background(), &invoice, nil)
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("Create(status=Overdue) error = %v, want ErrInvalidInput", err)
	}
}
