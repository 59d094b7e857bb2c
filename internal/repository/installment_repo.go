package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/heartman0001/ForeCase/internal/apperrors"
	"github.com/heartman0001/ForeCase/internal/finance"
	"github.com/heartman0001/ForeCase/internal/models"
)

type InstallmentRepo struct {
	db *gorm.DB
}

// InstallmentRow is an installment joined with its project's name.
type InstallmentRow struct {
	models.Installment
	ProjectName string `json:"projectName"`
}

// InstallmentPatch carries a partial update. Nil fields are left untouched.
type InstallmentPatch struct {
	InstallmentNo       *int
	InstallmentTotal    *int
	Amount              *float64
	BillingDate         *time.Time
	ExpectedPaymentDate *time.Time
	ActualPaymentDate   *time.Time
	Status              *string
	Note                *string
}

func NewInstallmentRepo(db *gorm.DB) *InstallmentRepo {
	return &InstallmentRepo{db: db}
}

func (r *InstallmentRepo) List(ctx context.Context, projectID *uuid.UUID) ([]InstallmentRow, error) {
	q := r.db.WithContext(ctx).Model(&models.Installment{}).
		Select("installments.*, projects.name AS project_name").
		Joins("LEFT JOIN projects ON projects.id = installments.project_id").
		Order("installments.billing_date asc")
	if projectID != nil {
		q = q.Where("installments.project_id = ?", *projectID)
	}
	var rows []InstallmentRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, wrap(err)
	}
	return rows, nil
}

func (r *InstallmentRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Installment, error) {
	var installment models.Installment
	if err := r.db.WithContext(ctx).First(&installment, "id = ?", id).Error; err != nil {
		return models.Installment{}, wrap(err)
	}
	return installment, nil
}

func (r *InstallmentRepo) Create(ctx context.Context, installment *models.Installment) error {
	if installment.ProjectID == uuid.Nil {
		return apperrors.InvalidInput("project id is required")
	}
	if installment.Amount <= 0 {
		return apperrors.InvalidInput("amount must be positive, got %v", installment.Amount)
	}
	if installment.InstallmentNo < 1 || installment.InstallmentTotal < 1 {
		return apperrors.InvalidInput("installment numbering starts at 1")
	}
	if installment.InstallmentNo > installment.InstallmentTotal {
		return apperrors.InvalidInput("installment %d of %d is out of range", installment.InstallmentNo, installment.InstallmentTotal)
	}
	if installment.Status == "" {
		installment.Status = finance.StatusPending
	} else if !finance.ValidStatus(installment.Status) {
		return apperrors.InvalidInput("unknown status %q", installment.Status)
	} else if installment.Status == finance.StatusOverdue {
		return apperrors.InvalidInput("%s is derived at read time, not writable", finance.StatusOverdue)
	}
	var exists int64
	if err := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", installment.ProjectID).Count(&exists).Error; err != nil {
		return wrap(err)
	}
	if exists == 0 {
		return apperrors.NotFound("project %s", installment.ProjectID)
	}
	if err := r.db.WithContext(ctx).Create(installment).Error; err != nil {
		return wrap(err)
	}
	return nil
}

func (r *InstallmentRepo) Update(ctx context.Context, id uuid.UUID, patch InstallmentPatch) (models.Installment, error) {
	installment, err := r.GetByID(ctx, id)
	if err != nil {
		return models.Installment{}, err
	}

	if patch.Status != nil {
		// An actual payment date stands in for the received amount on the
		// installment side of the schedule.
		var received *float64
		if patch.ActualPaymentDate != nil || installment.ActualPaymentDate != nil {
			received = &installment.Amount
		}
		if err := finance.CheckTransition(installment.Status, *patch.Status, received); err != nil {
			return models.Installment{}, err
		}
	}
	if patch.Amount != nil && *patch.Amount <= 0 {
		return models.Installment{}, apperrors.InvalidInput("amount must be positive, got %v", *patch.Amount)
	}

	if patch.InstallmentNo != nil {
		installment.InstallmentNo = *patch.InstallmentNo
	}
	if patch.InstallmentTotal != nil {
		installment.InstallmentTotal = *patch.InstallmentTotal
	}
	if patch.Amount != nil {
		installment.Amount = *patch.Amount
	}
	if patch.BillingDate != nil {
		installment.BillingDate = patch.BillingDate
	}
	if patch.ExpectedPaymentDate != nil {
		installment.ExpectedPaymentDate = patch.ExpectedPaymentDate
	}
	if patch.ActualPaymentDate != nil {
		installment.ActualPaymentDate = patch.ActualPaymentDate
	}
	if patch.Status != nil {
		installment.Status = *patch.Status
	}
	if patch.Note != nil {
		installment.Note = *patch.Note
	}

	if err := r.db.WithContext(ctx).Save(&installment).Error; err != nil {
		return models.Installment{}, wrap(err)
	}
	return installment, nil
}

func (r *InstallmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Installment{}, "id = ?", id)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
