package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/heartman0001/ForeCase/internal/apperrors"
	"github.com/heartman0001/ForeCase/internal/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

// ProjectRow is a project joined with its customer's name for display.
type ProjectRow struct {
	models.Project
	CustomerName string `json:"customerName"`
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

func (r *ProjectRepo) List(ctx context.Context, customerID *uuid.UUID) ([]ProjectRow, error) {
	q := r.db.WithContext(ctx).Model(&models.Project{}).
		Select("projects.*, customers.name AS customer_name").
		Joins("LEFT JOIN customers ON customers.id = projects.customer_id").
		Order("projects.created_at desc")
	if customerID != nil {
		q = q.Where("projects.customer_id = ?", *customerID)
	}
	var rows []ProjectRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, wrap(err)
	}
	return rows, nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		return models.Project{}, wrap(err)
	}
	return project, nil
}

func (r *ProjectRepo) Create(ctx context.Context, project *models.Project) error {
	if err := r.validateProject(ctx, project); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return wrap(err)
	}
	return nil
}

func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) error {
	if err := r.validateProject(ctx, project); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return wrap(err)
	}
	return nil
}

// Delete removes a project. Projects with invoice records or installments
// cannot be deleted; the dependents must go first.
func (r *ProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	var invoices, installments int64
	if err := r.db.WithContext(ctx).Model(&models.InvoiceRecord{}).Where("project_id = ?", id).Count(&invoices).Error; err != nil {
		return wrap(err)
	}
	if err := r.db.WithContext(ctx).Model(&models.Installment{}).Where("project_id = ?", id).Count(&installments).Error; err != nil {
		return wrap(err)
	}
	if invoices+installments > 0 {
		return apperrors.Conflict("project has %d invoice(s) and %d installment(s)", invoices, installments)
	}
	res := r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ProjectRepo) validateProject(ctx context.Context, project *models.Project) error {
	if strings.TrimSpace(project.Name) == "" {
		return apperrors.InvalidInput("project name is required")
	}
	if project.PhaseTotal < 1 {
		return apperrors.InvalidInput("phase total must be at least 1, got %d", project.PhaseTotal)
	}
	if project.CustomerID == uuid.Nil {
		return apperrors.InvalidInput("customer id is required")
	}
	var exists int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", project.CustomerID).Count(&exists).Error; err != nil {
		return wrap(err)
	}
	if exists == 0 {
		return apperrors.NotFound("customer %s", project.CustomerID)
	}
	return nil
}
