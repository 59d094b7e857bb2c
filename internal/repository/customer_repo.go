package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/heartman0001/ForeCase/internal/apperrors"
	"github.com/heartman0001/ForeCase/internal/models"
)

type CustomerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func (r *CustomerRepo) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&customers).Error; err != nil {
		return nil, wrap(err)
	}
	return customers, nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return models.Customer{}, wrap(err)
	}
	return customer, nil
}

func (r *CustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return wrap(err)
	}
	return nil
}

func (r *CustomerRepo) Update(ctx context.Context, customer *models.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(customer).Error; err != nil {
		return wrap(err)
	}
	return nil
}

// Delete removes a customer. Customers with projects cannot be deleted.
func (r *CustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	var dependents int64
	if err := r.db.WithContext(ctx).Model(&models.Project{}).Where("customer_id = ?", id).Count(&dependents).Error; err != nil {
		return wrap(err)
	}
	if dependents > 0 {
		return apperrors.Conflict("customer has %d project(s)", dependents)
	}
	res := r.db.WithContext(ctx).Delete(&models.Customer{}, "id = ?", id)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func validateCustomer(customer *models.Customer) error {
	if strings.TrimSpace(customer.Name) == "" {
		return apperrors.InvalidInput("customer name is required")
	}
	if customer.CreditTermDays < 0 {
		return apperrors.InvalidInput("credit term days must not be negative, got %d", customer.CreditTermDays)
	}
	return nil
}
