package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/heartman0001/ForeCase/internal/models"
)

// Workspace setting keys.
const (
	SettingCompanyName   = "company_name"
	SettingCurrency      = "currency"
	SettingDashboardTopN = "dashboard_top_n"
)

type SettingRepo struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) *SettingRepo {
	return &SettingRepo{db: db}
}

// Get returns the stored value for key, or fallback when unset.
func (r *SettingRepo) Get(ctx context.Context, key, fallback string) (string, error) {
	var setting models.Setting
	err := r.db.WithContext(ctx).Take(&setting, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fallback, nil
		}
		return "", wrap(err)
	}
	return setting.Value, nil
}

func (r *SettingRepo) GetAll(ctx context.Context) (map[string]string, error) {
	var settings []models.Setting
	if err := r.db.WithContext(ctx).Find(&settings).Error; err != nil {
		return nil, wrap(err)
	}
	values := map[string]string{}
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}
	return values, nil
}

func (r *SettingRepo) Put(ctx context.Context, key, value string) error {
	var setting models.Setting
	err := r.db.WithContext(ctx).Take(&setting, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			setting = models.Setting{Key: key, Value: value}
			if createErr := r.db.WithContext(ctx).Create(&setting).Error; createErr != nil {
				return wrap(createErr)
			}
			return nil
		}
		return wrap(err)
	}
	setting.Value = value
	if err := r.db.WithContext(ctx).Save(&setting).Error; err != nil {
		return wrap(err)
	}
	return nil
}
