package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/heartman0001/ForeCase/internal/apperrors"
	"github.com/heartman0001/ForeCase/internal/models"
)

type NotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) List(ctx context.Context, unreadOnly bool) ([]models.Notification, error) {
	q := r.db.WithContext(ctx).Order("due_date asc")
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	var notifications []models.Notification
	if err := q.Find(&notifications).Error; err != nil {
		return nil, wrap(err)
	}
	return notifications, nil
}

func (r *NotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	if notification.InvoiceID == uuid.Nil {
		return apperrors.InvalidInput("invoice id is required")
	}
	if strings.TrimSpace(notification.Message) == "" {
		return apperrors.InvalidInput("message is required")
	}
	var exists int64
	if err := r.db.WithContext(ctx).Model(&models.InvoiceRecord{}).Where("id = ?", notification.InvoiceID).Count(&exists).Error; err != nil {
		return wrap(err)
	}
	if exists == 0 {
		return apperrors.NotFound("invoice %s", notification.InvoiceID)
	}
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return wrap(err)
	}
	return nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id uuid.UUID) (models.Notification, error) {
	var notification models.Notification
	if err := r.db.WithContext(ctx).First(&notification, "id = ?", id).Error; err != nil {
		return models.Notification{}, wrap(err)
	}
	notification.IsRead = true
	if err := r.db.WithContext(ctx).Save(&notification).Error; err != nil {
		return models.Notification{}, wrap(err)
	}
	return notification, nil
}

func (r *NotificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Notification{}, "id = ?", id)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
