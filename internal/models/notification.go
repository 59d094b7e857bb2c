package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID uuid.UUID  `gorm:"type:uuid;not null;index" json:"invoiceId"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	DueDate   *time.Time `gorm:"type:date" json:"dueDate,omitempty"`
	IsRead    bool       `gorm:"not null;default:false" json:"isRead"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
