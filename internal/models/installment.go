package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Installment is one slot of a project's billing schedule. It has no foreign
// key to InvoiceRecord; the two model overlapping concepts and are kept
// separate on purpose.
type Installment struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"projectId"`
	InstallmentNo       int        `gorm:"not null;default:1" json:"installmentNo"`
	InstallmentTotal    int        `gorm:"not null;default:1" json:"installmentTotal"`
	Amount              float64    `gorm:"type:decimal(14,2);not null" json:"amount"`
	BillingDate         *time.Time `gorm:"type:date" json:"billingDate,omitempty"`
	ExpectedPaymentDate *time.Time `gorm:"type:date" json:"expectedPaymentDate,omitempty"`
	ActualPaymentDate   *time.Time `gorm:"type:date" json:"actualPaymentDate,omitempty"`
	Status              string     `gorm:"size:20;not null;default:Pending" json:"status"`
	Note                string     `gorm:"type:text" json:"note"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

func (i *Installment) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
