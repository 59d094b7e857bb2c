package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceRecord is one billing occurrence of a project phase. The derived
// money fields (vat_amount, wht_amount, total_with_vat, net_amount) and
// expected_collection_date are written by the finance calculator, never by
// callers directly.
type InvoiceRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID  uuid.UUID `gorm:"type:uuid;not null;index" json:"projectId"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customerId"`
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	Phase      int       `gorm:"not null;default:1" json:"phase"`

	Amount       float64  `gorm:"type:decimal(14,2);not null" json:"amount"`
	VatPercent   float64  `gorm:"type:decimal(5,2);not null;default:7" json:"vatPercent"`
	VatAmount    float64  `gorm:"type:decimal(14,2);not null;default:0" json:"vatAmount"`
	WhtPercent   float64  `gorm:"type:decimal(5,2);not null;default:3" json:"whtPercent"`
	WhtAmount    float64  `gorm:"type:decimal(14,2);not null;default:0" json:"whtAmount"`
	TotalWithVat float64  `gorm:"type:decimal(14,2);not null;default:0" json:"totalWithVat"`
	NetAmount    float64  `gorm:"type:decimal(14,2);not null;default:0" json:"netAmount"`
	RealReceived *float64 `gorm:"type:decimal(14,2)" json:"realReceived,omitempty"`

	BillingDate            *time.Time `gorm:"type:date" json:"billingDate,omitempty"`
	ExpectedCollectionDate *time.Time `gorm:"type:date" json:"expectedCollectionDate,omitempty"`
	PaymentDate            *time.Time `gorm:"type:date" json:"paymentDate,omitempty"`

	Status string `gorm:"size:20;not null;default:Pending" json:"status"`
	Note   string `gorm:"type:text" json:"note"`
	RefDoc string `gorm:"size:255" json:"refDoc"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *InvoiceRecord) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
