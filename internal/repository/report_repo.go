package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/heartman0001/ForeCase/internal/models"
)

type ReportRepo struct {
	db *gorm.DB
}

// MonthlyReportRow is the flattened invoice + project + customer join the
// monthly report serves, the equivalent of the hosted backend's
// v_monthly_report view.
type MonthlyReportRow struct {
	ID                     uuid.UUID  `json:"id"`
	CustomerName           string     `json:"customerName"`
	ProjectName            string     `json:"projectName"`
	Amount                 float64    `json:"amount"`
	NetAmount              float64    `json:"netAmount"`
	BillingDate            *time.Time `json:"billingDate,omitempty"`
	CreditTermDays         int        `json:"creditTermDays"`
	ExpectedCollectionDate *time.Time `json:"expectedCollectionDate,omitempty"`
	PaymentDate            *time.Time `json:"paymentDate,omitempty"`
	Status                 string     `json:"status"`
}

// MonthlyReportFilter narrows the report. From/To bound the billing date;
// an empty Status means all statuses.
type MonthlyReportFilter struct {
	From   *time.Time
	To     *time.Time
	Status string
}

func NewReportRepo(db *gorm.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

func (r *ReportRepo) Monthly(ctx context.Context, filter MonthlyReportFilter) ([]MonthlyReportRow, error) {
	q := r.db.WithContext(ctx).Model(&models.InvoiceRecord{}).
		Select(`invoice_records.id,
			customers.name AS customer_name,
			projects.name AS project_name,
			invoice_records.amount,
			invoice_records.net_amount,
			invoice_records.billing_date,
			customers.credit_term_days,
			invoice_records.expected_collection_date,
			invoice_records.payment_date,
			invoice_records.status`).
		Joins("LEFT JOIN projects ON projects.id = invoice_records.project_id").
		Joins("LEFT JOIN customers ON customers.id = invoice_records.customer_id").
		Order("invoice_records.billing_date asc")
	if filter.From != nil && filter.To != nil {
		q = q.Where("invoice_records.billing_date BETWEEN ? AND ?", *filter.From, *filter.To)
	}
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("invoice_records.status = ?", filter.Status)
	}
	var rows []MonthlyReportRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, wrap(err)
	}
	return rows, nil
}
