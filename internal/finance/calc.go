package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartman0001/ForeCase/internal/apperrors"
)

// Default rates applied when a caller does not supply one.
const (
	DefaultVatPercent = 7.0
	DefaultWhtPercent = 3.0
)

// CalcInput carries the raw billing inputs. BillingDate and CreditTermDays
// are optional; the expected collection date is only derived when both are
// present.
type CalcInput struct {
	Amount         float64
	VatPercent     float64
	WhtPercent     float64
	BillingDate    *time.Time
	CreditTermDays *int
}

// CalcResult holds the derived fields persisted on an invoice record. All
// money values are rounded to two decimal places, half away from zero, so
// recomputing with the same input reproduces the stored values exactly.
type CalcResult struct {
	VatAmount              float64
	WhtAmount              float64
	TotalWithVat           float64
	NetAmount              float64
	ExpectedCollectionDate *time.Time
}

// Calculate derives VAT, WHT, totals and the expected collection date from
// the billing inputs. It is pure: no clock, no I/O, identical output for
// identical input. Negative amounts, percentages or credit terms are
// rejected rather than clamped.
func Calculate(in CalcInput) (CalcResult, error) {
	if in.Amount < 0 {
		return CalcResult{}, apperrors.InvalidInput("amount must not be negative, got %v", in.Amount)
	}
	if in.VatPercent < 0 {
		return CalcResult{}, apperrors.InvalidInput("vat percent must not be negative, got %v", in.VatPercent)
	}
	if in.WhtPercent < 0 {
		return CalcResult{}, apperrors.InvalidInput("wht percent must not be negative, got %v", in.WhtPercent)
	}
	if in.CreditTermDays != nil && *in.CreditTermDays < 0 {
		return CalcResult{}, apperrors.InvalidInput("credit term days must not be negative, got %d", *in.CreditTermDays)
	}

	amount := decimal.NewFromFloat(in.Amount)
	hundred := decimal.NewFromInt(100)

	vat := amount.Mul(decimal.NewFromFloat(in.VatPercent)).Div(hundred).Round(2)
	totalWithVat := amount.Add(vat).Round(2)
	wht := amount.Mul(decimal.NewFromFloat(in.WhtPercent)).Div(hundred).Round(2)
	net := totalWithVat.Sub(wht).Round(2)

	res := CalcResult{
		VatAmount:    vat.InexactFloat64(),
		WhtAmount:    wht.InexactFloat64(),
		TotalWithVat: totalWithVat.InexactFloat64(),
		NetAmount:    net.InexactFloat64(),
	}

	if in.BillingDate != nil && in.CreditTermDays != nil {
		due := in.BillingDate.AddDate(0, 0, *in.CreditTermDays)
		res.ExpectedCollectionDate = &due
	}

	return res, nil
}

// ResolveCreditTerm picks the credit term in priority order: the linked
// customer's default, then the caller-supplied value, then zero.
func ResolveCreditTerm(customerDays *int, callerDays *int) int {
	if customerDays != nil {
		return *customerDays
	}
	if callerDays != nil {
		return *callerDays
	}
	return 0
}
