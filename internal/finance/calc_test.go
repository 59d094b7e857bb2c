package finance

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/heartman0001/ForeCase/internal/apperrors"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func intPtr(v int) *int { return &v }

func TestCalculate(t *testing.T) {
	tests := []struct {
		name             string
		in               CalcInput
		wantVat          float64
		wantWht          float64
		wantTotalWithVat float64
		wantNet          float64
	}{
		{
			name:             "standard thai rates",
			in:               CalcInput{Amount: 10000, VatPercent: 7, WhtPercent: 3},
			wantVat:          700,
			wantWht:          300,
			wantTotalWithVat: 10700,
			wantNet:          10400,
		},
		{
			name:             "zero amount is legal",
			in:               CalcInput{Amount: 0, VatPercent: 7, WhtPercent: 3},
			wantVat:          0,
			wantWht:          0,
			wantTotalWithVat: 0,
			wantNet:          0,
		},
		{
			name:             "no vat registration",
			in:               CalcInput{Amount: 5000, VatPercent: 0, WhtPercent: 3},
			wantVat:          0,
			wantWht:          150,
			wantTotalWithVat: 5000,
			wantNet:          4850,
		},
		{
			name:             "fractional amount rounds to two places",
			in:               CalcInput{Amount: 1234.56, VatPercent: 7, WhtPercent: 3},
			wantVat:          86.42,
			wantWht:          37.04,
			wantTotalWithVat: 1320.98,
			wantNet:          1283.94,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.in)
			if err != nil {
				t.Fatalf("Calculate() error = %v", err)
			}
			if got.VatAmount != tt.wantVat {
				t.Errorf("VatAmount = %v, want %v", got.VatAmount, tt.wantVat)
			}
			if got.WhtAmount != tt.wantWht {
				t.Errorf("WhtAmount = %v, want %v", got.WhtAmount, tt.wantWht)
			}
			if got.TotalWithVat != tt.wantTotalWithVat {
				t.Errorf("TotalWithVat = %v, want %v", got.TotalWithVat, tt.wantTotalWithVat)
			}
			if got.NetAmount != tt.wantNet {
				t.Errorf("NetAmount = %v, want %v", got.NetAmount, tt.wantNet)
			}
		})
	}
}

func TestCalculateNetIdentity(t *testing.T) {
	// net = amount + vat - wht, within one minor currency unit.
	inputs := []CalcInput{
		{Amount: 10000, VatPercent: 7, WhtPercent: 3},
		{Amount: 999.99, VatPercent: 7, WhtPercent: 3},
		{Amount: 123456.78, VatPercent: 10, WhtPercent: 5},
		{Amount: 0.01, VatPercent: 7, WhtPercent: 3},
	}
	for _, in := range inputs {
		got, err := Calculate(in)
		if err != nil {
			t.Fatalf("Calculate(%+v) error = %v", in, err)
		}
		identity := in.Amount + got.VatAmount - got.WhtAmount
		if math.Abs(got.NetAmount-identity) > 0.01 {
			t.Errorf("net identity broken for %+v: net=%v, amount+vat-wht=%v", in, got.NetAmount, identity)
		}
	}
}

func TestCalculateRejectsNegatives(t *testing.T) {
	tests := []struct {
		name string
		in   CalcInput
	}{
		{"negative amount", CalcInput{Amount: -1}},
		{"negative vat percent", CalcInput{Amount: 100, VatPercent: -7}},
		{"negative wht percent", CalcInput{Amount: 100, WhtPercent: -3}},
		{"negative credit term", CalcInput{Amount: 100, CreditTermDays: intPtr(-30)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.in)
			if !errors.Is(err, apperrors.ErrInvalidInput) {
				t.Errorf("Calculate() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCalculateIdempotent(t *testing.T) {
	in := CalcInput{
		Amount:         8765.43,
		VatPercent:     7,
		WhtPercent:     3,
		BillingDate:    date(2024, time.June, 15),
		CreditTermDays: intPtr(30),
	}
	first, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	second, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if first.VatAmount != second.VatAmount ||
		first.WhtAmount != second.WhtAmount ||
		first.TotalWithVat != second.TotalWithVat ||
		first.NetAmount != second.NetAmount {
		t.Errorf("results differ across runs: %+v vs %+v", first, second)
	}
	if !first.ExpectedCollectionDate.Equal(*second.ExpectedCollectionDate) {
		t.Errorf("collection dates differ: %v vs %v", first.ExpectedCollectionDate, second.ExpectedCollectionDate)
	}
}

func TestExpectedCollectionDate(t *testing.T) {
	tests := []struct {
		name    string
		billing *time.Time
		days    *int
		want    *time.Time
	}{
		{"crosses month boundary", date(2024, time.January, 20), intPtr(45), date(2024, time.March, 5)},
		{"crosses year boundary", date(2023, time.December, 20), intPtr(20), date(2024, time.January, 9)},
		{"zero days is same day", date(2024, time.May, 1), intPtr(0), date(2024, time.May, 1)},
		{"missing billing date", nil, intPtr(30), nil},
		{"missing credit term", date(2024, time.May, 1), nil, nil},
		{"both missing", nil, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(CalcInput{Amount: 100, BillingDate: tt.billing, CreditTermDays: tt.days})
			if err != nil {
				t.Fatalf("Calculate() error = %v", err)
			}
			if (got.ExpectedCollectionDate == nil) != (tt.want == nil) {
				t.Fatalf("ExpectedCollectionDate = %v, want %v", got.ExpectedCollectionDate, tt.want)
			}
			if tt.want != nil && !got.ExpectedCollectionDate.Equal(*tt.want) {
				t.Errorf("ExpectedCollectionDate = %v, want %v", got.ExpectedCollectionDate, tt.want)
			}
		})
	}
}

func TestResolveCreditTerm(t *testing.T) {
	if got := ResolveCreditTerm(intPtr(45), intPtr(30)); got != 45 {
		t.Errorf("customer term should win, got %d", got)
	}
	if got := ResolveCreditTerm(nil, intPtr(30)); got != 30 {
		t.Errorf("caller term should be the fallback, got %d", got)
	}
	if got := ResolveCreditTerm(nil, nil); got != 0 {
		t.Errorf("default should be zero, got %d", got)
	}
}
