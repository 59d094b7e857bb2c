package report

import (
	"reflect"
	"testing"
	"time"

	"github.com/heartman0001/ForeCase/internal/finance"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestReduce(t *testing.T) {
	lines := []Line{
		{Amount: 1000, Status: finance.StatusPaid},
		{Amount: 2000, Status: finance.StatusPending},
		{Amount: 500, Status: finance.StatusOverdue},
	}
	got := Reduce(lines)
	want := Metrics{TotalRevenue: 1000, TotalOutstanding: 2500, OverdueCount: 1}
	if got != want {
		t.Errorf("Reduce() = %+v, want %+v", got, want)
	}
}

func TestReduceEmpty(t *testing.T) {
	if got := Reduce(nil); got != (Metrics{}) {
		t.Errorf("Reduce(nil) = %+v, want zero metrics", got)
	}
}

func TestTotalsByCustomer(t *testing.T) {
	lines := []Line{
		{CustomerName: "Acme", Amount: 1000, Collected: 1000, Status: finance.StatusPaid},
		{CustomerName: "Acme", Amount: 2000, Status: finance.StatusPending},
		{CustomerName: "Globex", Amount: 5000, Status: finance.StatusBilled},
		{CustomerName: "", Amount: 999, Status: finance.StatusPending}, // malformed, skipped
	}
	got := TotalsByCustomer(lines)
	want := []GroupTotal{
		{Name: "Globex", Billed: 5000, Collected: 0, Outstanding: 5000},
		{Name: "Acme", Billed: 3000, Collected: 1000, Outstanding: 2000},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TotalsByCustomer() = %+v, want %+v", got, want)
	}
}

func TestTotalsReconcileWithMetrics(t *testing.T) {
	// Sum of billed across customer groups equals revenue + outstanding
	// computed independently over the same list.
	lines := []Line{
		{CustomerName: "Acme", Amount: 1000, Status: finance.StatusPaid},
		{CustomerName: "Acme", Amount: 2500.50, Status: finance.StatusPending},
		{CustomerName: "Globex", Amount: 700.25, Status: finance.StatusOverdue},
		{CustomerName: "Initech", Amount: 150, Status: finance.StatusBilled},
	}
	var billedTotal float64
	for _, g := range TotalsByCustomer(lines) {
		billedTotal += g.Billed
	}
	m := Reduce(lines)
	if billedTotal != m.TotalRevenue+m.TotalOutstanding {
		t.Errorf("group billed total %v != revenue %v + outstanding %v", billedTotal, m.TotalRevenue, m.TotalOutstanding)
	}
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	lines := []Line{
		{ProjectName: "late", Status: finance.StatusBilled, DueDate: datePtr(2024, time.June, 1)},
		{ProjectName: "paid", Status: finance.StatusPaid, DueDate: datePtr(2024, time.June, 20)},
		{ProjectName: "third", Status: finance.StatusPending, DueDate: datePtr(2024, time.August, 1)},
		{ProjectName: "first", Status: finance.StatusPending, DueDate: datePtr(2024, time.June, 18)},
		{ProjectName: "second", Status: finance.StatusBilled, DueDate: datePtr(2024, time.July, 2)},
		{ProjectName: "no due date", Status: finance.StatusPending},
	}

	got := Upcoming(lines, now, 0, 5)
	names := make([]string, len(got))
	for i, l := range got {
		names[i] = l.ProjectName
	}
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Upcoming() order = %v, want %v", names, want)
	}

	if got := Upcoming(lines, now, 0, 2); len(got) != 2 {
		t.Errorf("Upcoming() topN cap = %d items, want 2", len(got))
	}
	if got := Upcoming(lines, now, 10, 5); len(got) != 1 {
		t.Errorf("Upcoming() with 10 day horizon = %d items, want 1", len(got))
	}
}

func TestRecentlyPaid(t *testing.T) {
	lines := []Line{
		{ProjectName: "older", Status: finance.StatusPaid, PaidAt: datePtr(2024, time.May, 1)},
		{ProjectName: "unpaid", Status: finance.StatusPending},
		{ProjectName: "newest", Status: finance.StatusPaid, PaidAt: datePtr(2024, time.June, 10)},
		{ProjectName: "no timestamp", Status: finance.StatusPaid},
		{ProjectName: "middle", Status: finance.StatusPaid, PaidAt: datePtr(2024, time.May, 20)},
	}
	got := RecentlyPaid(lines, 2)
	names := make([]string, len(got))
	for i, l := range got {
		names[i] = l.ProjectName
	}
	want := []string{"newest", "middle"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("RecentlyPaid() = %v, want %v", names, want)
	}
}

func TestAggregationsAreDeterministic(t *testing.T) {
	lines := []Line{
		{CustomerName: "Acme", ProjectName: "A", Amount: 100, Status: finance.StatusPending, DueDate: datePtr(2030, time.January, 1)},
		{CustomerName: "Globex", ProjectName: "B", Amount: 100, Status: finance.StatusPaid, PaidAt: datePtr(2024, time.June, 1)},
	}
	first := TotalsByCustomer(lines)
	second := TotalsByCustomer(lines)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("TotalsByCustomer not deterministic: %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(Reduce(lines), Reduce(lines)) {
		t.Error("Reduce not deterministic")
	}
}
