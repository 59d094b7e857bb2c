// Package report computes dashboard summaries from already-loaded billing
// lines. Every function is pure: no I/O, no shared accumulators, malformed
// lines are skipped rather than aborting the whole aggregation.
package report

import (
	"sort"
	"time"

	"github.com/heartman0001/ForeCase/internal/finance"
)

// DefaultTopN caps the upcoming and recently-paid lists. It mirrors the
// reference dashboard and is overridable through workspace settings.
const DefaultTopN = 5

// Line is the common projection of an invoice record or installment that
// the aggregations operate on.
type Line struct {
	ProjectName  string
	CustomerName string
	Amount       float64
	Collected    float64
	Status       string
	DueDate      *time.Time
	PaidAt       *time.Time
}

// GroupTotal is one row of a revenue grouping.
type GroupTotal struct {
	Name        string  `json:"name"`
	Billed      float64 `json:"billed"`
	Collected   float64 `json:"collected"`
	Outstanding float64 `json:"outstanding"`
}

// Metrics is the single-pass dashboard reduction. TotalRevenue counts paid
// lines only; everything else is outstanding.
type Metrics struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalOutstanding float64 `json:"totalOutstanding"`
	OverdueCount     int     `json:"overdueCount"`
}

func groupBy(lines []Line, key func(Line) string) []GroupTotal {
	totals := map[string]*GroupTotal{}
	for _, l := range lines {
		name := key(l)
		if name == "" {
			continue
		}
		g, ok := totals[name]
		if !ok {
			g = &GroupTotal{Name: name}
			totals[name] = g
		}
		g.Billed += l.Amount
		g.Collected += l.Collected
	}
	out := make([]GroupTotal, 0, len(totals))
	for _, g := range totals {
		g.Outstanding = g.Billed - g.Collected
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Billed != out[j].Billed {
			return out[i].Billed > out[j].Billed
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TotalsByCustomer groups billed and collected amounts by customer name,
// descending by billed amount.
func TotalsByCustomer(lines []Line) []GroupTotal {
	return groupBy(lines, func(l Line) string { return l.CustomerName })
}

// TotalsByProject groups billed and collected amounts by project name,
// descending by billed amount.
func TotalsByProject(lines []Line) []GroupTotal {
	return groupBy(lines, func(l Line) string { return l.ProjectName })
}

// Upcoming returns the next unpaid lines due after now, soonest first,
// capped to topN. A horizonDays of zero means no horizon.
func Upcoming(lines []Line, now time.Time, horizonDays int, topN int) []Line {
	if topN <= 0 {
		topN = DefaultTopN
	}
	var out []Line
	for _, l := range lines {
		if l.DueDate == nil || l.Status == finance.StatusPaid {
			continue
		}
		if !l.DueDate.After(now) {
			continue
		}
		if horizonDays > 0 && l.DueDate.After(now.AddDate(0, 0, horizonDays)) {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(*out[j].DueDate) })
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// RecentlyPaid returns paid lines with a known payment timestamp, newest
// first, capped to topN.
func RecentlyPaid(lines []Line, topN int) []Line {
	if topN <= 0 {
		topN = DefaultTopN
	}
	var out []Line
	for _, l := range lines {
		if l.Status != finance.StatusPaid || l.PaidAt == nil {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaidAt.After(*out[j].PaidAt) })
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// Reduce computes the key metrics in a single pass.
func Reduce(lines []Line) Metrics {
	var m Metrics
	for _, l := range lines {
		switch l.Status {
		case finance.StatusPaid:
			m.TotalRevenue += l.Amount
		case finance.StatusOverdue:
			m.OverdueCount++
			m.TotalOutstanding += l.Amount
		default:
			m.TotalOutstanding += l.Amount
		}
	}
	return m
}
