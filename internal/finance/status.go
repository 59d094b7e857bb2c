package finance

import (
	"time"

	"github.com/heartman0001/ForeCase/internal/apperrors"
)

// Invoice and installment statuses. Paid and Cancelled are terminal.
const (
	StatusPending   = "Pending"
	StatusBilled    = "Billed"
	StatusPaid      = "Paid"
	StatusOverdue   = "Overdue"
	StatusCancelled = "Cancelled"
)

// ValidStatus reports whether s is a known status value.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusBilled, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed out of s.
func IsTerminal(s string) bool {
	return s == StatusPaid || s == StatusCancelled
}

// CheckTransition validates a status change. Overdue is never a legal write
// target: it is derived at read time. A stored Overdue is a stale cache of
// that derived value and is treated as Billed for transition purposes.
// realReceived gates the move to Paid: it must be present and non-negative,
// though it need not match the net amount (partial and over payments are
// recorded as-is).
func CheckTransition(from, to string, realReceived *float64) error {
	if !ValidStatus(to) {
		return apperrors.InvalidInput("unknown status %q", to)
	}
	if from == to {
		return nil
	}
	if IsTerminal(from) {
		return apperrors.InvalidTransition("%s is terminal, cannot move to %s", from, to)
	}
	if to == StatusOverdue {
		return apperrors.InvalidTransition("%s is derived at read time, not writable", StatusOverdue)
	}
	if to == StatusPaid {
		if realReceived == nil {
			return apperrors.InvalidTransition("cannot mark Paid without a received amount")
		}
		if *realReceived < 0 {
			return apperrors.InvalidInput("received amount must not be negative, got %v", *realReceived)
		}
	}
	return nil
}

// DisplayStatus derives the status shown to callers. Overdue is computed at
// read time: a Pending or Billed record past its expected collection date
// with no payment recorded. The stored column is never the source of truth
// for Overdue.
func DisplayStatus(stored string, dueDate *time.Time, paymentDate *time.Time, now time.Time) string {
	if stored != StatusPending && stored != StatusBilled && stored != StatusOverdue {
		return stored
	}
	base := stored
	if base == StatusOverdue {
		base = StatusBilled
	}
	// Overdue starts the day after the due date; the due day itself is not
	// yet late.
	if paymentDate == nil && dueDate != nil && !now.Before(dueDate.AddDate(0, 0, 1)) {
		return StatusOverdue
	}
	return base
}
