package finance

import (
	"errors"
	"testing"
	"time"

	"github.com/heartman0001/ForeCase/internal/apperrors"
)

func floatPtr(v float64) *float64 { return &v }

func TestCheckTransitionTerminalStates(t *testing.T) {
	targets := []string{StatusPending, StatusBilled, StatusPaid, StatusOverdue, StatusCancelled}
	for _, from := range []string{StatusPaid, StatusCancelled} {
		for _, to := range targets {
			if to == from {
				continue
			}
			err := CheckTransition(from, to, floatPtr(100))
			if !errors.Is(err, apperrors.ErrInvalidTransition) {
				t.Errorf("CheckTransition(%s, %s) = %v, want ErrInvalidTransition", from, to, err)
			}
		}
	}
}

func TestCheckTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		received *float64
		wantErr  error
	}{
		{"pending to billed", StatusPending, StatusBilled, nil, nil},
		{"billed to paid with amount", StatusBilled, StatusPaid, floatPtr(10400), nil},
		{"partial payment allowed", StatusBilled, StatusPaid, floatPtr(5000), nil},
		{"zero payment allowed", StatusBilled, StatusPaid, floatPtr(0), nil},
		{"paid requires received amount", StatusBilled, StatusPaid, nil, apperrors.ErrInvalidTransition},
		{"negative received rejected", StatusBilled, StatusPaid, floatPtr(-1), apperrors.ErrInvalidInput},
		{"cancel from pending", StatusPending, StatusCancelled, nil, nil},
		{"cancel from billed", StatusBilled, StatusCancelled, nil, nil},
		{"stale overdue cache can still be paid", StatusOverdue, StatusPaid, floatPtr(100), nil},
		{"overdue is not a writable target", StatusPending, StatusOverdue, nil, apperrors.ErrInvalidTransition},
		{"overdue is not writable from billed", StatusBilled, StatusOverdue, nil, apperrors.ErrInvalidTransition},
		{"same status is a no-op", StatusPaid, StatusPaid, nil, nil},
		{"unknown target status", StatusPending, "Archived", nil, apperrors.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTransition(tt.from, tt.to, tt.received)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("CheckTransition(%s, %s) = %v, want nil", tt.from, tt.to, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckTransition(%s, %s) = %v, want %v", tt.from, tt.to, err, tt.wantErr)
			}
		})
	}
}

func TestDisplayStatus(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	past := date(2024, time.June, 1)
	future := date(2024, time.July, 1)

	tests := []struct {
		name    string
		stored  string
		due     *time.Time
		paid    *time.Time
		want    string
	}{
		{"pending past due becomes overdue", StatusPending, past, nil, StatusOverdue},
		{"billed past due becomes overdue", StatusBilled, past, nil, StatusOverdue},
		{"pending not yet due", StatusPending, future, nil, StatusPending},
		{"payment recorded suppresses overdue", StatusBilled, past, past, StatusBilled},
		{"no due date stays as stored", StatusPending, nil, nil, StatusPending},
		{"stale stored overdue reverts to billed", StatusOverdue, future, nil, StatusBilled},
		{"stored overdue still past due", StatusOverdue, past, nil, StatusOverdue},
		{"paid is untouched", StatusPaid, past, nil, StatusPaid},
		{"cancelled is untouched", StatusCancelled, past, nil, StatusCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayStatus(tt.stored, tt.due, tt.paid, now); got != tt.want {
				t.Errorf("DisplayStatus(%s) = %s, want %s", tt.stored, got, tt.want)
			}
		})
	}
}
