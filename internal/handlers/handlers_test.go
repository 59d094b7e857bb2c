package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/heartman0001/ForeCase/internal/apperrors"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", apperrors.InvalidInput("bad amount"), http.StatusBadRequest},
		{"invalid transition", apperrors.InvalidTransition("paid is terminal"), http.StatusConflict},
		{"not found", apperrors.ErrNotFound, http.StatusNotFound},
		{"conflict", apperrors.Conflict("has dependents"), http.StatusConflict},
		{"backend unavailable", apperrors.Backend(errors.New("dial tcp: refused")), http.StatusBadGateway},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			respondError(c, tt.err)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2024-03-05")
	if err != nil {
		t.Fatalf("parseDate() error = %v", err)
	}
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDate() = %v, want %v", got, want)
	}

	if got, err := parseDate(""); err != nil || got != nil {
		t.Errorf("parseDate(\"\") = %v, %v, want nil, nil", got, err)
	}

	if _, err := parseDate("05/03/2024"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("parseDate(slash format) error = %v, want ErrInvalidInput", err)
	}
}
