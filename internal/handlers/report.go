package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/heartman0001/ForeCase/internal/finance"
	"github.com/heartman0001/ForeCase/internal/repository"
)

type ReportHandler struct {
	Repo *repository.ReportRepo
}

func NewReportHandler(repo *repository.ReportRepo) *ReportHandler {
	return &ReportHandler{Repo: repo}
}

// Monthly serves the flattened invoice/project/customer report, filterable
// by billing-date range (?from=YYYY-MM-DD&to=YYYY-MM-DD) and status.
func (h *ReportHandler) Monthly(c *gin.Context) {
	from, err := parseDate(c.Query("from"))
	if err != nil {
		respondError(c, err)
		return
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	if (from == nil) != (to == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to must be provided together"})
		return
	}

	rows, err := h.Repo.Monthly(c.Request.Context(), repository.MonthlyReportFilter{
		From:   from,
		To:     to,
		Status: c.Query("status"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	for i := range rows {
		rows[i].Status = finance.DisplayStatus(rows[i].Status, rows[i].ExpectedCollectionDate, rows[i].PaymentDate, now)
	}
	c.JSON(http.StatusOK, rows)
}
