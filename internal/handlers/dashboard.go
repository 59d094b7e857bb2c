package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/heartman0001/ForeCase/internal/finance"
	"github.com/heartman0001/ForeCase/internal/report"
	"github.com/heartman0001/ForeCase/internal/repository"
)

type DashboardHandler struct {
	Installments *repository.InstallmentRepo
	Projects     *repository.ProjectRepo
	Settings     *repository.SettingRepo
	DefaultTopN  int
}

func NewDashboardHandler(installments *repository.InstallmentRepo, projects *repository.ProjectRepo, settings *repository.SettingRepo, topN int) *DashboardHandler {
	return &DashboardHandler{Installments: installments, Projects: projects, Settings: settings, DefaultTopN: topN}
}

// Get loads the billing schedule once and derives every dashboard block from
// that single read: key metrics, revenue groupings, upcoming deadlines and
// recently paid items.
func (h *DashboardHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	installments, err := h.Installments.List(ctx, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	projects, err := h.Projects.List(ctx, nil)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	lines := scheduleLines(installments, projects, now)

	topN := h.topN(c)
	currency, err := h.Settings.Get(ctx, repository.SettingCurrency, "THB")
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"metrics":           report.Reduce(lines),
		"revenueByProject":  report.TotalsByProject(lines),
		"revenueByCustomer": report.TotalsByCustomer(lines),
		"upcoming":          report.Upcoming(lines, now, 0, topN),
		"recentlyPaid":      report.RecentlyPaid(lines, topN),
		"currency":          currency,
	})
}

// scheduleLines projects the installment schedule into report lines. The
// customer name is resolved through the project ID, not the project name:
// two projects may share a name under different customers, and a name-keyed
// lookup would attribute one customer's revenue to the other.
func scheduleLines(installments []repository.InstallmentRow, projects []repository.ProjectRow, now time.Time) []report.Line {
	customerByProject := make(map[uuid.UUID]string, len(projects))
	for _, p := range projects {
		customerByProject[p.ID] = p.CustomerName
	}

	lines := make([]report.Line, 0, len(installments))
	for _, inst := range installments {
		status := finance.DisplayStatus(inst.Status, inst.ExpectedPaymentDate, inst.ActualPaymentDate, now)
		line := report.Line{
			ProjectName:  inst.ProjectName,
			CustomerName: customerByProject[inst.ProjectID],
			Amount:       inst.Amount,
			Status:       status,
			DueDate:      inst.ExpectedPaymentDate,
		}
		if status == finance.StatusPaid {
			line.Collected = inst.Amount
			paidAt := inst.UpdatedAt
			line.PaidAt = &paidAt
		}
		lines = append(lines, line)
	}
	return lines
}

func (h *DashboardHandler) topN(c *gin.Context) int {
	if raw := c.Query("topN"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return parsed
		}
	}
	if raw, err := h.Settings.Get(c.Request.Context(), repository.SettingDashboardTopN, ""); err == nil && raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return parsed
		}
	}
	if h.DefaultTopN > 0 {
		return h.DefaultTopN
	}
	return report.DefaultTopN
}
