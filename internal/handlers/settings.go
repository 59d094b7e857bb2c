package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/heartman0001/ForeCase/internal/repository"
)

type SettingsHandler struct {
	Repo *repository.SettingRepo
}

type updateSettingsRequest struct {
	CompanyName   string `json:"companyName"`
	Currency      string `json:"currency"`
	DashboardTopN int    `json:"dashboardTopN"`
}

func NewSettingsHandler(repo *repository.SettingRepo) *SettingsHandler {
	return &SettingsHandler{Repo: repo}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	values, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"companyName":   values[repository.SettingCompanyName],
		"currency":      values[repository.SettingCurrency],
		"dashboardTopN": values[repository.SettingDashboardTopN],
	})
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	updates := map[string]string{}
	if value := strings.TrimSpace(req.CompanyName); value != "" {
		updates[repository.SettingCompanyName] = value
	}
	if value := strings.TrimSpace(req.Currency); value != "" {
		updates[repository.SettingCurrency] = value
	}
	if req.DashboardTopN > 0 {
		updates[repository.SettingDashboardTopN] = strconv.Itoa(req.DashboardTopN)
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	for key, value := range updates {
		if err := h.Repo.Put(c.Request.Context(), key, value); err != nil {
			respondError(c, err)
			return
		}
	}
	h.Get(c)
}
