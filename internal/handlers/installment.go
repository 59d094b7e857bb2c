package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/heartman0001/ForeCase/internal/finance"
	"github.com/heartman0001/ForeCase/internal/models"
	"github.com/heartman0001/ForeCase/internal/repository"
)

type InstallmentHandler struct {
	Repo *repository.InstallmentRepo
}

type createInstallmentRequest struct {
	ProjectID           string  `json:"projectId" binding:"required"`
	InstallmentNo       int     `json:"installmentNo"`
	InstallmentTotal    int     `json:"installmentTotal"`
	Amount              float64 `json:"amount" binding:"required"`
	BillingDate         string  `json:"billingDate"`
	ExpectedPaymentDate string  `json:"expectedPaymentDate"`
	ActualPaymentDate   string  `json:"actualPaymentDate"`
	Status              string  `json:"status"`
	Note                string  `json:"note"`
}

type updateInstallmentRequest struct {
	InstallmentNo       *int     `json:"installmentNo"`
	InstallmentTotal    *int     `json:"installmentTotal"`
	Amount              *float64 `json:"amount"`
	BillingDate         *string  `json:"billingDate"`
	ExpectedPaymentDate *string  `json:"expectedPaymentDate"`
	ActualPaymentDate   *string  `json:"actualPaymentDate"`
	Status              *string  `json:"status"`
	Note                *string  `json:"note"`
}

func NewInstallmentHandler(repo *repository.InstallmentRepo) *InstallmentHandler {
	return &InstallmentHandler{Repo: repo}
}

func (h *InstallmentHandler) List(c *gin.Context) {
	var projectID *uuid.UUID
	if raw := c.Query("projectId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid projectId"})
			return
		}
		projectID = &parsed
	}
	rows, err := h.Repo.List(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	now := time.Now()
	for i := range rows {
		rows[i].Status = finance.DisplayStatus(rows[i].Status, rows[i].ExpectedPaymentDate, rows[i].ActualPaymentDate, now)
	}
	c.JSON(http.StatusOK, rows)
}

func (h *InstallmentHandler) Create(c *gin.Context) {
	var req createInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid projectId"})
		return
	}

	installment := models.Installment{
		ProjectID:        projectID,
		InstallmentNo:    req.InstallmentNo,
		InstallmentTotal: req.InstallmentTotal,
		Amount:           req.Amount,
		Status:           req.Status,
		Note:             req.Note,
	}
	if installment.InstallmentNo == 0 {
		installment.InstallmentNo = 1
	}
	if installment.InstallmentTotal == 0 {
		installment.InstallmentTotal = 1
	}
	for _, field := range []struct {
		raw  string
		dest **time.Time
	}{
		{req.BillingDate, &installment.BillingDate},
		{req.ExpectedPaymentDate, &installment.ExpectedPaymentDate},
		{req.ActualPaymentDate, &installment.ActualPaymentDate},
	} {
		parsed, err := parseDate(field.raw)
		if err != nil {
			respondError(c, err)
			return
		}
		*field.dest = parsed
	}

	if err := h.Repo.Create(c.Request.Context(), &installment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, installment)
}

func (h *InstallmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	patch := repository.InstallmentPatch{
		InstallmentNo:    req.InstallmentNo,
		InstallmentTotal: req.InstallmentTotal,
		Amount:           req.Amount,
		Status:           req.Status,
		Note:             req.Note,
	}
	for _, field := range []struct {
		raw  *string
		dest **time.Time
	}{
		{req.BillingDate, &patch.BillingDate},
		{req.ExpectedPaymentDate, &patch.ExpectedPaymentDate},
		{req.ActualPaymentDate, &patch.ActualPaymentDate},
	} {
		if field.raw == nil {
			continue
		}
		parsed, err := parseDate(*field.raw)
		if err != nil {
			respondError(c, err)
			return
		}
		*field.dest = parsed
	}

	installment, err := h.Repo.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, installment)
}

func (h *InstallmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
