package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/heartman0001/ForeCase/internal/apperrors"
	"github.com/heartman0001/ForeCase/internal/finance"
	"github.com/heartman0001/ForeCase/internal/models"
	"github.com/heartman0001/ForeCase/internal/repository"
)

type InvoiceHandler struct {
	Repo *repository.InvoiceRepo
}

type createInvoiceRequest struct {
	ProjectID      string   `json:"projectId" binding:"required"`
	Year           int      `json:"year"`
	Month          int      `json:"month"`
	Phase          int      `json:"phase"`
	Amount         float64  `json:"amount" binding:"required"`
	VatPercent     *float64 `json:"vatPercent"`
	WhtPercent     *float64 `json:"whtPercent"`
	BillingDate    string   `json:"billingDate"`
	CreditTermDays *int     `json:"creditTermDays"`
	Status         string   `json:"status"`
	Note           string   `json:"note"`
	RefDoc         string   `json:"refDoc"`
}

type updateInvoiceRequest struct {
	Year         *int     `json:"year"`
	Month        *int     `json:"month"`
	Phase        *int     `json:"phase"`
	Amount       *float64 `json:"amount"`
	VatPercent   *float64 `json:"vatPercent"`
	WhtPercent   *float64 `json:"whtPercent"`
	RealReceived *float64 `json:"realReceived"`
	BillingDate  *string  `json:"billingDate"`
	PaymentDate  *string  `json:"paymentDate"`
	Status       *string  `json:"status"`
	Note         *string  `json:"note"`
	RefDoc       *string  `json:"refDoc"`
}

func NewInvoiceHandler(repo *repository.InvoiceRepo) *InvoiceHandler {
	return &InvoiceHandler{Repo: repo}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	filter := repository.InvoiceFilter{Status: c.Query("status")}
	if raw := c.Query("customerId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customerId"})
			return
		}
		filter.CustomerID = &parsed
	}
	if raw := c.Query("projectId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid projectId"})
			return
		}
		filter.ProjectID = &parsed
	}

	rows, err := h.Repo.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	// Overdue is derived at read time; the stored column is only a cache.
	now := time.Now()
	for i := range rows {
		rows[i].Status = finance.DisplayStatus(rows[i].Status, rows[i].ExpectedCollectionDate, rows[i].PaymentDate, now)
	}
	c.JSON(http.StatusOK, rows)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	invoice, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	invoice.Status = finance.DisplayStatus(invoice.Status, invoice.ExpectedCollectionDate, invoice.PaymentDate, time.Now())
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid projectId"})
		return
	}
	billingDate, err := parseDate(req.BillingDate)
	if err != nil {
		respondError(c, err)
		return
	}

	invoice := models.InvoiceRecord{
		ProjectID:   projectID,
		Year:        req.Year,
		Month:       req.Month,
		Phase:       req.Phase,
		Amount:      req.Amount,
		VatPercent:  finance.DefaultVatPercent,
		WhtPercent:  finance.DefaultWhtPercent,
		BillingDate: billingDate,
		Status:      req.Status,
		Note:        req.Note,
		RefDoc:      req.RefDoc,
	}
	if invoice.Phase == 0 {
		invoice.Phase = 1
	}
	if req.VatPercent != nil {
		invoice.VatPercent = *req.VatPercent
	}
	if req.WhtPercent != nil {
		invoice.WhtPercent = *req.WhtPercent
	}

	if err := h.Repo.Create(c.Request.Context(), &invoice, req.CreditTermDays); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	patch := repository.InvoicePatch{
		Year:         req.Year,
		Month:        req.Month,
		Phase:        req.Phase,
		Amount:       req.Amount,
		VatPercent:   req.VatPercent,
		WhtPercent:   req.WhtPercent,
		RealReceived: req.RealReceived,
		Status:       req.Status,
		Note:         req.Note,
		RefDoc:       req.RefDoc,
	}
	if req.BillingDate != nil {
		parsed, err := parseDate(*req.BillingDate)
		if err != nil {
			respondError(c, err)
			return
		}
		if parsed == nil {
			respondError(c, apperrors.InvalidInput("billing date cannot be cleared"))
			return
		}
		patch.BillingDate = parsed
	}
	if req.PaymentDate != nil {
		parsed, err := parseDate(*req.PaymentDate)
		if err != nil {
			respondError(c, err)
			return
		}
		patch.PaymentDate = parsed
	}

	invoice, err := h.Repo.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
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
