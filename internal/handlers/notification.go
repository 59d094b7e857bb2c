package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/heartman0001/ForeCase/internal/models"
	"github.com/heartman0001/ForeCase/internal/repository"
)

type NotificationHandler struct {
	Repo *repository.NotificationRepo
}

type createNotificationRequest struct {
	InvoiceID string `json:"invoiceId" binding:"required"`
	Message   string `json:"message" binding:"required"`
	DueDate   string `json:"dueDate"`
}

func NewNotificationHandler(repo *repository.NotificationRepo) *NotificationHandler {
	return &NotificationHandler{Repo: repo}
}

func (h *NotificationHandler) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	notifications, err := h.Repo.List(c.Request.Context(), unreadOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req createNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	invoiceID, err := uuid.Parse(req.InvoiceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoiceId"})
		return
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		respondError(c, err)
		return
	}

	notification := models.Notification{
		InvoiceID: invoiceID,
		Message:   req.Message,
		DueDate:   dueDate,
	}
	if err := h.Repo.Create(c.Request.Context(), &notification); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, notification)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	notification, err := h.Repo.MarkRead(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
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
