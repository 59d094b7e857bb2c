package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heartman0001/ForeCase/internal/models"
	"github.com/heartman0001/ForeCase/internal/repository"
)

type CustomerHandler struct {
	Repo *repository.CustomerRepo
}

type customerRequest struct {
	Name           string `json:"name" binding:"required"`
	CompanyName    string `json:"companyName"`
	ContactName    string `json:"contactName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	CreditTermDays *int   `json:"creditTermDays"`
	VatRegistered  bool   `json:"vatRegistered"`
}

func NewCustomerHandler(repo *repository.CustomerRepo) *CustomerHandler {
	return &CustomerHandler{Repo: repo}
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	customer, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	customer := models.Customer{
		Name:           req.Name,
		CompanyName:    req.CompanyName,
		ContactName:    req.ContactName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		CreditTermDays: 30,
		VatRegistered:  req.VatRegistered,
	}
	if req.CreditTermDays != nil {
		customer.CreditTermDays = *req.CreditTermDays
	}

	if err := h.Repo.Create(c.Request.Context(), &customer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	customer, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	customer.Name = req.Name
	customer.CompanyName = req.CompanyName
	customer.ContactName = req.ContactName
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Address = req.Address
	customer.VatRegistered = req.VatRegistered
	if req.CreditTermDays != nil {
		customer.CreditTermDays = *req.CreditTermDays
	}

	if err := h.Repo.Update(c.Request.Context(), &customer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
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
