package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/heartman0001/ForeCase/internal/apperrors"
	"github.com/heartman0001/ForeCase/internal/models"
	"github.com/heartman0001/ForeCase/internal/repository"
)

type ProjectHandler struct {
	Repo *repository.ProjectRepo
}

type projectRequest struct {
	CustomerID     string `json:"customerId" binding:"required"`
	Name           string `json:"name" binding:"required"`
	SaleOwner      string `json:"saleOwner"`
	ProjectManager string `json:"projectManager"`
	PhaseTotal     int    `json:"phaseTotal"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Description    string `json:"description"`
}

func NewProjectHandler(repo *repository.ProjectRepo) *ProjectHandler {
	return &ProjectHandler{Repo: repo}
}

func (h *ProjectHandler) List(c *gin.Context) {
	var customerID *uuid.UUID
	if raw := c.Query("customerId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customerId"})
			return
		}
		customerID = &parsed
	}
	projects, err := h.Repo.List(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	project, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	project, err := h.fromRequest(req)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.Repo.Create(c.Request.Context(), &project); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	project, err := h.fromRequest(req)
	if err != nil {
		respondError(c, err)
		return
	}
	existing, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	project.ID = existing.ID
	project.CreatedAt = existing.CreatedAt
	if err := h.Repo.Update(c.Request.Context(), &project); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
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

func (h *ProjectHandler) fromRequest(req projectRequest) (models.Project, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return models.Project{}, apperrors.InvalidInput("invalid customer id %q", req.CustomerID)
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return models.Project{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return models.Project{}, err
	}
	phaseTotal := req.PhaseTotal
	if phaseTotal == 0 {
		phaseTotal = 1
	}
	return models.Project{
		CustomerID:     customerID,
		Name:           req.Name,
		SaleOwner:      req.SaleOwner,
		ProjectManager: req.ProjectManager,
		PhaseTotal:     phaseTotal,
		StartDate:      startDate,
		EndDate:        endDate,
		Description:    req.Description,
	}, nil
}
