package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"customerId"`
	Name           string     `gorm:"size:255;not null" json:"name"`
	SaleOwner      string     `gorm:"size:255" json:"saleOwner"`
	ProjectManager string     `gorm:"size:255" json:"projectManager"`
	PhaseTotal     int        `gorm:"not null;default:1" json:"phaseTotal"`
	StartDate      *time.Time `gorm:"type:date" json:"startDate,omitempty"`
	EndDate        *time.Time `gorm:"type:date" json:"endDate,omitempty"`
	Description    string     `gorm:"type:text" json:"description"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
