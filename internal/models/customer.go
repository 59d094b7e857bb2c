package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	CompanyName    string    `gorm:"size:255" json:"companyName"`
	ContactName    string    `gorm:"size:255" json:"contactName"`
	Email          string    `gorm:"size:255" json:"email"`
	Phone          string    `gorm:"size:50" json:"phone"`
	Address        string    `gorm:"type:text" json:"address"`
	CreditTermDays int       `gorm:"not null;default:30" json:"creditTermDays"`
	VatRegistered  bool      `gorm:"not null;default:false" json:"vatRegistered"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
