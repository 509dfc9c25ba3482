package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationReviewed  ApplicationStatus = "reviewed"
	ApplicationContacted ApplicationStatus = "contacted"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationHired     ApplicationStatus = "hired"
)

type Application struct {
	ID           string            `gorm:"primaryKey;size:36"`
	FullName     string            `gorm:"size:100;not null"`
	Email        string            `gorm:"size:255;not null"`
	Phone        string            `gorm:"size:30"`
	Position     string            `gorm:"size:100;not null"`
	Experience   string            `gorm:"size:2000"`
	PortfolioURL string            `gorm:"size:500"`
	Message      string            `gorm:"size:2000"`
	Status       ApplicationStatus `gorm:"size:20;not null;default:pending"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
