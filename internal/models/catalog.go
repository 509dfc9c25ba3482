package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID          string  `gorm:"primaryKey;size:36"`
	Name        string  `gorm:"size:100;not null"`
	Description string  `gorm:"size:2000;not null"`
	Price       *string `gorm:"size:50"`
	// PriceType is "fixed" (hourly rate shown) or "project" (quoted per project).
	PriceType string `gorm:"size:20;not null;default:project"`
	Icon      string `gorm:"size:50;not null;default:mic"`
	ImageURL  string `gorm:"size:500"`
	CreatedAt time.Time
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type Project struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"size:2000;not null"`
	WorkType    string `gorm:"size:100;not null"`
	ImageURL    string `gorm:"size:500;not null"`
	Featured    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
