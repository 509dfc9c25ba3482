package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccessLevel string

const (
	AccessBasic AccessLevel = "basic"
	AccessFull  AccessLevel = "full"
	AccessSuper AccessLevel = "super"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type Admin struct {
	ID               string      `gorm:"primaryKey;size:36"`
	Name             string      `gorm:"size:100;not null"`
	Email            string      `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash     string      `gorm:"size:255;not null"`
	AccessLevel      AccessLevel `gorm:"size:20;not null;default:basic"`
	Suspended        bool        `gorm:"not null;default:false"`
	SuspensionReason *string     `gorm:"size:500"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// HasFullAccess reports whether the admin may mutate site content.
func (a *Admin) HasFullAccess() bool {
	return a.AccessLevel == AccessFull || a.AccessLevel == AccessSuper
}
