package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingApproved  BookingStatus = "approved"
	BookingCompleted BookingStatus = "completed"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID            string `gorm:"primaryKey;size:36"`
	FullName      string `gorm:"size:100;not null"`
	Email         string `gorm:"size:255;not null;index"`
	Phone         string `gorm:"size:30;not null"`
	ServiceID     string `gorm:"size:36;not null"`
	ServiceName   string `gorm:"size:100;not null"`
	Description   string `gorm:"size:2000"`
	PreferredDate string `gorm:"size:20;not null"`
	PreferredTime string `gorm:"size:20;not null"`
	// Hours is the requested session length; 0 means not specified.
	Hours     int           `gorm:"not null;default:0"`
	Status    BookingStatus `gorm:"size:20;not null;default:pending"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
