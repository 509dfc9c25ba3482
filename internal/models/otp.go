package models

import "time"

type OTPPurpose string

const (
	PurposeAdminRegistration OTPPurpose = "admin_registration"
	PurposePasswordReset     OTPPurpose = "password_reset"
)

// OTPCode is a short-lived one-time code. At most one active code exists
// per (email, purpose); issuing a new one deletes prior entries first.
type OTPCode struct {
	ID        uint       `gorm:"primaryKey"`
	Email     string     `gorm:"size:255;not null;index:idx_otp_email_purpose"`
	Code      string     `gorm:"size:10;not null"`
	Purpose   OTPPurpose `gorm:"size:30;not null;index:idx_otp_email_purpose"`
	ExpiresAt time.Time  `gorm:"not null"`
	CreatedAt time.Time
}
