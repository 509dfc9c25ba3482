package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"studio-backend/internal/models"

	"gorm.io/gorm"
)

const (
	CodeLength = 6
	TTL        = 10 * time.Minute
)

var (
	ErrInvalid = errors.New("invalid OTP")
	ErrExpired = errors.New("OTP expired")
)

func generateCode() string {
	max := big.NewInt(1)
	for i := 0; i < CodeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic(fmt.Sprintf("otp: rand failed: %v", err))
	}
	return fmt.Sprintf("%0*d", CodeLength, n)
}

// Issue creates a fresh code for (email, purpose), invalidating any prior one.
// Delete-then-insert, not transactional; a concurrent issue for the same pair
// is a benign race since resend is always available.
func Issue(db *gorm.DB, email string, purpose models.OTPPurpose) (*models.OTPCode, error) {
	if err := db.Where("email = ? AND purpose = ?", email, purpose).
		Delete(&models.OTPCode{}).Error; err != nil {
		return nil, err
	}

	entry := &models.OTPCode{
		Email:     email,
		Code:      generateCode(),
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(TTL),
	}
	if err := db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// Verify checks code against the active entry for (email, purpose).
// A wrong code leaves the entry in place; an expired entry is deleted.
// A matching entry is NOT consumed here; call Consume once the caller's
// own state change has gone through, so a failed operation never burns
// the code.
func Verify(db *gorm.DB, email, code string, purpose models.OTPPurpose) error {
	var entry models.OTPCode
	err := db.Where("email = ? AND purpose = ? AND code = ?", email, purpose, code).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalid
		}
		return err
	}

	if time.Now().After(entry.ExpiresAt) {
		db.Delete(&entry)
		return ErrExpired
	}
	return nil
}

// Consume deletes every entry for (email, purpose), enforcing single use.
func Consume(db *gorm.DB, email string, purpose models.OTPPurpose) error {
	return db.Where("email = ? AND purpose = ?", email, purpose).
		Delete(&models.OTPCode{}).Error
}
