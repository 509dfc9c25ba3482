package models

import "time"

const (
	SettingSite    = "site"
	SettingContent = "content"
	SettingContact = "contact"
)

// Setting stores one site document (site, content, contact) as raw JSON.
// Bodies are stored verbatim and served back as-is.
type Setting struct {
	Key       string `gorm:"primaryKey;size:30"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
