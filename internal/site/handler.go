package site

import (
	"encoding/json"
	"errors"

	"studio-backend/internal/database"
	"studio-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Settings documents are stored and served as raw JSON; the backend only
// checks well-formedness on write.
var defaults = map[string]string{
	models.SettingSite: `{
		"studio_name": "Hogwarts Music Studio",
		"tagline": "Professional audio post-production",
		"logo_url": "",
		"theme": "dark"
	}`,
	models.SettingContent: `{
		"hero_title": "Where Sound Becomes Magic",
		"hero_subtitle": "Recording, mixing, mastering and more.",
		"about": "Hogwarts Music Studio is a professional audio post-production studio with state-of-the-art equipment."
	}`,
	models.SettingContact: `{
		"email": "",
		"phone": "",
		"address": "",
		"instagram": "",
		"youtube": ""
	}`,
}

func GetSettingHandler(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var setting models.Setting
		err := database.DB.First(&setting, "key = ?", key).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.SendString(defaults[key])
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load settings")
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(setting.Value)
	}
}

func UpdateSettingHandler(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := c.Body()
		if !json.Valid(body) {
			return fiber.NewError(fiber.StatusBadRequest, "Body must be valid JSON")
		}

		setting := models.Setting{Key: key, Value: string(body)}
		err := database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&setting).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save settings")
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(setting.Value)
	}
}
