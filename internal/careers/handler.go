package careers

import (
	"strings"

	"studio-backend/internal/database"
	"studio-backend/internal/models"
	"studio-backend/internal/notify"

	"github.com/gofiber/fiber/v2"
)

type CreateApplicationRequest struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Position     string `json:"position"`
	Experience   string `json:"experience"`
	PortfolioURL string `json:"portfolio_url"`
	Message      string `json:"message"`
}

type StatusUpdateRequest struct {
	Status models.ApplicationStatus `json:"status"`
}

type ApplicationResponse struct {
	ID           string                   `json:"id"`
	FullName     string                   `json:"full_name"`
	Email        string                   `json:"email"`
	Phone        string                   `json:"phone"`
	Position     string                   `json:"position"`
	Experience   string                   `json:"experience"`
	PortfolioURL string                   `json:"portfolio_url"`
	Message      string                   `json:"message"`
	Status       models.ApplicationStatus `json:"status"`
	CreatedAt    string                   `json:"created_at"`
}

func applicationResponse(a *models.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:           a.ID,
		FullName:     a.FullName,
		Email:        a.Email,
		Phone:        a.Phone,
		Position:     a.Position,
		Experience:   a.Experience,
		PortfolioURL: a.PortfolioURL,
		Message:      a.Message,
		Status:       a.Status,
		CreatedAt:    a.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func CreateApplicationHandler(notifier *notify.Notifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateApplicationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.FullName = strings.TrimSpace(body.FullName)
		if body.FullName == "" || body.Email == "" || body.Position == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name, email and position are required")
		}

		application := models.Application{
			FullName:     body.FullName,
			Email:        body.Email,
			Phone:        body.Phone,
			Position:     body.Position,
			Experience:   body.Experience,
			PortfolioURL: body.PortfolioURL,
			Message:      body.Message,
			Status:       models.ApplicationPending,
		}
		if err := database.DB.Create(&application).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create application")
		}

		notifier.ApplicationCreated(&application)

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":     "Application submitted successfully",
			"application": applicationResponse(&application),
		})
	}
}

func ListApplicationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var applications []models.Application
		if err := database.DB.Order("created_at desc").Find(&applications).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list applications")
		}

		res := make([]ApplicationResponse, 0, len(applications))
		for i := range applications {
			res = append(res, applicationResponse(&applications[i]))
		}
		return c.JSON(res)
	}
}

func UpdateStatusHandler(notifier *notify.Notifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body StatusUpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Status == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Status is required")
		}

		var application models.Application
		if err := database.DB.First(&application, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Application not found")
		}

		if err := database.DB.Model(&application).Update("status", body.Status).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update application")
		}
		application.Status = body.Status

		notifier.ApplicationStatusChanged(&application)

		return c.JSON(applicationResponse(&application))
	}
}

func DeleteApplicationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		result := database.DB.Delete(&models.Application{}, "id = ?", c.Params("id"))
		if result.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete application")
		}
		if result.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Application not found")
		}
		return c.JSON(fiber.Map{"message": "Application deleted"})
	}
}
