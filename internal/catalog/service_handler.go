package catalog

import (
	"strings"

	"studio-backend/internal/database"
	"studio-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       *string `json:"price"`
	PriceType   string  `json:"price_type"`
	Icon        string  `json:"icon"`
	ImageURL    string  `json:"image_url"`
}

type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       *string `json:"price"`
	PriceType   string  `json:"price_type"`
	Icon        string  `json:"icon"`
	ImageURL    string  `json:"image_url"`
	CreatedAt   string  `json:"created_at"`
}

func serviceResponse(s *models.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		PriceType:   s.PriceType,
		Icon:        s.Icon,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ListServicesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var services []models.Service
		if err := database.DB.Order("created_at asc").Find(&services).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list services")
		}

		res := make([]ServiceResponse, 0, len(services))
		for i := range services {
			res = append(res, serviceResponse(&services[i]))
		}
		return c.JSON(res)
	}
}

func CreateServiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ServiceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.Description == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name and description are required")
		}
		if body.PriceType == "" {
			body.PriceType = "project"
		}
		if body.Icon == "" {
			body.Icon = "mic"
		}

		service := models.Service{
			Name:        body.Name,
			Description: body.Description,
			Price:       body.Price,
			PriceType:   body.PriceType,
			Icon:        body.Icon,
			ImageURL:    body.ImageURL,
		}
		if err := database.DB.Create(&service).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create service")
		}

		return c.Status(fiber.StatusCreated).JSON(serviceResponse(&service))
	}
}

func UpdateServiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ServiceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var service models.Service
		if err := database.DB.First(&service, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Service not found")
		}

		service.Name = body.Name
		service.Description = body.Description
		service.Price = body.Price
		service.PriceType = body.PriceType
		service.Icon = body.Icon
		service.ImageURL = body.ImageURL
		if err := database.DB.Save(&service).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update service")
		}

		return c.JSON(serviceResponse(&service))
	}
}

func DeleteServiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		result := database.DB.Delete(&models.Service{}, "id = ?", c.Params("id"))
		if result.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete service")
		}
		if result.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Service not found")
		}
		return c.JSON(fiber.Map{"message": "Service deleted"})
	}
}
