package catalog

import (
	"strings"

	"studio-backend/internal/database"
	"studio-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	WorkType    string `json:"work_type"`
	ImageURL    string `json:"image_url"`
	Featured    *bool  `json:"featured"`
}

type ProjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	WorkType    string `json:"work_type"`
	ImageURL    string `json:"image_url"`
	Featured    bool   `json:"featured"`
	CreatedAt   string `json:"created_at"`
}

func projectResponse(p *models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		WorkType:    p.WorkType,
		ImageURL:    p.ImageURL,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ListProjectsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var projects []models.Project
		if err := database.DB.Order("created_at asc").Find(&projects).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list projects")
		}

		res := make([]ProjectResponse, 0, len(projects))
		for i := range projects {
			res = append(res, projectResponse(&projects[i]))
		}
		return c.JSON(res)
	}
}

func CreateProjectHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProjectRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.Description == "" || body.WorkType == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name, description and work type are required")
		}

		featured := true
		if body.Featured != nil {
			featured = *body.Featured
		}

		project := models.Project{
			Name:        body.Name,
			Description: body.Description,
			WorkType:    body.WorkType,
			ImageURL:    body.ImageURL,
			Featured:    featured,
		}
		if err := database.DB.Create(&project).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create project")
		}

		return c.Status(fiber.StatusCreated).JSON(projectResponse(&project))
	}
}

func UpdateProjectHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProjectRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var project models.Project
		if err := database.DB.First(&project, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Project not found")
		}

		project.Name = body.Name
		project.Description = body.Description
		project.WorkType = body.WorkType
		project.ImageURL = body.ImageURL
		if body.Featured != nil {
			project.Featured = *body.Featured
		}
		if err := database.DB.Save(&project).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update project")
		}

		return c.JSON(projectResponse(&project))
	}
}

func DeleteProjectHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		result := database.DB.Delete(&models.Project{}, "id = ?", c.Params("id"))
		if result.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete project")
		}
		if result.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Project not found")
		}
		return c.JSON(fiber.Map{"message": "Project deleted"})
	}
}
