package chat

import (
	"fmt"
	"log"
	"strings"

	"studio-backend/internal/config"
	"studio-backend/internal/database"
	"studio-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

func systemPrompt(cfg *config.Config, services []models.Service) string {
	var lines []string
	for _, s := range services {
		price := "Contact for pricing"
		if s.Price != nil && *s.Price != "" {
			price = *s.Price
		}
		lines = append(lines, fmt.Sprintf("- %s: %s (Price: %s)", s.Name, s.Description, price))
	}

	return fmt.Sprintf(`You are a friendly AI assistant for Hogwarts Music Studio, a professional audio post-production studio.

Available Services:
%s

Studio Information:
- Location: Professional studio with state-of-the-art equipment
- Contact: %s | Phone: %s
- Booking: Users can book directly through the website without registration

Be helpful, professional, and guide users to book services or learn more about the studio. Keep responses concise and friendly.`,
		strings.Join(lines, "\n"), cfg.SuperAdminEmail, cfg.AdminPhone)
}

// Handler answers with an AI completion over the current catalog. Any
// provider failure degrades to an apologetic canned reply; the endpoint
// itself never errors.
func Handler(cfg *config.Config, client *Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ChatRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Message == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Message is required")
		}

		sessionID := body.SessionID
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		var services []models.Service
		database.DB.Limit(10).Find(&services)

		response, err := client.Complete(c.Context(), []Message{
			{Role: "system", Content: systemPrompt(cfg, services)},
			{Role: "user", Content: body.Message},
		})
		if err != nil {
			log.Printf("Chat error: %v", err)
			response = fmt.Sprintf("I apologize, but I'm having trouble processing your request. Please try again or contact us directly at %s", cfg.SuperAdminEmail)
		}

		return c.JSON(fiber.Map{
			"response":   response,
			"session_id": sessionID,
		})
	}
}
