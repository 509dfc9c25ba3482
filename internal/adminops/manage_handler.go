package adminops

import (
	"studio-backend/internal/auth"
	"studio-backend/internal/config"
	"studio-backend/internal/database"
	"studio-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UpdateAccessRequest struct {
	AccessLevel models.AccessLevel `json:"access_level"`
}

type SuspendRequest struct {
	Suspended bool    `json:"suspended"`
	Reason    *string `json:"reason"`
}

func ListAdminsHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var admins []models.Admin
		if err := database.DB.Order("created_at asc").Find(&admins).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list admins")
		}

		res := make([]fiber.Map, 0, len(admins))
		for i := range admins {
			res = append(res, auth.AdminJSON(&admins[i], cfg.SuperAdminEmail))
		}
		return c.JSON(res)
	}
}

// findMutableAdmin loads the target admin and rejects any attempt to touch
// the super admin account, whoever the caller is.
func findMutableAdmin(cfg *config.Config, id string) (*models.Admin, error) {
	var admin models.Admin
	if err := database.DB.First(&admin, "id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Admin not found")
	}
	if admin.Email == cfg.SuperAdminEmail {
		return nil, fiber.NewError(fiber.StatusBadRequest, "The super admin account cannot be modified")
	}
	return &admin, nil
}

func UpdateAccessHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateAccessRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.AccessLevel != models.AccessBasic && body.AccessLevel != models.AccessFull {
			return fiber.NewError(fiber.StatusBadRequest, "access_level must be 'basic' or 'full'")
		}

		admin, err := findMutableAdmin(cfg, c.Params("id"))
		if err != nil {
			return err
		}

		if err := database.DB.Model(admin).Update("access_level", body.AccessLevel).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update access level")
		}
		admin.AccessLevel = body.AccessLevel

		return c.JSON(auth.AdminJSON(admin, cfg.SuperAdminEmail))
	}
}

func SuspendHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SuspendRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		admin, err := findMutableAdmin(cfg, c.Params("id"))
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"suspended":         body.Suspended,
			"suspension_reason": nil,
		}
		if body.Suspended {
			updates["suspension_reason"] = body.Reason
		}
		if err := database.DB.Model(admin).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update suspension")
		}
		admin.Suspended = body.Suspended
		if body.Suspended {
			admin.SuspensionReason = body.Reason
		} else {
			admin.SuspensionReason = nil
		}

		return c.JSON(auth.AdminJSON(admin, cfg.SuperAdminEmail))
	}
}

func DeleteAdminHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, err := findMutableAdmin(cfg, c.Params("id"))
		if err != nil {
			return err
		}

		if err := database.DB.Delete(admin).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete admin")
		}
		return c.JSON(fiber.Map{"message": "Admin deleted"})
	}
}

func StatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var totalBookings, pendingBookings, confirmedBookings, completedBookings int64
		var totalServices, totalProjects, totalApplications int64

		database.DB.Model(&models.Booking{}).Count(&totalBookings)
		database.DB.Model(&models.Booking{}).Where("status = ?", models.BookingPending).Count(&pendingBookings)
		database.DB.Model(&models.Booking{}).Where("status IN ?", []models.BookingStatus{models.BookingConfirmed, models.BookingApproved}).Count(&confirmedBookings)
		database.DB.Model(&models.Booking{}).Where("status = ?", models.BookingCompleted).Count(&completedBookings)
		database.DB.Model(&models.Service{}).Count(&totalServices)
		database.DB.Model(&models.Project{}).Count(&totalProjects)
		database.DB.Model(&models.Application{}).Count(&totalApplications)

		return c.JSON(fiber.Map{
			"total_bookings":     totalBookings,
			"pending_bookings":   pendingBookings,
			"confirmed_bookings": confirmedBookings,
			"completed_bookings": completedBookings,
			"total_services":     totalServices,
			"total_projects":     totalProjects,
			"total_applications": totalApplications,
		})
	}
}
