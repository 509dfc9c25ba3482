package main

import (
	"log"
	"strings"

	"studio-backend/internal/adminops"
	"studio-backend/internal/auth"
	"studio-backend/internal/booking"
	"studio-backend/internal/careers"
	"studio-backend/internal/catalog"
	"studio-backend/internal/chat"
	"studio-backend/internal/config"
	"studio-backend/internal/database"
	"studio-backend/internal/mailer"
	"studio-backend/internal/models"
	"studio-backend/internal/notify"
	"studio-backend/internal/site"
	"studio-backend/internal/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	if err := catalog.EnsureSeeded(database.DB); err != nil {
		log.Fatalf("Catalog seeding failed: %v", err)
	}

	sender := mailer.NewSMTPSender(cfg)
	notifier := notify.New(sender, cfg.SuperAdminEmail)
	chatClient := chat.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"detail": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"detail": "Internal server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hogwarts Music Studio API"})
	})

	// User auth
	api.Post("/auth/register", auth.RegisterHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))
	api.Post("/auth/forgot-password", auth.ForgotPasswordHandler(cfg, sender))
	api.Post("/auth/reset-password", auth.ResetPasswordHandler(cfg))

	// Admin provisioning
	api.Post("/admin/request-otp", adminops.RequestOTPHandler(cfg, sender))
	api.Post("/admin/verify-otp", adminops.VerifyOTPHandler(cfg))
	api.Post("/admin/resend-otp", adminops.ResendOTPHandler(cfg, sender))
	api.Post("/admin/login", adminops.LoginHandler(cfg))

	// Public catalog and intake
	api.Get("/services", catalog.ListServicesHandler())
	api.Get("/projects", catalog.ListProjectsHandler())
	api.Post("/bookings", booking.CreateBookingHandler(notifier))
	api.Get("/bookings/track/:id", booking.TrackBookingHandler())
	api.Post("/applications", careers.CreateApplicationHandler(notifier))
	api.Get("/settings/site", site.GetSettingHandler(models.SettingSite))
	api.Get("/settings/content", site.GetSettingHandler(models.SettingContent))
	api.Get("/settings/contact", site.GetSettingHandler(models.SettingContact))
	api.Post("/chat", chat.Handler(cfg, chatClient))

	// Protected. Tier gates attach per-route; groups at the same prefix
	// would stack their middleware onto each other's routes.
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	requireUser := auth.RequireUser()
	anyAdmin := auth.RequireAdmin()
	fullAccess := auth.RequireFullAccess(cfg)
	superAdmin := auth.RequireSuperAdmin(cfg)

	protected.Get("/auth/me", auth.MeHandler(cfg))
	protected.Get("/bookings/user", requireUser, booking.ListUserBookingsHandler())

	// Any admin tier
	protected.Get("/bookings", anyAdmin, booking.ListBookingsHandler())
	protected.Put("/bookings/:id/status", anyAdmin, booking.UpdateStatusHandler(notifier))
	protected.Delete("/bookings/:id", anyAdmin, booking.DeleteBookingHandler())
	protected.Get("/admin/stats", anyAdmin, adminops.StatsHandler())

	// Full-access admins (re-checked against the live record)
	protected.Post("/services", fullAccess, catalog.CreateServiceHandler())
	protected.Put("/services/:id", fullAccess, catalog.UpdateServiceHandler())
	protected.Delete("/services/:id", fullAccess, catalog.DeleteServiceHandler())
	protected.Post("/projects", fullAccess, catalog.CreateProjectHandler())
	protected.Put("/projects/:id", fullAccess, catalog.UpdateProjectHandler())
	protected.Delete("/projects/:id", fullAccess, catalog.DeleteProjectHandler())
	protected.Put("/settings/site", fullAccess, site.UpdateSettingHandler(models.SettingSite))
	protected.Post("/upload/image", fullAccess, upload.ImageHandler(cfg))

	// Super admin only
	protected.Get("/admin/list", superAdmin, adminops.ListAdminsHandler(cfg))
	protected.Put("/admin/:id/access", superAdmin, adminops.UpdateAccessHandler(cfg))
	protected.Put("/admin/:id/suspend", superAdmin, adminops.SuspendHandler(cfg))
	protected.Delete("/admin/:id", superAdmin, adminops.DeleteAdminHandler(cfg))
	protected.Get("/applications", superAdmin, careers.ListApplicationsHandler())
	protected.Put("/applications/:id/status", superAdmin, careers.UpdateStatusHandler(notifier))
	protected.Delete("/applications/:id", superAdmin, careers.DeleteApplicationHandler())
	protected.Put("/settings/content", superAdmin, site.UpdateSettingHandler(models.SettingContent))
	protected.Put("/settings/contact", superAdmin, site.UpdateSettingHandler(models.SettingContact))

	log.Println("Server running on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
