package adminops

import (
	"errors"
	"fmt"
	"strings"

	"studio-backend/internal/auth"
	"studio-backend/internal/config"
	"studio-backend/internal/database"
	"studio-backend/internal/mailer"
	"studio-backend/internal/models"
	"studio-backend/internal/otp"

	"github.com/gofiber/fiber/v2"
)

type OTPRequest struct {
	Email string `json:"email"`
}

type OTPVerifyRequest struct {
	Email    string `json:"email"`
	OTP      string `json:"otp"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func otpEmailHTML(code string) string {
	return fmt.Sprintf(`
	<div style="font-family: sans-serif; padding: 20px; background: #0a0a12; color: white;">
		<h2 style="color: #00f0ff;">Hogwarts Music Studio - Admin Verification</h2>
		<p>Your OTP code is:</p>
		<h1 style="color: #bc13fe; letter-spacing: 8px;">%s</h1>
		<p>This code expires in 10 minutes.</p>
	</div>`, code)
}

func delegatedOTPEmailHTML(requester, code string) string {
	return fmt.Sprintf(`
	<div style="font-family: sans-serif; padding: 20px; background: #0a0a12; color: white;">
		<h2 style="color: #00f0ff;">Hogwarts Music Studio - Admin Approval</h2>
		<p><strong>%s</strong> wants to register as an admin.</p>
		<p>Share this OTP code with them if you approve:</p>
		<h1 style="color: #bc13fe; letter-spacing: 8px;">%s</h1>
		<p>This code expires in 10 minutes.</p>
	</div>`, requester, code)
}

// issueRegistrationOTP runs the provisioning gate and delivery routing shared
// by request-otp and resend-otp.
//
// The OTP for a non-super email is delivered to the super admin, not the
// requester: the super admin relays it out of band, which is the approval
// step for delegated admins.
func issueRegistrationOTP(cfg *config.Config, sender mailer.Sender, email string) (string, error) {
	var adminCount int64
	database.DB.Model(&models.Admin{}).Count(&adminCount)

	if adminCount == 0 && email != cfg.SuperAdminEmail {
		return "", fiber.NewError(fiber.StatusForbidden, "The super admin account must be created first")
	}

	var existing int64
	database.DB.Model(&models.Admin{}).Where("email = ?", email).Count(&existing)
	if existing > 0 {
		return "", fiber.NewError(fiber.StatusBadRequest, "Admin already exists")
	}

	entry, err := otp.Issue(database.DB, email, models.PurposeAdminRegistration)
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Could not issue OTP")
	}

	if email == cfg.SuperAdminEmail {
		mailer.Dispatch(sender, email, "Admin OTP Verification - Hogwarts Music Studio",
			otpEmailHTML(entry.Code))
		return "OTP sent to email", nil
	}

	mailer.Dispatch(sender, cfg.SuperAdminEmail, "Admin Registration Approval - Hogwarts Music Studio",
		delegatedOTPEmailHTML(email, entry.Code))
	return "OTP sent to the super admin for approval", nil
}

func RequestOTPHandler(cfg *config.Config, sender mailer.Sender) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body OTPRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email is required")
		}

		msg, err := issueRegistrationOTP(cfg, sender, body.Email)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": msg})
	}
}

// ResendOTPHandler regenerates a fresh code, invalidating the prior one, and
// re-runs the same delivery routing.
func ResendOTPHandler(cfg *config.Config, sender mailer.Sender) fiber.Handler {
	return RequestOTPHandler(cfg, sender)
}

func VerifyOTPHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body OTPVerifyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Email == "" || body.OTP == "" || body.Name == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email, OTP, name and password are required")
		}

		if err := otp.Verify(database.DB, body.Email, body.OTP, models.PurposeAdminRegistration); err != nil {
			switch {
			case errors.Is(err, otp.ErrExpired):
				return fiber.NewError(fiber.StatusBadRequest, "OTP expired")
			case errors.Is(err, otp.ErrInvalid):
				return fiber.NewError(fiber.StatusBadRequest, "Invalid OTP")
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Could not verify OTP")
			}
		}

		var existing int64
		database.DB.Model(&models.Admin{}).Where("email = ?", body.Email).Count(&existing)
		if existing > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Admin already exists")
		}

		// The first admin must be the super admin; any other email is
		// rejected here too in case its OTP predates the check.
		accessLevel := models.AccessBasic
		if body.Email == cfg.SuperAdminEmail {
			accessLevel = models.AccessSuper
		} else {
			var adminCount int64
			database.DB.Model(&models.Admin{}).Count(&adminCount)
			if adminCount == 0 {
				return fiber.NewError(fiber.StatusForbidden, "The super admin account must be created first")
			}
		}

		hash, err := auth.HashPassword(body.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password")
		}

		admin := models.Admin{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: hash,
			AccessLevel:  accessLevel,
		}
		if err := database.DB.Create(&admin).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create admin")
		}

		if err := otp.Consume(database.DB, body.Email, models.PurposeAdminRegistration); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not consume OTP")
		}

		token, err := auth.GenerateToken(cfg.JWTSecret, admin.ID, admin.Email, models.RoleAdmin)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not generate token")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"token": token,
			"admin": auth.AdminJSON(&admin, cfg.SuperAdminEmail),
		})
	}
}

func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AdminLoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var admin models.Admin
		if err := database.DB.Where("email = ?", body.Email).First(&admin).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		if !auth.CheckPassword(admin.PasswordHash, body.Password) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}

		if admin.Suspended && admin.Email != cfg.SuperAdminEmail {
			return fiber.NewError(fiber.StatusForbidden, "Account suspended")
		}

		// Self-heal access-level drift on the super admin record.
		if admin.Email == cfg.SuperAdminEmail && admin.AccessLevel != models.AccessSuper {
			admin.AccessLevel = models.AccessSuper
			database.DB.Model(&admin).Update("access_level", models.AccessSuper)
		}

		token, err := auth.GenerateToken(cfg.JWTSecret, admin.ID, admin.Email, models.RoleAdmin)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not generate token")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"admin": auth.AdminJSON(&admin, cfg.SuperAdminEmail),
		})
	}
}
