package auth

import (
	"errors"
	"fmt"
	"strings"

	"studio-backend/internal/config"
	"studio-backend/internal/database"
	"studio-backend/internal/mailer"
	"studio-backend/internal/models"
	"studio-backend/internal/otp"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email       string `json:"email"`
	AccountType string `json:"account_type"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func UserJSON(u *models.User) fiber.Map {
	return fiber.Map{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"created_at": u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func AdminJSON(a *models.Admin, superAdminEmail string) fiber.Map {
	return fiber.Map{
		"id":                a.ID,
		"name":              a.Name,
		"email":             a.Email,
		"access_level":      a.AccessLevel,
		"suspended":         a.Suspended,
		"suspension_reason": a.SuspensionReason,
		"is_super_admin":    a.Email == superAdminEmail,
		"created_at":        a.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func RegisterHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name, email and password are required")
		}

		var count int64
		database.DB.Model(&models.User{}).Where("email = ?", body.Email).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Email already registered")
		}

		hash, err := HashPassword(body.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password")
		}

		user := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: hash,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create user")
		}

		token, err := GenerateToken(cfg.JWTSecret, user.ID, user.Email, models.RoleUser)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not generate token")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"token": token,
			"user":  UserJSON(&user),
		})
	}
}

func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		// Unknown email and wrong password answer identically so the
		// response can't be used to enumerate accounts.
		var user models.User
		if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		if !CheckPassword(user.PasswordHash, body.Password) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}

		token, err := GenerateToken(cfg.JWTSecret, user.ID, user.Email, models.RoleUser)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not generate token")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user":  UserJSON(&user),
		})
	}
}

func MeHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := Claims(c)

		if claims.Role == models.RoleAdmin {
			var admin models.Admin
			if err := database.DB.First(&admin, "id = ?", claims.SubjectID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "User not found")
			}
			return c.JSON(fiber.Map{
				"user": AdminJSON(&admin, cfg.SuperAdminEmail),
				"role": models.RoleAdmin,
			})
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", claims.SubjectID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return c.JSON(fiber.Map{
			"user": UserJSON(&user),
			"role": models.RoleUser,
		})
	}
}

func otpEmailHTML(title string, code string) string {
	return fmt.Sprintf(`
	<div style="font-family: sans-serif; padding: 20px; background: #0a0a12; color: white;">
		<h2 style="color: #00f0ff;">Hogwarts Music Studio - %s</h2>
		<p>Your OTP code is:</p>
		<h1 style="color: #bc13fe; letter-spacing: 8px;">%s</h1>
		<p>This code expires in 10 minutes.</p>
	</div>`, title, code)
}

func ForgotPasswordHandler(cfg *config.Config, sender mailer.Sender) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ForgotPasswordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email is required")
		}

		var count int64
		switch body.AccountType {
		case "admin":
			database.DB.Model(&models.Admin{}).Where("email = ?", body.Email).Count(&count)
		default:
			database.DB.Model(&models.User{}).Where("email = ?", body.Email).Count(&count)
		}
		if count == 0 {
			return fiber.NewError(fiber.StatusNotFound, "No account found with this email")
		}

		entry, err := otp.Issue(database.DB, body.Email, models.PurposePasswordReset)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not issue OTP")
		}

		mailer.Dispatch(sender, body.Email, "Password Reset - Hogwarts Music Studio",
			otpEmailHTML("Password Reset", entry.Code))

		return c.JSON(fiber.Map{"message": "OTP sent to email"})
	}
}

func ResetPasswordHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ResetPasswordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Email == "" || body.OTP == "" || body.NewPassword == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email, OTP and new password are required")
		}

		if err := otp.Verify(database.DB, body.Email, body.OTP, models.PurposePasswordReset); err != nil {
			switch {
			case errors.Is(err, otp.ErrExpired):
				return fiber.NewError(fiber.StatusBadRequest, "OTP expired")
			case errors.Is(err, otp.ErrInvalid):
				return fiber.NewError(fiber.StatusBadRequest, "Invalid OTP")
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Could not verify OTP")
			}
		}

		hash, err := HashPassword(body.NewPassword)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password")
		}

		// The OTP entry carries no account kind, so resolve user first,
		// then admin.
		var user models.User
		err = database.DB.Where("email = ?", body.Email).First(&user).Error
		switch {
		case err == nil:
			database.DB.Model(&user).Update("password_hash", hash)
		case errors.Is(err, gorm.ErrRecordNotFound):
			var admin models.Admin
			if err := database.DB.Where("email = ?", body.Email).First(&admin).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "No account found with this email")
			}
			database.DB.Model(&admin).Update("password_hash", hash)
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Could not reset password")
		}

		if err := otp.Consume(database.DB, body.Email, models.PurposePasswordReset); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not consume OTP")
		}

		return c.JSON(fiber.Map{"message": "Password reset successfully"})
	}
}
