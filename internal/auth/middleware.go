package auth

import (
	"strings"

	"studio-backend/internal/config"
	"studio-backend/internal/database"
	"studio-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const CtxClaimsKey = "claims"

// JWTMiddleware validates the bearer token and stashes the claims in Locals.
// It performs no role or freshness checks; those are the Require* gates' job.
func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header must be 'Bearer <token>'")
		}

		claims, err := ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals(CtxClaimsKey, claims)
		return c.Next()
	}
}

// Claims returns the claims set by JWTMiddleware, or nil outside it.
func Claims(c *fiber.Ctx) *JWTCustomClaims {
	claims, _ := c.Locals(CtxClaimsKey).(*JWTCustomClaims)
	return claims
}

func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := Claims(c)
		if claims == nil || claims.Role != models.RoleUser {
			return fiber.NewError(fiber.StatusForbidden, "User access required")
		}
		return c.Next()
	}
}

// RequireAdmin admits any admin tier on claims alone, without consulting the
// store. Suspension or a lowered access level does not cut off an
// already-issued token here; see RequireFullAccess for the live check.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := Claims(c)
		if claims == nil || claims.Role != models.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Admin access required")
		}
		return c.Next()
	}
}

// RequireSuperAdmin discriminates on the configured super admin email alone:
// the email/role pairing is structurally exclusive, so no store read is needed.
func RequireSuperAdmin(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := Claims(c)
		if claims == nil || claims.Role != models.RoleAdmin || claims.Email != cfg.SuperAdminEmail {
			return fiber.NewError(fiber.StatusForbidden, "Super admin access required")
		}
		return c.Next()
	}
}

// RequireFullAccess re-reads the admin record because access level is mutable
// after token issuance: a super admin revoking "full" must take effect before
// the token's natural expiry.
func RequireFullAccess(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := Claims(c)
		if claims == nil || claims.Role != models.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Admin access required")
		}
		if claims.Email == cfg.SuperAdminEmail {
			return c.Next()
		}

		var admin models.Admin
		if err := database.DB.First(&admin, "id = ?", claims.SubjectID).Error; err != nil {
			return fiber.NewError(fiber.StatusForbidden, "Full access required")
		}
		if !admin.HasFullAccess() {
			return fiber.NewError(fiber.StatusForbidden, "Full access required")
		}
		return c.Next()
	}
}
