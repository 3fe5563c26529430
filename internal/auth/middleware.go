package auth

import (
	"strings"

	"github.com/Kyz7/gallery/internal/response"
	"github.com/Kyz7/gallery/internal/utils"

	"github.com/gofiber/fiber/v2"
)

func JWTProtected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Missing authorization token")
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format")
		}

		claims, err := utils.ParseJWT(tokenParts[1])
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Locals("role", claims.Role)
		return c.Next()
	}
}

func RoleProtected(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, r := range allowedRoles {
			if role == r {
				return c.Next()
			}
		}
		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}
