package auth

import (
	"github.com/Kyz7/gallery/internal/response"
	"github.com/Kyz7/gallery/internal/utils"
	"github.com/gofiber/fiber/v2"
)

const AdminRole = "admin"

// Handler gates the admin panel behind a single shared password.
type Handler struct {
	passwordHash string
}

func NewHandler(passwordHash string) *Handler {
	return &Handler{passwordHash: passwordHash}
}

func (h *Handler) LoginHandler(c *fiber.Ctx) error {
	var body struct {
		Password string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Password == "" {
		return response.ValidationError(c, map[string]string{
			"password": "password is required",
		})
	}

	if !utils.CheckPasswordHash(body.Password, h.passwordHash) {
		return response.Unauthorized(c, "UNAUTHORIZED", "Wrong password")
	}

	token, err := utils.GenerateJWT(AdminRole, AdminRole)
	if err != nil {
		return response.InternalError(c, "Failed to issue token")
	}

	return response.Success(c, fiber.Map{
		"access_token": token,
		"expires_in":   int(utils.AdminTokenTTL.Seconds()),
	}, "Login successful")
}
