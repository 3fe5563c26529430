package server

import (
	"time"

	"github.com/Kyz7/gallery/internal/auth"
	"github.com/Kyz7/gallery/internal/config"
	"github.com/Kyz7/gallery/internal/gallery"
	"github.com/Kyz7/gallery/internal/media"
	"github.com/Kyz7/gallery/internal/models"
	"github.com/Kyz7/gallery/internal/search"
	"github.com/Kyz7/gallery/internal/selection"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handlers groups the route handlers of one gallery session.
type Handlers struct {
	Auth      *auth.Handler
	Search    *search.Handler
	Selection *selection.Handler
	Media     *media.Handler
}

// Wire builds the handlers around session. adminPasswordHash is the bcrypt
// hash of the admin password.
func Wire(session *gallery.Session, cfg *config.Config, adminPasswordHash string, log *zap.Logger) Handlers {
	property := models.Property{
		ID:        cfg.PropertyID,
		Name:      cfg.PropertyName,
		Complex:   cfg.PropertyComplex,
		Address:   cfg.PropertyAddress,
		CreatedAt: time.Now().UnixMilli(),
	}

	return Handlers{
		Auth:      auth.NewHandler(adminPasswordHash),
		Search:    search.NewHandler(session, property),
		Selection: selection.NewHandler(session),
		Media:     media.NewHandler(media.NewService(session, cfg.PropertyID, cfg.PreserveCreatedAt, log)),
	}
}

func New(h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024,
	})

	app.Static("/uploads", "./uploads", fiber.Static{
		Compress:  true,
		ByteRange: true,
		Browse:    false,
		MaxAge:    3600,
	})

	SetupRoutes(app, h)

	return app
}
