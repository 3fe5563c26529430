package server

import (
	"time"

	"github.com/Kyz7/gallery/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, h Handlers) {
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Gallery API is running",
		})
	})

	// ==========================================
	// GALLERY (public)
	// ==========================================
	app.Get("/property", h.Search.PropertyHandler)

	galleryGroup := app.Group("/gallery")
	galleryGroup.Get("/", h.Search.GalleryHandler)
	galleryGroup.Get("/categories", h.Search.CategoriesHandler)
	galleryGroup.Get("/facets", h.Search.FacetsHandler)
	galleryGroup.Put("/filter", h.Search.UpdateFilterHandler)
	galleryGroup.Delete("/filter", h.Search.ResetFilterHandler)

	// ==========================================
	// SELECTION & COMPARISON (public)
	// ==========================================
	selectionGroup := app.Group("/selection")
	selectionGroup.Get("/", h.Selection.GetSelectionHandler)
	selectionGroup.Delete("/", h.Selection.ClearHandler)
	selectionGroup.Get("/compare", h.Selection.CompareHandler)
	selectionGroup.Post("/:id/toggle", h.Selection.ToggleHandler)

	// ==========================================
	// ADMIN
	// ==========================================
	adminGroup := app.Group("/admin")
	adminGroup.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 15 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), h.Auth.LoginHandler)

	jwt := auth.JWTProtected()
	adminOnly := auth.RoleProtected(auth.AdminRole)
	adminGroup.Get("/entries", jwt, adminOnly, h.Media.ListEntriesHandler)
	adminGroup.Post("/entries", jwt, adminOnly, h.Media.CreateEntryHandler)
	adminGroup.Put("/entries/:id", jwt, adminOnly, h.Media.UpdateEntryHandler)
	adminGroup.Delete("/entries/:id", jwt, adminOnly, h.Media.DeleteEntryHandler)
	adminGroup.Post("/upload", jwt, adminOnly, h.Media.UploadMediaHandler)
}
