package search

import (
	"github.com/Kyz7/gallery/internal/gallery"
	"github.com/Kyz7/gallery/internal/models"
	"github.com/Kyz7/gallery/internal/response"
	"github.com/gofiber/fiber/v2"
)

// Handler serves the visitor-facing gallery: the visible set, the filter
// selectors and their option lists.
type Handler struct {
	session  *gallery.Session
	property models.Property
}

func NewHandler(session *gallery.Session, property models.Property) *Handler {
	return &Handler{session: session, property: property}
}

type categoryOption struct {
	Value models.Category `json:"value"`
	Label string          `json:"label"`
}

func (h *Handler) PropertyHandler(c *fiber.Ctx) error {
	return response.Success(c, h.property, "Property retrieved successfully")
}

func (h *Handler) CategoriesHandler(c *fiber.Ctx) error {
	options := make([]categoryOption, 0, len(models.Categories))
	for _, cat := range models.Categories {
		options = append(options, categoryOption{Value: cat, Label: cat.Label()})
	}
	return response.Success(c, fiber.Map{
		"all":        gallery.All,
		"categories": options,
	}, "Categories retrieved successfully")
}

// GalleryHandler returns the visible set for the current filter together with
// the selection, so the page can highlight selected items.
func (h *Handler) GalleryHandler(c *fiber.Ctx) error {
	return response.Success(c, h.session.Snapshot(), "Gallery retrieved successfully")
}

// FacetsHandler returns the complex and type options. The optional category
// query previews type options for a category without changing the filter.
func (h *Handler) FacetsHandler(c *fiber.Ctx) error {
	view := h.session.Snapshot()
	category, types := view.Filter.Category, view.Types
	if q := c.Query("category"); q != "" {
		if q != gallery.All {
			q = string(models.ParseCategory(q))
		}
		if q != gallery.All && !models.Category(q).Valid() {
			return response.ValidationError(c, map[string]string{
				"category": "unknown category",
			})
		}
		category = q
		types = h.session.TypeOptionsFor(q)
	}

	return response.Success(c, fiber.Map{
		"category":  category,
		"complexes": view.Complexes,
		"types":     types,
	}, "Facets retrieved successfully")
}

func (h *Handler) UpdateFilterHandler(c *fiber.Ctx) error {
	var body gallery.FilterUpdate
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Category != nil {
		if cat := *body.Category; cat != "" && cat != gallery.All {
			parsed := models.ParseCategory(cat)
			if !parsed.Valid() {
				return response.ValidationError(c, map[string]string{
					"category": "unknown category",
				})
			}
			name := string(parsed)
			body.Category = &name
		}
	}

	return response.Success(c, h.session.ApplyFilter(body), "Filter updated")
}

func (h *Handler) ResetFilterHandler(c *fiber.Ctx) error {
	return response.Success(c, fiber.Map{
		"filter": h.session.ResetFilter(),
	}, "Filter reset")
}
