package selection

import (
	"errors"

	"github.com/Kyz7/gallery/internal/gallery"
	"github.com/Kyz7/gallery/internal/response"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	session *gallery.Session
}

func NewHandler(session *gallery.Session) *Handler {
	return &Handler{session: session}
}

func status(ids []string) fiber.Map {
	return fiber.Map{
		"selected": ids,
		"count":    len(ids),
		"ready":    len(ids) == gallery.MaxSelected,
	}
}

func (h *Handler) GetSelectionHandler(c *fiber.Ctx) error {
	return response.Success(c, status(h.session.Selected()), "Selection retrieved successfully")
}

// ToggleHandler selects or deselects an entry. Selection spans the whole
// catalog, not just the visible set.
func (h *Handler) ToggleHandler(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "Entry id is required", nil)
	}
	return response.Success(c, status(h.session.Toggle(id)), "Selection updated")
}

func (h *Handler) ClearHandler(c *fiber.Ctx) error {
	h.session.ClearSelection()
	return response.Success(c, status([]string{}), "Selection cleared")
}

// CompareHandler hands the ordered pair to the comparison slider.
func (h *Handler) CompareHandler(c *fiber.Ctx) error {
	pair, err := h.session.Compare()
	if err != nil {
		var pe *gallery.PreconditionError
		if errors.As(err, &pe) {
			return response.PreconditionFailed(c, pe.Error(), fiber.Map{
				"selected": pe.Selected,
				"required": gallery.MaxSelected,
			})
		}
		return response.InternalError(c, "Failed to open comparison")
	}
	return response.Success(c, pair, "Comparison ready")
}
