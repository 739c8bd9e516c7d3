package related

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nattakornv/storefront-backend/internal/catalog"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

// RegisterPublicRoutes exposes the related shelf; it needs no auth.
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products/:id<[0-9]+>/related", h.list)
}

func (h *Handler) list(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	products, err := h.service.List(productID, limit)
	if err != nil {
		if err == catalog.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}
