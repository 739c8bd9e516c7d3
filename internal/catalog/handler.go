package catalog

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nattakornv/storefront-backend/internal/option"
	"github.com/nattakornv/storefront-backend/internal/user"
)

// Handler exposes the catalog over HTTP. Reads are public, writes are
// restricted to admins.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.listProducts)
	app.Get("/api/v1/products/:id<[0-9]+>", h.getProduct)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/products", h.createProduct)
	app.Put("/api/v1/products/:id<[0-9]+>", h.updateProduct)
	app.Delete("/api/v1/products/:id<[0-9]+>", h.deleteProduct)
}

type productRequest struct {
	Name               string   `json:"productName"`
	Description        string   `json:"productDesc"`
	Category           *string  `json:"category"`
	BasePrice          float64  `json:"basePrice"`
	SalePrice          *float64 `json:"salePrice"`
	VariantOptions     []any    `json:"variantOptions"`
	MeasurementOptions []any    `json:"measurementOptions"`
	StockQty           int      `json:"stockQty"`
	ImageURL           *string  `json:"imageUrl"`
}

type productDetailResponse struct {
	Product
	Quote Quote `json:"quote"`
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	products, err := h.service.List(c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	variantLabel := queryLabel(c, "variant")
	measurementLabel := queryLabel(c, "measurement")

	sel, err := h.service.ResolveSelection(id, variantLabel, measurementLabel)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case ErrUnknownVariant, ErrUnknownMeasurement:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(productDetailResponse{Product: sel.Product, Quote: sel.Quote})
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	if !user.IsAdminFromCtx(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
	}
	payload := new(productRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if msg := payload.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	now := time.Now().UTC().Format(time.RFC3339)
	created, err := h.service.Create(payload.toProduct(now, now))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	if !user.IsAdminFromCtx(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	payload := new(productRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if msg := payload.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	now := time.Now().UTC().Format(time.RFC3339)
	updated, err := h.service.Update(id, payload.toProduct("", now))
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	if !user.IsAdminFromCtx(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	if err := h.service.Delete(id); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (p *productRequest) validate() string {
	if p.Name == "" {
		return "productName is required"
	}
	if p.BasePrice < 0 {
		return "basePrice must be non-negative"
	}
	if p.StockQty < 0 {
		return "stockQty must be non-negative"
	}
	return ""
}

func (p *productRequest) toProduct(createdAt, updatedAt string) Product {
	return Product{
		Name:               p.Name,
		Description:        p.Description,
		Category:           p.Category,
		BasePrice:          p.BasePrice,
		SalePrice:          p.SalePrice,
		VariantOptions:     option.ParseList(p.VariantOptions),
		MeasurementOptions: option.ParseList(p.MeasurementOptions),
		StockQty:           p.StockQty,
		ImageURL:           p.ImageURL,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}

func queryLabel(c *fiber.Ctx, key string) *string {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	return &v
}
