package coupon

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nattakornv/storefront-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/coupons/validate", h.validateCoupon)
	app.Get("/api/v1/coupons", h.listCoupons)
	app.Post("/api/v1/coupons", h.createCoupon)
	app.Put("/api/v1/coupons/:id<[0-9]+>", h.updateCoupon)
	app.Delete("/api/v1/coupons/:id<[0-9]+>", h.deleteCoupon)
}

type validateRequest struct {
	Code     string  `json:"code"`
	Subtotal float64 `json:"subtotal"`
}

func (h *Handler) validateCoupon(c *fiber.Ctx) error {
	if _, err := user.GetUserIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(validateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	result, err := h.service.Evaluate(payload.Code, payload.Subtotal)
	if err != nil {
		switch err {
		case ErrInvalidCode:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "invalid coupon code"})
		case ErrBelowMinimum, ErrExpired:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(result)
}

func (h *Handler) listCoupons(c *fiber.Ctx) error {
	if !user.IsAdminFromCtx(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
	}
	coupons, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(coupons)
}

func (h *Handler) createCoupon(c *fiber.Ctx) error {
	if !user.IsAdminFromCtx(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
	}
	payload := new(Coupon)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.DiscountType != TypePercentage && payload.DiscountType != TypeFixed {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "discountType must be percentage or fixed"})
	}
	if payload.DiscountValue <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "discountValue must be positive"})
	}

	created, err := h.service.Create(*payload)
	if err != nil {
		switch err {
		case ErrCodeExists:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "coupon code already exists"})
		case ErrInvalidCode:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "code is required"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateCoupon(c *fiber.Ctx) error {
	if !user.IsAdminFromCtx(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	payload := new(Coupon)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(id, *payload)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "coupon not found"})
		case ErrCodeExists:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "coupon code already exists"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}

func (h *Handler) deleteCoupon(c *fiber.Ctx) error {
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
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "coupon not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}
