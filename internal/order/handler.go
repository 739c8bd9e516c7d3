package order

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nattakornv/storefront-backend/internal/address"
	"github.com/nattakornv/storefront-backend/internal/cart"
	"github.com/nattakornv/storefront-backend/internal/coupon"
	"github.com/nattakornv/storefront-backend/internal/user"
	"github.com/nattakornv/storefront-backend/pkg/logx"
)

// CartService is the slice of the cart the checkout flow needs.
type CartService interface {
	GetCart(userID int) ([]cart.Item, error)
	ClearCart(userID int) error
}

// AddressService resolves a user's saved address into the shipping
// snapshot stored on the order.
type AddressService interface {
	GetByID(userID, addressID int) (address.Address, error)
}

type Handler struct {
	service   *Service
	carts     CartService
	addresses AddressService
	coupons   coupon.Evaluator
}

func NewHandler(s *Service, carts CartService, addresses AddressService, coupons coupon.Evaluator) *Handler {
	return &Handler{service: s, carts: carts, addresses: addresses, coupons: coupons}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/orders", h.checkout)
	app.Get("/api/v1/orders", h.listOrders)
	app.Get("/api/v1/orders/:id<[0-9]+>", h.getOrder)
	app.Patch("/api/v1/orders/:id<[0-9]+>/status", h.updateStatus)
	app.Patch("/api/v1/orders/:id<[0-9]+>/payment-status", h.updatePaymentStatus)
}

type checkoutRequest struct {
	AddressID  int     `json:"addressId"`
	CouponCode *string `json:"couponCode"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type paymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	addr, err := h.addresses.GetByID(userID, payload.AddressID)
	if err != nil {
		if err == address.ErrNotFound {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "address not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	items, err := h.carts.GetCart(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	var applied *coupon.Result
	if payload.CouponCode != nil && *payload.CouponCode != "" {
		result, err := h.coupons.Evaluate(*payload.CouponCode, cart.Subtotal(items))
		if err != nil {
			switch err {
			case coupon.ErrInvalidCode:
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
			case coupon.ErrBelowMinimum, coupon.ErrExpired:
				return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
			}
		}
		applied = &result
	}

	ord, err := h.service.Compose(userID, addr.AddressDesc, items, applied)
	if err != nil {
		switch err {
		case ErrEmptyCart, ErrEmptyAddress:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	// the order is durable at this point; a failed clear leaves stale
	// cart lines but never loses the order
	if err := h.carts.ClearCart(userID); err != nil {
		logx.Warn().Err(err).Int("user_id", userID).Int("order_id", ord.ID).Msg("failed to clear cart after checkout")
	}

	return c.Status(fiber.StatusCreated).JSON(ord)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	orders, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}

	ord, err := h.service.GetForUser(userID, orderID, user.IsAdminFromCtx(c))
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(ord)
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	if !user.IsAdminFromCtx(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
	}
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}
	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ord, err := h.service.UpdateStatus(orderID, payload.Status)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		case ErrBadTransition:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(ord)
}

func (h *Handler) updatePaymentStatus(c *fiber.Ctx) error {
	if !user.IsAdminFromCtx(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
	}
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}
	payload := new(paymentStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ord, err := h.service.UpdatePaymentStatus(orderID, payload.PaymentStatus)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		case ErrBadTransition:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(ord)
}
