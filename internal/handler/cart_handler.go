package handler

import (
	"errors"
	"strconv"

	"go-retail-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CartHandler exposes the order-composition workflow. Carts are keyed by the
// session's account email, so each signed-in user stages one order at a time.
type CartHandler struct {
	service service.CartService
}

func NewCartHandler(s service.CartService) *CartHandler {
	return &CartHandler{service: s}
}

type selectCustomerRequest struct {
	CustomerID int `json:"customer_id"`
}

type addItemRequest struct {
	ItemID int `json:"item_id"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	return c.JSON(h.service.View(sessionEmail(c)))
}

func (h *CartHandler) SelectCustomer(c *fiber.Ctx) error {
	var req selectCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := h.service.SelectCustomer(sessionEmail(c), req.CustomerID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Customer not found"})
	}
	return c.JSON(h.service.View(sessionEmail(c)))
}

// AddItem puts one more unit of an item in the cart. The stock ceiling is
// checked here, before Add, the way the screen disabled its button.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	session := sessionEmail(c)
	if !h.service.CanAdd(session, req.ItemID) {
		return c.Status(409).JSON(fiber.Map{"error": "Item is unavailable or its stock is exhausted"})
	}
	if err := h.service.Add(session, req.ItemID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(h.service.View(session))
}

func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	itemID, err := strconv.Atoi(c.Params("itemId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var req setQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	session := sessionEmail(c)
	if err := h.service.SetQuantity(session, itemID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, service.ErrStockExceeded):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrItemNotFound), errors.Is(err, service.ErrLineNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(h.service.View(session))
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	itemID, err := strconv.Atoi(c.Params("itemId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}
	session := sessionEmail(c)
	h.service.Remove(session, itemID)
	return c.JSON(h.service.View(session))
}

func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	order, err := h.service.PlaceOrder(sessionEmail(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoCustomer), errors.Is(err, service.ErrEmptyCart):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.Status(201).JSON(fiber.Map{"message": "Order placed", "data": order})
}
