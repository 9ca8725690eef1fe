package handler

import (
	"errors"

	"go-retail-admin/internal/model"
	"go-retail-admin/internal/service"
	"go-retail-admin/internal/store"

	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	service service.InventoryService
}

func NewItemHandler(s service.InventoryService) *ItemHandler {
	return &ItemHandler{service: s}
}

func (h *ItemHandler) GetItems(c *fiber.Ctx) error {
	return c.JSON(h.service.ListItems(projection(c, "name", false)))
}

func (h *ItemHandler) GetItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}
	item, err := h.service.GetItem(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Item not found"})
	}
	return c.JSON(item)
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var item model.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.service.CreateItem(item)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Item created", "data": created})
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var item model.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	item.ID = id

	updated, err := h.service.UpdateItem(item)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Item updated", "data": updated})
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}
	if err := h.service.DeleteItem(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Item not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Item deleted"})
}
