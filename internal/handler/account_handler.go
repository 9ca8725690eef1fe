package handler

import (
	"errors"

	"go-retail-admin/internal/service"
	"go-retail-admin/internal/store"

	"github.com/gofiber/fiber/v2"
)

// AccountHandler manages login accounts. All routes sit behind the Admin
// role gate; these are the screens a store owner uses to hand out access.
type AccountHandler struct {
	service service.AccountService
}

func NewAccountHandler(s service.AccountService) *AccountHandler {
	return &AccountHandler{service: s}
}

type accountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *AccountHandler) GetAccounts(c *fiber.Ctx) error {
	return c.JSON(h.service.ListAccounts())
}

func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	var req accountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Password is required"})
	}

	account, err := h.service.CreateAccount(req.Email, req.Password, req.Role)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Account created", "data": account})
}

func (h *AccountHandler) UpdateAccount(c *fiber.Ctx) error {
	var req accountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	account, err := h.service.UpdateAccount(c.Params("email"), req.Password, req.Role)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Account not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Account updated", "data": account})
}

func (h *AccountHandler) DeleteAccount(c *fiber.Ctx) error {
	if err := h.service.DeleteAccount(c.Params("email")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Account not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Account deleted"})
}
