package handler

import (
	"errors"
	"fmt"

	"go-retail-admin/internal/model"
	"go-retail-admin/internal/store"
	"go-retail-admin/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// CustomerHandler works against the customer table directly; the screen has
// no business rules beyond validation.
type CustomerHandler struct {
	customers *store.SeqTable[model.Customer]
}

func NewCustomerHandler(customers *store.SeqTable[model.Customer]) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

var customerFields = store.Fields[model.Customer]{
	Search: []string{"name", "email", "mobile", "address"},
	Text: map[string]func(model.Customer) string{
		"name":    func(c model.Customer) string { return c.Name },
		"email":   func(c model.Customer) string { return c.Email },
		"mobile":  func(c model.Customer) string { return c.Mobile },
		"address": func(c model.Customer) string { return c.Address },
	},
	Numeric: map[string]func(model.Customer) float64{
		"id": func(c model.Customer) float64 { return float64(c.ID) },
	},
}

func validationError(c *fiber.Ctx, errs []*validator.ErrorResponse) error {
	first := errs[0]
	return c.Status(400).JSON(fiber.Map{
		"error": fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag),
	})
}

func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	return c.JSON(store.Apply(h.customers.List(), projection(c, "name", false), customerFields))
}

func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}
	customer, err := h.customers.Get(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Customer not found"})
	}
	return c.JSON(customer)
}

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&customer); len(errs) > 0 {
		return validationError(c, errs)
	}

	created, err := h.customers.Add(customer)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Customer created", "data": created})
}

func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	customer.ID = id
	if errs := validator.ValidateStruct(&customer); len(errs) > 0 {
		return validationError(c, errs)
	}

	if err := h.customers.Update(customer); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Customer not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Customer updated", "data": customer})
}

func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}
	// Existing orders keep the customer id; readers show a fallback name.
	if err := h.customers.Delete(id); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Customer not found"})
	}
	return c.JSON(fiber.Map{"message": "Customer deleted"})
}
