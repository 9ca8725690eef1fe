package handler

import (
	"errors"

	"go-retail-admin/internal/model"
	"go-retail-admin/internal/store"
	"go-retail-admin/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type StaffHandler struct {
	staff *store.SeqTable[model.Staff]
}

func NewStaffHandler(staff *store.SeqTable[model.Staff]) *StaffHandler {
	return &StaffHandler{staff: staff}
}

var staffFields = store.Fields[model.Staff]{
	Search: []string{"name", "email", "mobile", "address", "role"},
	Text: map[string]func(model.Staff) string{
		"name":    func(s model.Staff) string { return s.Name },
		"email":   func(s model.Staff) string { return s.Email },
		"mobile":  func(s model.Staff) string { return s.Mobile },
		"address": func(s model.Staff) string { return s.Address },
		"role":    func(s model.Staff) string { return s.Role },
	},
	Numeric: map[string]func(model.Staff) float64{
		"id":        func(s model.Staff) float64 { return float64(s.ID) },
		"hire_date": func(s model.Staff) float64 { return float64(s.HireDate.Unix()) },
	},
}

func (h *StaffHandler) GetStaff(c *fiber.Ctx) error {
	return c.JSON(store.Apply(h.staff.List(), projection(c, "name", false), staffFields))
}

func (h *StaffHandler) GetStaffMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid staff ID"})
	}
	member, err := h.staff.Get(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Staff member not found"})
	}
	return c.JSON(member)
}

func (h *StaffHandler) CreateStaff(c *fiber.Ctx) error {
	var member model.Staff
	if err := c.BodyParser(&member); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&member); len(errs) > 0 {
		return validationError(c, errs)
	}

	created, err := h.staff.Add(member)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Staff member created", "data": created})
}

func (h *StaffHandler) UpdateStaff(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid staff ID"})
	}

	var member model.Staff
	if err := c.BodyParser(&member); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	member.ID = id
	if errs := validator.ValidateStruct(&member); len(errs) > 0 {
		return validationError(c, errs)
	}

	if err := h.staff.Update(member); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Staff member not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Staff member updated", "data": member})
}

func (h *StaffHandler) DeleteStaff(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid staff ID"})
	}
	// Attendance sheets keep their snapshots of deleted members.
	if err := h.staff.Delete(id); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Staff member not found"})
	}
	return c.JSON(fiber.Map{"message": "Staff member deleted"})
}
