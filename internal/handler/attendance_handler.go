package handler

import (
	"time"

	"go-retail-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	service service.AttendanceService
}

func NewAttendanceHandler(s service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: s}
}

type attendanceRequest struct {
	Date     string `json:"date"` // YYYY-MM-DD
	StaffIDs []int  `json:"staff_ids"`
}

func (r attendanceRequest) parse() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}

func (h *AttendanceHandler) GetAttendance(c *fiber.Ctx) error {
	return c.JSON(h.service.List(projection(c, "date", true)))
}

func (h *AttendanceHandler) GetSheet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid attendance ID"})
	}
	sheet, err := h.service.Get(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Attendance sheet not found"})
	}
	return c.JSON(sheet)
}

func (h *AttendanceHandler) CreateAttendance(c *fiber.Ctx) error {
	var req attendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	date, err := req.parse()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	sheet, err := h.service.Record(date, req.StaffIDs, sessionEmail(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Attendance recorded", "data": sheet})
}

func (h *AttendanceHandler) UpdateAttendance(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid attendance ID"})
	}

	var req attendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	date, err := req.parse()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	sheet, err := h.service.Amend(id, date, req.StaffIDs)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Attendance sheet not found"})
	}
	return c.JSON(fiber.Map{"message": "Attendance updated", "data": sheet})
}

func (h *AttendanceHandler) DeleteAttendance(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid attendance ID"})
	}
	if err := h.service.Delete(id); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Attendance sheet not found"})
	}
	return c.JSON(fiber.Map{"message": "Attendance deleted"})
}
