package handler

import (
	"time"

	"go-retail-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler is the read-only order history screen.
type TransactionHandler struct {
	service service.OrderService
}

func NewTransactionHandler(s service.OrderService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}

// GetTransactions lists orders with resolved customer names, newest first by
// default, optionally narrowed to a date range.
// Query params: q, sort, dir, start, end (YYYY-MM-DD)
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	start := parseDate(c.Query("start"))
	end := parseDate(c.Query("end"))
	if end != nil {
		// Inclusive range: the whole end day counts
		e := end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		end = &e
	}

	rows := h.service.ListTransactions(start, end, projection(c, "order_date", true))
	return c.JSON(rows)
}

func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	detail, err := h.service.GetTransaction(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
	}
	return c.JSON(detail)
}
