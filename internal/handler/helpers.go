package handler

import (
	"strconv"

	"go-retail-admin/internal/store"

	"github.com/gofiber/fiber/v2"
)

// sessionEmail returns the account email set by the auth middleware.
func sessionEmail(c *fiber.Ctx) string {
	email := c.Locals("session_email")
	if email == nil {
		return ""
	}
	return email.(string)
}

func parseID(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("id"))
}

// projection reads the shared list-screen query params (q, sort, dir).
// Each screen passes its own default ordering.
func projection(c *fiber.Ctx, defaultSort string, defaultDesc bool) store.Projection {
	p := store.Projection{
		Query:     c.Query("q"),
		SortField: c.Query("sort", defaultSort),
		Desc:      defaultDesc,
	}
	if dir := c.Query("dir"); dir != "" {
		p.Desc = dir == "desc"
	}
	return p
}
