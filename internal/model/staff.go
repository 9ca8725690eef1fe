package model

import "time"

// Role codes shared by staff records and login accounts
const (
	RoleAdmin     = "Admin"
	RoleManager   = "Manager"
	RoleSales     = "Sales"
	RoleInventory = "Inventory"
)

type Staff struct {
	ID       int       `json:"id"`
	Name     string    `json:"name" validate:"required"`
	Email    string    `json:"email" validate:"required,email"`
	Mobile   string    `json:"mobile" validate:"required"`
	Address  string    `json:"address"`
	Role     string    `json:"role" validate:"required,oneof=Admin Manager Sales Inventory"`
	HireDate time.Time `json:"hire_date"`
}
