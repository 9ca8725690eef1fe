package model

type Customer struct {
	ID      int    `json:"id"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Mobile  string `json:"mobile" validate:"required"`
	Address string `json:"address"`
}
