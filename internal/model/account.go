package model

import "golang.org/x/crypto/bcrypt"

// Account is a login account, keyed by email rather than a generated id.
type Account struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"-"` // bcrypt hash, hidden from JSON
	Role     string `json:"role" validate:"required,oneof=Admin Manager Sales Inventory"`

	// SessionID is rotated on every login so that only the most recent
	// token stays valid (single session per account).
	SessionID string `json:"-"`
}

// SetPassword hashes and sets the account's password
func (a *Account) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (a *Account) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password))
	return err == nil
}

// AccountResponse is used for API responses (without sensitive data)
type AccountResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (a Account) ToResponse() AccountResponse {
	return AccountResponse{Email: a.Email, Role: a.Role}
}
