package service

import (
	"errors"

	"go-retail-admin/internal/model"
	"go-retail-admin/internal/store"
	"go-retail-admin/pkg/token"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExists      = errors.New("account with this email already exists")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrSamePassword       = errors.New("new password must be different from the current one")
)

// AuthService verifies credentials against the account store and issues
// session tokens. The store is the injected credential collaborator; nothing
// here knows where accounts come from.
type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	SignUp(email, password string) (*LoginResponse, error)
	ChangePassword(email, oldPassword, newPassword string) error
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authService struct {
	accounts *store.Table[string, model.Account]
}

func NewAuthService(accounts *store.Table[string, model.Account]) AuthService {
	return &authService{accounts: accounts}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	// 1. Find account by email
	account, err := s.accounts.Get(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// 2. Verify password
	if !account.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// 3. Single session: rotate the session id so older tokens go stale
	account.SessionID = uuid.New().String()
	if err := s.accounts.Update(account); err != nil {
		return nil, errors.New("failed to update session")
	}

	// 4. Generate JWT token bound to the new session
	signed, err := token.Generate(account.Email, account.Role, account.SessionID)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	log.Info().Str("email", account.Email).Str("role", account.Role).Msg("login")

	return &LoginResponse{Token: signed, Email: account.Email, Role: account.Role}, nil
}

// SignUp registers a self-service account with the Sales role and logs it in.
func (s *authService) SignUp(email, password string) (*LoginResponse, error) {
	account := model.Account{
		Email:     email,
		Role:      model.RoleSales,
		SessionID: uuid.New().String(),
	}
	if err := account.SetPassword(password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.accounts.Insert(account); err != nil {
		return nil, ErrAccountExists
	}

	signed, err := token.Generate(account.Email, account.Role, account.SessionID)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	log.Info().Str("email", account.Email).Msg("account signed up")

	return &LoginResponse{Token: signed, Email: account.Email, Role: account.Role}, nil
}

func (s *authService) ChangePassword(email, oldPassword, newPassword string) error {
	account, err := s.accounts.Get(email)
	if err != nil {
		return ErrAccountNotFound
	}

	if !account.CheckPassword(oldPassword) {
		return ErrWrongPassword
	}
	if account.CheckPassword(newPassword) {
		return ErrSamePassword
	}

	if err := account.SetPassword(newPassword); err != nil {
		return errors.New("failed to hash new password")
	}

	return s.accounts.Update(account)
}
