package service

import (
	"errors"

	"go-retail-admin/internal/model"
	"go-retail-admin/internal/store"

	"github.com/rs/zerolog/log"
)

// AccountService is the admin-facing side of account management; AuthService
// only ever reads what this writes.
type AccountService interface {
	ListAccounts() []model.AccountResponse
	CreateAccount(email, password, role string) (model.AccountResponse, error)
	UpdateAccount(email, password, role string) (model.AccountResponse, error)
	DeleteAccount(email string) error
}

type accountService struct {
	accounts *store.Table[string, model.Account]
}

func NewAccountService(accounts *store.Table[string, model.Account]) AccountService {
	return &accountService{accounts: accounts}
}

func (s *accountService) ListAccounts() []model.AccountResponse {
	accounts := s.accounts.List()
	out := make([]model.AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = a.ToResponse()
	}
	return out
}

func (s *accountService) CreateAccount(email, password, role string) (model.AccountResponse, error) {
	account := model.Account{Email: email, Role: role}
	if err := firstValidationError(&account); err != nil {
		return model.AccountResponse{}, err
	}
	if err := account.SetPassword(password); err != nil {
		return model.AccountResponse{}, errors.New("failed to hash password")
	}

	if err := s.accounts.Insert(account); err != nil {
		return model.AccountResponse{}, ErrAccountExists
	}

	log.Info().Str("email", email).Str("role", role).Msg("account created")
	return account.ToResponse(), nil
}

// UpdateAccount replaces the role and, when a password is given, the hash.
// The email is the key and cannot change.
func (s *accountService) UpdateAccount(email, password, role string) (model.AccountResponse, error) {
	account, err := s.accounts.Get(email)
	if err != nil {
		return model.AccountResponse{}, ErrAccountNotFound
	}

	account.Role = role
	if password != "" {
		if err := account.SetPassword(password); err != nil {
			return model.AccountResponse{}, errors.New("failed to hash password")
		}
	}
	if err := firstValidationError(&account); err != nil {
		return model.AccountResponse{}, err
	}

	if err := s.accounts.Update(account); err != nil {
		return model.AccountResponse{}, err
	}
	return account.ToResponse(), nil
}

func (s *accountService) DeleteAccount(email string) error {
	return s.accounts.Delete(email)
}
