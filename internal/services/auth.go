package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
)

// AuthService checks and creates user credentials.
type AuthService interface {
	// Login returns common.ErrInvalidCredentials unless a user with exactly
	// this username and password exists.
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, username, password string) (int64, error)
}

type authService struct {
	store   UserStore
	encoder PasswordEncoder
}

// NewAuthService constructs an AuthService. A nil encoder means PlainText.
func NewAuthService(store UserStore, encoder PasswordEncoder) AuthService {
	if encoder == nil {
		encoder = PlainText{}
	}
	return &authService{store: store, encoder: encoder}
}

func (a *authService) Login(ctx context.Context, username, password string) error {
	username, password = trimCredentials(username, password)
	if username == "" || password == "" {
		return common.ErrEmptyInput
	}

	encoded, err := a.encoder.Encode(password)
	if err != nil {
		return fmt.Errorf("password encoding error: %w", err)
	}

	ok, err := a.store.FindUser(ctx, username, encoded)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	if !ok {
		return common.ErrInvalidCredentials
	}
	return nil
}

func (a *authService) Register(ctx context.Context, username, password string) (int64, error) {
	username, password = trimCredentials(username, password)
	if username == "" || password == "" {
		return 0, common.ErrEmptyInput
	}

	encoded, err := a.encoder.Encode(password)
	if err != nil {
		return 0, fmt.Errorf("password encoding error: %w", err)
	}

	id, err := a.store.CreateUser(ctx, username, encoded)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// trimCredentials drops surrounding whitespace from both fields, so
// "secret " and "secret" are the same password.
func trimCredentials(username, password string) (string, string) {
	return strings.TrimSpace(username), strings.TrimSpace(password)
}
