package identity

import (
	"fmt"

	"penny-auction/internal/auctionerrors"
	"penny-auction/internal/models"
	"penny-auction/utils"
)

// Starter balances issued by the mock provider.
const (
	AdminStartingCredits  = 1000
	PlayerStartingCredits = 50
	SignupCredits         = 10
)

// IdentityProvider supplies user records for credentials. The auction core
// never validates credentials itself; it only consumes the resulting user.
type IdentityProvider interface {
	Authenticate(email, password string) (models.User, error)
	Register(username, email, password string) (models.User, error)
}

// MockProvider is a demo identity provider with a hardcoded admin shortcut
// and no real credential checks. Any non-admin login yields the same demo
// player account.
type MockProvider struct{}

// NewMockProvider creates the demo provider
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Authenticate returns the admin account for the admin shortcut and the
// demo player for anything else.
func (p *MockProvider) Authenticate(email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, fmt.Errorf("identity: %w - missing credentials", auctionerrors.ErrNotAuthenticated)
	}

	if email == "admin@admin.com" && password == "admin" {
		return models.User{
			UserID:   "1",
			Username: "Admin",
			Email:    email,
			Credits:  AdminStartingCredits,
			IsAdmin:  true,
		}, nil
	}

	return models.User{
		UserID:   "2",
		Username: "Player123",
		Email:    email,
		Credits:  PlayerStartingCredits,
	}, nil
}

// Register issues a fresh user with the signup credit grant
func (p *MockProvider) Register(username, email, password string) (models.User, error) {
	if username == "" || email == "" || password == "" {
		return models.User{}, fmt.Errorf("identity: %w - missing registration fields", auctionerrors.ErrNotAuthenticated)
	}

	return models.User{
		UserID:   utils.GenerateID(),
		Username: username,
		Email:    email,
		Credits:  SignupCredits,
	}, nil
}
